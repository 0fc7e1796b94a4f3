package stationapi

import (
	"context"
	"testing"

	"github.com/frostline/thermoscale-etl/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock for cache tests ---

type countingResolver struct {
	calls int
	info  domain.StationInfo
	err   error
}

func (m *countingResolver) Resolve(_ context.Context, _ string) (domain.StationInfo, error) {
	m.calls++
	return m.info, m.err
}

// --- CachedResolver tests ---

func TestCachedResolver_CacheHit(t *testing.T) {
	inner := &countingResolver{
		info: domain.StationInfo{Name: "Attic North", Site: "warehouse-3"},
	}
	metrics := testMetrics()
	cached := NewCachedResolver(inner, 10, metrics)

	r1, err := cached.Resolve(context.Background(), "attic-01")
	require.NoError(t, err)
	assert.Equal(t, "Attic North", r1.Name)

	r2, err := cached.Resolve(context.Background(), "attic-01")
	require.NoError(t, err)
	assert.Equal(t, "Attic North", r2.Name)

	assert.Equal(t, 1, inner.calls, "should only call inner once")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StationCache.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StationCache.WithLabelValues("miss")))
}

func TestCachedResolver_DifferentSensorsMiss(t *testing.T) {
	inner := &countingResolver{
		info: domain.StationInfo{Name: "Station"},
	}
	cached := NewCachedResolver(inner, 10, testMetrics())

	_, _ = cached.Resolve(context.Background(), "attic-01")
	_, _ = cached.Resolve(context.Background(), "porch-02")

	assert.Equal(t, 2, inner.calls)
}

func TestCachedResolver_EmptyResultNotCached(t *testing.T) {
	inner := &countingResolver{}
	cached := NewCachedResolver(inner, 10, testMetrics())

	_, err := cached.Resolve(context.Background(), "ghost-99")
	require.NoError(t, err)
	_, err = cached.Resolve(context.Background(), "ghost-99")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls, "unregistered sensors should be retried")
}

// --- LRU cache unit tests ---

func TestLRUCache_BasicGetPut(t *testing.T) {
	c := newLRUCache(3)

	c.put("a", domain.StationInfo{Name: "A"})
	c.put("b", domain.StationInfo{Name: "B"})

	info, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, "A", info.Name)

	_, ok = c.get("missing")
	assert.False(t, ok)
}

func TestLRUCache_Eviction(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", domain.StationInfo{Name: "A"})
	c.put("b", domain.StationInfo{Name: "B"})
	c.put("c", domain.StationInfo{Name: "C"}) // evicts "a"

	_, ok := c.get("a")
	assert.False(t, ok, "a should have been evicted")

	info, ok := c.get("b")
	assert.True(t, ok)
	assert.Equal(t, "B", info.Name)

	info, ok = c.get("c")
	assert.True(t, ok)
	assert.Equal(t, "C", info.Name)
}

func TestLRUCache_AccessPromotesEntry(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", domain.StationInfo{Name: "A"})
	c.put("b", domain.StationInfo{Name: "B"})

	// Access "a" to promote it
	c.get("a")

	// Insert "c", which should evict "b" (LRU), not "a"
	c.put("c", domain.StationInfo{Name: "C"})

	_, ok := c.get("a")
	assert.True(t, ok, "a was accessed recently, should not be evicted")

	_, ok = c.get("b")
	assert.False(t, ok, "b should have been evicted")
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", domain.StationInfo{Name: "A1"})
	c.put("a", domain.StationInfo{Name: "A2"})

	info, ok := c.get("a")
	assert.True(t, ok)
	assert.Equal(t, "A2", info.Name)
}
