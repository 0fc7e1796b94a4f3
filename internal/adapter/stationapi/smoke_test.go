//go:build stationapi

package stationapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/frostline/thermoscale-etl/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit a real station registry and require a STATION_API_URL env
// var plus a registered "attic-01" sensor.
// Run with: go test -tags=stationapi ./internal/adapter/stationapi/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	baseURL := os.Getenv("STATION_API_URL")
	if baseURL == "" {
		t.Fatal("STATION_API_URL must be set to run smoke tests")
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSmoke_Resolve(t *testing.T) {
	c := smokeClient(t)

	info, err := c.Resolve(context.Background(), "attic-01")
	require.NoError(t, err)

	assert.NotEmpty(t, info.Name)
}

func TestSmoke_Resolve_UnknownSensor(t *testing.T) {
	c := smokeClient(t)

	info, err := c.Resolve(context.Background(), "smoke-nonexistent-sensor")
	require.NoError(t, err)
	assert.Empty(t, info.Name)
}

func TestSmoke_CachedResolver(t *testing.T) {
	c := smokeClient(t)
	cached := NewCachedResolver(c, 10, observability.NewMetricsForTesting())

	// First call: cache miss, real registry lookup.
	r1, err := cached.Resolve(context.Background(), "attic-01")
	require.NoError(t, err)

	// Second call: cache hit, no registry lookup.
	r2, err := cached.Resolve(context.Background(), "attic-01")
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}
