package stationapi

import (
	"context"
	"sync"

	"github.com/frostline/thermoscale-etl/internal/domain"
	"github.com/frostline/thermoscale-etl/internal/observability"
)

// CachedResolver wraps a StationResolver with an in-memory LRU cache. Station
// records change rarely, so one successful lookup per sensor serves the whole
// consumer session.
type CachedResolver struct {
	inner   domain.StationResolver
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedResolver creates a cache decorator around a resolver.
func NewCachedResolver(inner domain.StationResolver, maxEntries int, metrics *observability.Metrics) *CachedResolver {
	return &CachedResolver{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedResolver) Resolve(ctx context.Context, sensorID string) (domain.StationInfo, error) {
	if info, ok := c.cache.get(sensorID); ok {
		c.observeCache("hit")
		return info, nil
	}
	c.observeCache("miss")

	info, err := c.inner.Resolve(ctx, sensorID)
	if err != nil {
		return info, err
	}
	// Only cache hits against the registry so transient "not found" responses
	// can be retried once the sensor is registered.
	if info.Name != "" {
		c.cache.put(sensorID, info)
	}
	return info, nil
}

func (c *CachedResolver) observeCache(result string) {
	if c.metrics != nil {
		c.metrics.StationCache.WithLabelValues(result).Inc()
	}
}

// lruCache is a simple thread-safe LRU cache for StationInfo records.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.StationInfo
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.StationInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.StationInfo{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.StationInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
