package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a cost-bounded, TTL-aware cache keyed by string.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
	ttl  time.Duration
}

// New creates a cache whose entries expire after ttl. A zero ttl keeps
// entries until they are evicted by cost.
func New[T any](name string, maxCost int64, ttl time.Duration, costFunc func(T) int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e4,     // pages are few; 10x the expected key count
		MaxCost:     maxCost, // bytes for the render cache
		BufferItems: 64,      // number of keys per Get buffer
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl: impl,
		name: name,
		ttl:  ttl,
	}, nil
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with the cache's default TTL. A cost of 0 asks the
// cost function. Sets are buffered and may be dropped under contention.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.impl.SetWithTTL(key, value, cost, c.ttl)
}

// GetOrCompute returns the cached value for key, computing and storing it on a miss.
func (c *Cache[T]) GetOrCompute(key string, compute func() (T, error)) (T, error) {
	if v, ok := c.impl.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	c.Set(key, v, 0)
	return v, nil
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait waits for buffered sets to be applied
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// Close stops the cache's background goroutines.
func (c *Cache[T]) Close() {
	c.impl.Close()
}

// ItemCount returns the current number of items in the cache
func (c *Cache[T]) ItemCount() int64 {
	m := c.impl.Metrics
	return int64(m.KeysAdded() - m.KeysEvicted())
}

// Stats returns cache statistics for the health endpoint
func (c *Cache[T]) Stats() map[string]any {
	metrics := c.impl.Metrics

	hitRate := 0.0
	totalRequests := metrics.Hits() + metrics.Misses()
	if totalRequests > 0 {
		hitRate = float64(metrics.Hits()) / float64(totalRequests) * 100
	}

	return map[string]any{
		"cache":          c.name,
		"hits":           metrics.Hits(),
		"misses":         metrics.Misses(),
		"sets":           metrics.KeysAdded(),
		"total_requests": totalRequests,
		"hit_rate":       hitRate,
		"sets_dropped":   metrics.SetsDropped(),
		"sets_rejected":  metrics.SetsRejected(),
		"memory_used":    metrics.CostAdded() - metrics.CostEvicted(),
		"current_items":  c.ItemCount(),
		"ttl_seconds":    c.ttl.Seconds(),
	}
}
