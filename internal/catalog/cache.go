package catalog

import (
	"sync"
	"time"
)

// listCache provides in-memory caching for catalog listings. Catalog
// definitions are authored out of band and change rarely, so a short
// TTL keeps listing endpoints off the database without a reload hook.
type listCache[T any] struct {
	mu     sync.RWMutex
	values map[string]*cachedList[T]
	ttl    time.Duration
}

type cachedList[T any] struct {
	items     []T
	expiresAt time.Time
}

func newListCache[T any](ttl time.Duration) *listCache[T] {
	return &listCache[T]{
		values: make(map[string]*cachedList[T]),
		ttl:    ttl,
	}
}

// Get retrieves a cached listing if it exists and hasn't expired
func (c *listCache[T]) Get(key string) ([]T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.values[key]
	if !ok || time.Now().After(cached.expiresAt) {
		return nil, false
	}
	return cached.items, true
}

// Set stores a listing in the cache
func (c *listCache[T]) Set(key string, items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = &cachedList[T]{
		items:     items,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// InvalidateAll clears the entire cache
func (c *listCache[T]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = make(map[string]*cachedList[T])
}
