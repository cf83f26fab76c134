package cache

import (
	"sync"
	"time"
)

type entry struct {
	data      interface{}
	expiresAt time.Time
}

// Cache is a small in-memory TTL cache. Used for per-tenant dashboard
// stats so repeated loads don't hammer the aggregate queries.
type Cache struct {
	entries map[string]entry
	mutex   sync.RWMutex
}

// New creates an empty cache
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
	}
}

// Get returns the value for key, or false when absent or expired.
// Expired entries are evicted lazily on the next Set or Invalidate.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.data, true
}

// Set stores a value with the given TTL
func (c *Cache) Set(key string, data interface{}, ttl time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = entry{data: data, expiresAt: now.Add(ttl)}
}

// Invalidate removes a single key
func (c *Cache) Invalidate(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.entries, key)
}

// Clear drops everything
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[string]entry)
}
