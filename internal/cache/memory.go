package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements in-memory document caching. Batch runs that list
// the same file more than once read it from disk only once.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a document's lines from the cache
func (c *MemoryCache) Get(key string) ([]string, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]string), true
	}
	return nil, false
}

// Set stores a document's lines in the cache with the given TTL
func (c *MemoryCache) Set(key string, lines []string, ttl time.Duration) {
	c.cache.Set(key, lines, ttl)
}

// Flush removes all cached documents
func (c *MemoryCache) Flush() {
	c.cache.Flush()
}
