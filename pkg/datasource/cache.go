package datasource

import (
	"sync"
	"time"
)

// cacheEntry holds a cached query result with a timestamp for TTL expiration.
type cacheEntry struct {
	result    Result
	fetchedAt time.Time
}

// cache is a thread-safe in-memory query cache with TTL expiration.
// Expired entries are cleaned up lazily on get; there is no background
// goroutine.
type cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
}

func newCache(ttl time.Duration) *cache {
	return &cache{
		entries: make(map[string]*cacheEntry),
		ttl:     ttl,
	}
}

// get returns a cached result if present and not expired.
func (c *cache) get(key string) (Result, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return Result{}, false
	}

	if time.Since(entry.fetchedAt) > c.ttl {
		// Re-check under write lock: a concurrent set may have replaced
		// the entry with a fresh one between RUnlock and Lock.
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && time.Since(current.fetchedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return Result{}, false
	}

	return entry.result, true
}

// set stores a result with the current timestamp.
func (c *cache) set(key string, result Result) {
	c.mu.Lock()
	c.entries[key] = &cacheEntry{
		result:    result,
		fetchedAt: time.Now(),
	}
	c.mu.Unlock()
}
