package server

import (
	"bytes"
	"sync"
)

const defaultCacheEntries = 1024

type cacheEntry struct {
	result any
	found  bool
}

// responseCache memoizes query answers. The network never changes after it
// is built, so entries never go stale; the cache is reset once it is full.
type responseCache struct {
	mu      sync.RWMutex
	max     int
	entries map[string]cacheEntry
}

func newResponseCache(max int) *responseCache {
	return &responseCache{max: max, entries: map[string]cacheEntry{}}
}

func memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

func (c *responseCache) get(key string) (cacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e, ok
}

func (c *responseCache) put(key string, e cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.max {
		c.entries = map[string]cacheEntry{}
	}
	c.entries[key] = e
}

func (c *responseCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
