// Package viewcache is a small path-keyed cache of rendered views. It is the
// concrete target of the mutation layer's invalidation signal: writes to the
// invoice collection invalidate the cached invoice views here.
package viewcache

import (
	"strings"
	"sync"
)

type Cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func New() *Cache {
	return &Cache{entries: make(map[string][]byte)}
}

// Get returns the cached body for path, if any.
func (c *Cache) Get(path string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	body, ok := c.entries[path]

	return body, ok
}

// Set stores the rendered body for path.
func (c *Cache) Set(path string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = body
}

// Invalidate discards the entry for path and every entry nested under it,
// including query-string variants.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, path)

	for key := range c.entries {
		if strings.HasPrefix(key, path+"/") || strings.HasPrefix(key, path+"?") {
			delete(c.entries, key)
		}
	}
}
