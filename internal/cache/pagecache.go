// Package cache stores rendered listing pages keyed by route path.
package cache

import (
	"strings"
	"sync"
)

// Invalidator is the only cache surface the orchestrators depend on.
type Invalidator interface {
	Invalidate(prefix string)
}

// PageCache is a concurrency-safe route → rendered-bytes map. Listing
// handlers serve from it and repopulate on miss; mutations invalidate by
// route prefix.
type PageCache struct {
	mu    sync.RWMutex
	pages map[string][]byte
}

func NewPageCache() *PageCache {
	return &PageCache{pages: make(map[string][]byte)}
}

func (c *PageCache) Get(path string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	body, ok := c.pages[path]
	return body, ok
}

func (c *PageCache) Set(path string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[path] = body
}

// Invalidate drops every cached page whose route starts with prefix.
func (c *PageCache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for path := range c.pages {
		if strings.HasPrefix(path, prefix) {
			delete(c.pages, path)
		}
	}
}

var _ Invalidator = (*PageCache)(nil)
