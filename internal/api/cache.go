package api

import (
	"sync"
	"time"
)

// responseCache keeps response bodies per endpoint until they go stale.
type responseCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]cacheItem
}

type cacheItem struct {
	body      []byte
	expiresAt time.Time
}

func newResponseCache(ttl time.Duration, now func() time.Time) *responseCache {
	if now == nil {
		now = time.Now
	}
	return &responseCache{ttl: ttl, now: now, items: make(map[string]cacheItem)}
}

func (c *responseCache) get(key string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if c.now().After(item.expiresAt) {
		delete(c.items, key)
		return nil, false
	}
	return item.body, true
}

func (c *responseCache) set(key string, body []byte) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{body: body, expiresAt: c.now().Add(c.ttl)}
}

func (c *responseCache) delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

func (c *responseCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]cacheItem)
}

func (c *responseCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
