package cache

import (
	"sync"
	"time"
)

type entry struct {
	body []byte
	exp  time.Time
}

// Cache holds rendered pages keyed by view state. It keeps at most
// maxEntries pages; Set sweeps expired pages first and then drops the
// oldest one when the cache is still full.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
}

func NewCache(ttl time.Duration, maxEntries int) *Cache {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Cache{
		entries:    make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Now().After(e.exp) {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && time.Now().After(cur.exp) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.body, true
}

func (c *Cache) Set(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxEntries {
		c.sweep(now)
		if len(c.entries) >= c.maxEntries {
			c.evictOldest()
		}
	}
	c.entries[key] = entry{body: body, exp: now.Add(c.ttl)}
}

func (c *Cache) sweep(now time.Time) {
	for key, e := range c.entries {
		if now.After(e.exp) {
			delete(c.entries, key)
		}
	}
}

// evictOldest drops the entry that expires first. Every entry shares the
// same ttl, so that is also the one stored first.
func (c *Cache) evictOldest() {
	var oldest string
	var oldestExp time.Time
	first := true
	for key, e := range c.entries {
		if first || e.exp.Before(oldestExp) {
			oldest, oldestExp, first = key, e.exp, false
		}
	}
	if !first {
		delete(c.entries, oldest)
	}
}

func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
