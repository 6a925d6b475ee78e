package content

import (
	"io/fs"
	"sync"
	"time"
)

// Cache holds the loaded Library for a TTL. A zero TTL keeps the library
// until Invalidate is called.
type Cache struct {
	mu      sync.RWMutex
	lib     *Library
	fetched time.Time
	ttl     time.Duration
	fsys    fs.FS
	stale   bool
	loads   int
}

// NewCache creates a Cache that loads content from fsys.
func NewCache(fsys fs.FS, ttl time.Duration) *Cache {
	return &Cache{fsys: fsys, ttl: ttl}
}

func (c *Cache) valid() bool {
	if c.lib == nil || c.stale {
		return false
	}
	return c.ttl <= 0 || time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.stale = true
	c.mu.Unlock()
}

// Library returns the cached library, reloading it when stale. When a reload
// fails the previous library, if any, is returned alongside the error.
func (c *Cache) Library() (*Library, error) {
	c.mu.RLock()
	if c.valid() {
		lib := c.lib
		c.mu.RUnlock()
		return lib, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.lib, nil
	}
	lib, err := Load(c.fsys)
	c.loads++
	if err != nil {
		return c.lib, err
	}
	c.lib = lib
	c.stale = false
	c.fetched = time.Now()
	return lib, nil
}

// Loads reports how many times the cache has read from its filesystem.
func (c *Cache) Loads() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loads
}
