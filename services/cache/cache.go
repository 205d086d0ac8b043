package cache

import (
	"strings"
	"sync"
	"time"
)

// Cache is a general purpose TTL cache. Values expire by time rather than by
// count; it backs the per-client rate limit bookkeeping and any short-lived
// memoization.
type Cache struct {
	mu   sync.RWMutex
	data map[string]cacheItem
	ttl  time.Duration
}

// cacheItem holds a cached value and its metadata.
type cacheItem struct {
	value    []byte
	cachedAt time.Time
	ttl      time.Duration // optional per-entry TTL
}

// NewCache creates a Cache whose entries expire after the default ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		data: make(map[string]cacheItem),
		ttl:  ttl,
	}
}

// Set stores a value under key with the default TTL.
func (c *Cache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cacheItem{
		value:    value,
		cachedAt: time.Now(),
	}
}

// SetWithTTL stores a value with its own expiry, overriding the default.
func (c *Cache) SetWithTTL(key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = cacheItem{
		value:    value,
		cachedAt: time.Now(),
		ttl:      ttl,
	}
}

// Get returns the value for key, dropping it if it has expired.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, exists := c.data[key]
	if !exists {
		return nil, false
	}

	// Per-entry TTL takes precedence
	if item.ttl > 0 && time.Since(item.cachedAt) > item.ttl {
		delete(c.data, key)
		return nil, false
	}

	if item.ttl == 0 && time.Since(item.cachedAt) > c.ttl {
		delete(c.data, key)
		return nil, false
	}

	return item.value, true
}

// Delete removes a key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[string]cacheItem)
}

// ClearPrefix drops every key starting with prefix.
func (c *Cache) ClearPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
}

// Size returns the current entry count, expired entries included until their
// next read.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.data)
}

// GetAllWithPrefix returns a copy of every live entry whose key starts with
// prefix. Used by the admin observability endpoints.
func (c *Cache) GetAllWithPrefix(prefix string) map[string][]byte {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string][]byte)
	for key, item := range c.data {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if item.ttl > 0 && time.Since(item.cachedAt) > item.ttl {
			continue
		}
		if item.ttl == 0 && time.Since(item.cachedAt) > c.ttl {
			continue
		}
		result[key] = item.value
	}

	return result
}
