package cache

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Cache is an in-memory memoization layer with a uniform TTL. It is safe
// for concurrent use. A disabled cache keeps the same surface but never
// stores or returns anything, so callers do not branch on configuration.
type Cache struct {
	mu       sync.RWMutex
	entries  map[string]entry
	ttl      time.Duration
	disabled bool
	now      func() time.Time
}

type entry struct {
	value     any
	expiresAt time.Time
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Disabled returns a cache that drops every Set and misses every Get.
func Disabled() *Cache {
	c := New(0)
	c.disabled = true
	return c
}

// Key builds a canonical cache key from heterogeneous parts. String
// slices are sorted before rendering so argument order never produces
// distinct keys for the same logical request.
func Key(parts ...any) string {
	rendered := make([]string, 0, len(parts))
	for _, part := range parts {
		switch v := part.(type) {
		case []string:
			sorted := append([]string(nil), v...)
			sort.Strings(sorted)
			rendered = append(rendered, strings.Join(sorted, ","))
		default:
			rendered = append(rendered, fmt.Sprintf("%v", v))
		}
	}
	return strings.Join(rendered, ":")
}

func (c *Cache) Get(key string) (any, bool) {
	if c.disabled {
		return nil, false
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	if c.disabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Flush removes every entry whose key starts with prefix. An empty
// prefix clears the whole cache.
func (c *Cache) Flush(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
