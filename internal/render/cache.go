package render

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"
)

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}

// Key derives a cache key from the source bytes and the sections requested.
func Key(src []byte, sections []string) string {
	return ContentHashHex([]byte(ContentHashHex(src) + "\x00" + strings.Join(sections, "\x00")))
}

// Cache is a thread-safe store of rendered output keyed by Key.
type Cache struct {
	mu      sync.Mutex
	entries map[string][]byte
	max     int
}

// NewCache returns a cache holding at most max entries. When full, the whole
// cache is dropped before the next insert.
func NewCache(max int) *Cache {
	if max <= 0 {
		max = 32
	}
	return &Cache{entries: make(map[string][]byte), max: max}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[key]
	return b, ok
}

func (c *Cache) Put(key string, b []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.max {
		clear(c.entries)
	}
	c.entries[key] = b
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
