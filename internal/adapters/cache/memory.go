// Package cache provides the in-process memory cache used for the daily quote payload.
package cache

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is used when no capacity is configured.
const DefaultSize = 16

// MemoryCache is a bounded key to bytes cache. Once full it evicts the least
// recently used entry, so a retrieve may miss even for a key saved earlier.
// Entries never expire on their own.
type MemoryCache struct {
	entries *lru.Cache[string, []byte]
}

// NewMemoryCache creates a cache holding at most size entries.
func NewMemoryCache(size int) (*MemoryCache, error) {
	if size <= 0 {
		size = DefaultSize
	}

	entries, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache: %w", err)
	}

	return &MemoryCache{entries: entries}, nil
}

// Save stores a copy of value under key.
func (c *MemoryCache) Save(key string, value []byte) {
	c.entries.Add(key, slices.Clone(value))
}

// Retrieve returns a copy of the value stored under key.
func (c *MemoryCache) Retrieve(key string) ([]byte, bool) {
	v, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}

	return slices.Clone(v), true
}
