// Package cache provides the in-memory store for extracted document text,
// so a batch run never parses the same PDF twice.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the minimal store interface the document loader needs.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Clear()
}

// Key builds a cache key from a document path and its modification time,
// so an edited document never serves stale text.
func Key(path string, modTime time.Time) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%d", path, modTime.UnixNano()))
	return "fnoltriage:v1:" + hex.EncodeToString(sum[:])
}

// Memory is a TTL-evicting in-memory cache.
type Memory struct {
	cache *gocache.Cache
}

// NewMemory creates a memory cache with the given default TTL.
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	return &Memory{cache: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves a value from the cache.
func (m *Memory) Get(key string) ([]byte, bool) {
	if val, found := m.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a value with the given TTL.
func (m *Memory) Set(key string, value []byte, ttl time.Duration) {
	m.cache.Set(key, value, ttl)
}

// Clear removes all entries.
func (m *Memory) Clear() {
	m.cache.Flush()
}
