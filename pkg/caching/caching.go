package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache stores downloaded catalogs on disk, keyed by source URL, with a TTL.
type Cache struct {
	path string
	ttl  time.Duration
}

// NewCache creates a new Cache instance.
// The cache path will be created if it doesn't exist.
func NewCache(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		path: path,
		ttl:  ttl,
	}, nil
}

// key generates a SHA256 hash of the URL to use as a filename.
func (c *Cache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x.json", hash)
}

func (c *Cache) file(url string) string {
	return filepath.Join(c.path, c.key(url))
}

// Get returns the cached body for url if it exists and is younger than the TTL.
// A zero TTL disables freshness, so Get always misses.
func (c *Cache) Get(url string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	info, err := os.Stat(c.file(url))
	if err != nil {
		return nil, false
	}

	if time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(c.file(url))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Stale returns the cached body for url regardless of age. It is the fallback
// when the remote source is unreachable.
func (c *Cache) Stale(url string) ([]byte, time.Time, bool) {
	info, err := os.Stat(c.file(url))
	if err != nil {
		return nil, time.Time{}, false
	}
	data, err := os.ReadFile(c.file(url))
	if err != nil {
		return nil, time.Time{}, false
	}
	return data, info.ModTime(), true
}

// Set adds an item to the cache.
func (c *Cache) Set(url string, data []byte) error {
	if err := os.WriteFile(c.file(url), data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}
