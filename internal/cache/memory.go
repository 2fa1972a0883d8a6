package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryCache struct {
	entries *lru.Cache
	now     func() time.Time
}

// NewMemoryCache returns an in-process LRU cache holding at most size entries.
func NewMemoryCache(size int) (Cache, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}
	return &memoryCache{entries: entries, now: time.Now}, nil
}

func (m *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	raw, ok := m.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	entry := raw.(memoryEntry)
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		m.entries.Remove(key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.entries.Add(key, entry)
	return nil
}

func (m *memoryCache) Close() error {
	m.entries.Purge()
	return nil
}
