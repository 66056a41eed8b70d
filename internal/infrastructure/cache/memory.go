package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	pkgcache "pptgenie-backend/pkg/cache"
)

type memoryEntry struct {
	data      []byte
	counter   int64
	expiresAt time.Time // zero = no expiry
}

func (e *memoryEntry) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// MemoryCache is a process-local implementation of pkg/cache.Cache.
// Used in tests and when running without Redis.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

func NewMemoryCache() pkgcache.Cache {
	return &MemoryCache{entries: make(map[string]*memoryEntry)}
}

func (m *MemoryCache) get(key string) (*memoryEntry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired() {
		delete(m.entries, key)
		return nil, false
	}
	return e, true
}

func (m *MemoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.get(key)
	if !ok || e.data == nil {
		return false, nil
	}

	if err := json.Unmarshal(e.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e := &memoryEntry{data: data}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	m.entries[key] = e
	return nil
}

func (m *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func (m *MemoryCache) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryCache) Increment(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.get(key)
	if !ok {
		e = &memoryEntry{}
		m.entries[key] = e
	}
	e.counter++
	// Mirror redis INCR, which stores the counter as a numeric string
	// readable through Get.
	e.data = []byte(strconv.FormatInt(e.counter, 10))
	return e.counter, nil
}

func (m *MemoryCache) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.get(key)
	return ok, nil
}

func (m *MemoryCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.get(key); ok {
		e.expiresAt = time.Now().Add(ttl)
	}
	return nil
}

func (m *MemoryCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.get(key)
	if !ok {
		return -2 * time.Second, nil // mirrors redis: key does not exist
	}
	if e.expiresAt.IsZero() {
		return -1 * time.Second, nil // no expiry
	}
	return time.Until(e.expiresAt), nil
}
