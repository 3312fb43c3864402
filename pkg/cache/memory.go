package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// entry holds a cached value with its expiration time.
type entry[V any] struct {
	expiresAt time.Time // zero value = never expires
	value     V
}

// Memory is an in-memory cache with TTL-based expiration.
type Memory[V any] struct {
	items map[string]entry[V]
	opts  *options
	group singleflight.Group
	mu    sync.Mutex
}

// NewMemory creates a new in-memory cache.
func NewMemory[V any](opts ...Option) *Memory[V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Memory[V]{
		items: make(map[string]entry[V]),
		opts:  o,
	}
}

// Get retrieves a value by key.
// Returns ErrNotFound if the key does not exist or has expired.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[key]
	if !ok || m.expired(e) {
		delete(m.items, key)
		var zero V
		return zero, ErrNotFound
	}
	return e.value, nil
}

// Set stores a value with the given TTL.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ttl == 0 {
		ttl = m.opts.defaultTTL
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = m.opts.now().Add(ttl)
	}

	m.sweep()
	m.items[key] = entry[V]{value: value, expiresAt: expiresAt}
	return nil
}

// Delete removes a key from the cache.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// Len returns the number of live entries.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep()
	return len(m.items)
}

// GetOrSet returns the cached value for key, or calls fn on a miss and
// caches its result with the default TTL.
// Concurrent misses for the same key share a single fn call.
// If fn returns an error, nothing is cached and the error is returned.
func (m *Memory[V]) GetOrSet(ctx context.Context, key string, fn func(ctx context.Context) (V, error)) (V, error) {
	if v, err := m.Get(ctx, key); err == nil {
		return v, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		val, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		_ = m.Set(ctx, key, val, 0)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// expired reports whether e has passed its expiration time.
// Caller must hold the mutex.
func (m *Memory[V]) expired(e entry[V]) bool {
	return !e.expiresAt.IsZero() && m.opts.now().After(e.expiresAt)
}

// sweep removes expired entries.
// Caller must hold the mutex.
func (m *Memory[V]) sweep() {
	for k, e := range m.items {
		if m.expired(e) {
			delete(m.items, k)
		}
	}
}
