package cache

import (
	"context"
	"sync"
	"time"
)

type TTLEntry[V any] struct {
	Value     V
	ExpiresAt time.Time
}

// TTLMap is a thread-safe map whose entries expire TTL after their last Set.
type TTLMap[K comparable, V any] struct {
	data map[K]*TTLEntry[V]
	mu   sync.RWMutex
	ttl  time.Duration
	now  func() time.Time
}

func NewTTLMap[K comparable, V any](ttl time.Duration) *TTLMap[K, V] {
	return &TTLMap[K, V]{
		data: make(map[K]*TTLEntry[V]),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get returns the value if present and not expired. Expired entries are
// removed on access.
func (m *TTLMap[K, V]) Get(key K) (V, bool) {
	var zero V
	m.mu.RLock()
	entry, exists := m.data[key]
	if !exists {
		m.mu.RUnlock()
		return zero, false
	}
	isExpired := m.now().After(entry.ExpiresAt)
	value := entry.Value
	m.mu.RUnlock()

	if isExpired {
		m.mu.Lock()
		if current, ok := m.data[key]; ok && m.now().After(current.ExpiresAt) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return zero, false
	}

	return value, true
}

func (m *TTLMap[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = &TTLEntry[V]{
		Value:     value,
		ExpiresAt: m.now().Add(m.ttl),
	}
}

func (m *TTLMap[K, V]) Delete(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func (m *TTLMap[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Purge drops every expired entry and returns how many were removed.
func (m *TTLMap[K, V]) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	removed := 0
	for k, entry := range m.data {
		if now.After(entry.ExpiresAt) {
			delete(m.data, k)
			removed++
		}
	}
	return removed
}

// RunJanitor purges expired entries every interval until ctx is done.
func (m *TTLMap[K, V]) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Purge()
		}
	}
}
