package cache

import (
	"sync"
	"time"
)

// Store is the cache surface the resolver and the aggregator depend on.
// Implementations never block and never fail; a stale or missing key is
// simply reported as absent.
type Store interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
	Delete(key string)
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Memory is an in-process TTL cache. Entries are evicted lazily on read;
// there is no background sweep. Safe for concurrent use.
//
// Memory does not interpret TTLs: a non-positive TTL produces an entry that
// is already expired. Callers are expected to supply a sane TTL.
type Memory struct {
	mu    sync.RWMutex
	store map[string]entry
	now   func() time.Time
}

// NewMemory creates an empty cache. One instance is built at process start
// and shared by every request; there is no teardown.
func NewMemory() *Memory {
	return &Memory{
		store: make(map[string]entry),
		now:   time.Now,
	}
}

// Get returns the live value for key, or absent if the key is unknown or
// its entry has expired. An expired entry is removed on the spot.
func (m *Memory) Get(key string) (interface{}, bool) {
	m.mu.RLock()
	e, ok := m.store[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !m.now().Before(e.expiresAt) {
		m.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have
		// refreshed the entry in the meantime.
		if cur, still := m.store[key]; still && !m.now().Before(cur.expiresAt) {
			delete(m.store, key)
		}
		m.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

// Set stores value under key, unconditionally overwriting any previous
// entry. The entry expires ttl from now.
func (m *Memory) Set(key string, value interface{}, ttl time.Duration) {
	m.mu.Lock()
	m.store[key] = entry{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
	m.mu.Unlock()
}

// Delete removes key immediately. Deleting an unknown key is a no-op.
func (m *Memory) Delete(key string) {
	m.mu.Lock()
	delete(m.store, key)
	m.mu.Unlock()
}
