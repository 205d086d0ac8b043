package cache

import (
	"sync"
)

// Memo is a bounded key/value cache with insertion-order (FIFO) eviction.
// Reads never reorder entries, so this is deliberately not an LRU: the oldest
// inserted key is always the first to go. All operations are total; the cache
// has no failure mode.
type Memo struct {
	mu         sync.Mutex
	entries    map[string]string
	order      []string
	maxEntries int
}

// NewMemo creates a Memo holding at most maxEntries entries.
func NewMemo(maxEntries int) *Memo {
	return &Memo{
		entries:    make(map[string]string),
		maxEntries: maxEntries,
	}
}

// Get returns the cached value for key. It has no side effects and does not
// affect eviction order.
func (m *Memo) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, exists := m.entries[key]
	return value, exists
}

// Set inserts or overwrites a value. Inserting a new key at capacity first
// evicts the oldest inserted surviving key. Overwriting an existing key keeps
// its original insertion age; it does not move to the back of the line.
func (m *Memo) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[key]; exists {
		m.entries[key] = value
		return
	}

	if len(m.entries) >= m.maxEntries {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.entries, oldest)
	}

	m.entries[key] = value
	m.order = append(m.order, key)
}

// Clear removes all entries.
func (m *Memo) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]string)
	m.order = nil
}

// Size returns the current entry count.
func (m *Memo) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}
