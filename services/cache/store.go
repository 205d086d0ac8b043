package cache

import (
	"time"
)

// Store is the contract callers use to front the scheduler with a
// compute-once-reuse lookup: probe Get before submitting work, call Set with
// the result after a successful dispatch. The count-bounded Memo and the
// time-bounded ttlStore both satisfy it; the two differ only in what triggers
// eviction.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Clear()
	Size() int
}

var _ Store = (*Memo)(nil)
var _ Store = (*ttlStore)(nil)

// ttlStore adapts the TTL Cache to the Store contract for string payloads.
type ttlStore struct {
	cache *Cache
	ttl   time.Duration
}

// NewTTLStore returns a Store whose entries expire after ttl instead of being
// evicted by count.
func NewTTLStore(cache *Cache, ttl time.Duration) Store {
	return &ttlStore{cache: cache, ttl: ttl}
}

func (s *ttlStore) Get(key string) (string, bool) {
	value, exists := s.cache.Get(key)
	if !exists {
		return "", false
	}
	return string(value), true
}

func (s *ttlStore) Set(key, value string) {
	s.cache.SetWithTTL(key, []byte(value), s.ttl)
}

func (s *ttlStore) Clear() {
	s.cache.Clear()
}

func (s *ttlStore) Size() int {
	return s.cache.Size()
}
