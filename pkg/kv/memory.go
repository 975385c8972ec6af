package kv

import "sync"

// MemStore is an in-memory Store used in tests. FailSet, when non-nil, is
// returned by every Set without mutating the map, simulating a full store.
type MemStore struct {
	mu      sync.RWMutex
	data    map[string]string
	FailSet error
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{data: map[string]string{}}
}

// Get returns the value stored under key.
func (s *MemStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key, or fails with FailSet when injected.
func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSet != nil {
		return s.FailSet
	}
	s.data[key] = value
	return nil
}

// Remove deletes key.
func (s *MemStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Make sure we conform to the interface
var _ Store = (*MemStore)(nil)
