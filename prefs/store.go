package prefs

import "sync"

// Store is the generic key-value persistence collaborator behind the
// preferences gateway. Implementations must be safe for concurrent use.
// Get returns ErrNotFound for missing keys.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// InMemoryStore is a trivial in-process Store implementation useful for
// tests, examples and single-process prototypes. Data is lost on process
// exit.
type InMemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewInMemoryStore returns an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{values: make(map[string]string)}
}

// Get returns the stored value or ErrNotFound.
func (s *InMemoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set stores (or overwrites) the value for the key.
func (s *InMemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
