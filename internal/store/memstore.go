package store

import (
	"sync"

	"github.com/kittclouds/wordrighter/pkg/lexicon"
)

// MemStore is an in-memory implementation of Storer for testing and for
// running without persistence.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string]lexicon.Replacement
	saves   int
}

// NewMemStore creates a new in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string]lexicon.Replacement)}
}

// NewMemStoreWith creates a store preloaded with entries.
func NewMemStoreWith(entries map[string]lexicon.Replacement) *MemStore {
	return &MemStore{entries: copyEntries(entries)}
}

// Load returns a copy of the held wordbook.
func (s *MemStore) Load() (map[string]lexicon.Replacement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Deep copy to avoid mutation issues
	return copyEntries(s.entries), nil
}

// Save replaces the held wordbook with a copy of entries.
func (s *MemStore) Save(entries map[string]lexicon.Replacement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = copyEntries(entries)
	s.saves++
	return nil
}

// Saves returns how many times Save was called.
func (s *MemStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// Close is a no-op for MemStore.
func (s *MemStore) Close() error {
	return nil
}
