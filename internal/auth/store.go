// Package auth holds the session credential used to decorate backend
// requests. The store has plain set/clear semantics; expiry is driven by
// the backend client when it sees an authorization failure.
package auth

import "sync"

//go:generate mockgen -destination=mock/mock_store.go -package=mockauth -source=store.go

// Store holds the current session credential.
type Store interface {
	// Set stores the credential, replacing any previous one.
	Set(token string)

	// Get returns the stored credential and whether one is present.
	Get() (string, bool)

	// Clear removes the stored credential. Clearing an empty store is a
	// no-op.
	Clear()
}

// MemoryStore is an in-memory credential holder.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemoryStore creates an empty credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Set stores the credential
func (s *MemoryStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.set = true
}

// Get returns the stored credential
func (s *MemoryStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, s.set
}

// Clear removes the stored credential
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.set = false
}
