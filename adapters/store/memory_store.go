package store

import (
	"context"
	"sync"

	"github.com/seimoney/seimoney-go/core"
	"github.com/seimoney/seimoney-go/ports"
)

// MemoryStore is an in-memory implementation of the TokenStore interface.
// It is the local-storage analog for single-process use and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemoryStore creates a new in-memory token store
func NewMemoryStore() ports.TokenStore {
	return &MemoryStore{}
}

// SetToken stores the bearer token
func (s *MemoryStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.set = true
	return nil
}

// Token returns the stored bearer token
func (s *MemoryStore) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return "", core.ErrTokenNotFound
	}
	return s.token, nil
}

// DeleteToken removes the stored bearer token
func (s *MemoryStore) DeleteToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.set = false
	return nil
}
