package core

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// SessionStore holds the connected wallet address, the authenticated
// account record, and the linked custodial account address. The all-zero
// address is a sentinel for "absent": setters store it as such and the
// two-value getters report it as not present.
//
// Readers treat account presence as the sole authentication predicate.
type SessionStore struct {
	mu      sync.RWMutex
	address common.Address
	account *Account
	linked  common.Address
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// SetAddress stores the connected wallet address. The zero address clears it.
func (s *SessionStore) SetAddress(address common.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.address = address
}

// Address returns the connected wallet address, if any.
func (s *SessionStore) Address() (common.Address, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.address, s.address != (common.Address{})
}

// SetAccount replaces the authenticated account record. Nil clears it.
func (s *SessionStore) SetAccount(account *Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.account = account
}

// Account returns the authenticated account record, or nil.
func (s *SessionStore) Account() *Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.account
}

// SetLinkedAccount stores the custodial account address. The zero address
// clears it.
func (s *SessionStore) SetLinkedAccount(address common.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.linked = address
}

// LinkedAccount returns the custodial account address, if any.
func (s *SessionStore) LinkedAccount() (common.Address, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.linked, s.linked != (common.Address{})
}
