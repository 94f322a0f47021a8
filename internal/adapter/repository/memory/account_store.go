// Package memory provides the in-process stores behind the engine.
// The processing path is strictly single-threaded, so the stores carry
// no locks; a fresh pair of stores backs every run.
package memory

import (
	"github.com/iho/payflow/internal/domain"
)

// AccountStore holds one account per client id, created lazily on
// first reference and kept in insertion order for deterministic
// snapshots.
type AccountStore struct {
	accounts map[uint16]*domain.Account
	order    []uint16
}

// NewAccountStore creates an empty AccountStore.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[uint16]*domain.Account),
	}
}

// GetOrCreate returns the account for clientID, creating it with zero
// balances if it does not exist yet.
func (s *AccountStore) GetOrCreate(clientID uint16) *domain.Account {
	if account, ok := s.accounts[clientID]; ok {
		return account
	}
	account := domain.NewAccount(clientID)
	s.accounts[clientID] = account
	s.order = append(s.order, clientID)
	return account
}

// Get returns the account for clientID if it exists.
func (s *AccountStore) Get(clientID uint16) (*domain.Account, bool) {
	account, ok := s.accounts[clientID]
	return account, ok
}

// Accounts returns every known account in insertion order.
func (s *AccountStore) Accounts() []*domain.Account {
	result := make([]*domain.Account, 0, len(s.order))
	for _, clientID := range s.order {
		result = append(result, s.accounts[clientID])
	}
	return result
}

// Len returns the number of known accounts.
func (s *AccountStore) Len() int {
	return len(s.accounts)
}
