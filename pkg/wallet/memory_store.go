package wallet

import (
	"sort"
	"sync"

	"github.com/frol/nearlib/pkg/crypto/keys"
)

// MemoryStore is an in-memory KeyStore. It is safe for concurrent use.
type MemoryStore struct {
	mtx  sync.RWMutex
	keys map[string]*keys.PrivateKey
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{keys: make(map[string]*keys.PrivateKey)}
}

// GetKey implements the KeyStore interface.
func (s *MemoryStore) GetKey(accountID string) (*keys.PrivateKey, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	priv, ok := s.keys[accountID]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return priv, nil
}

// SetKey implements the KeyStore interface.
func (s *MemoryStore) SetKey(accountID string, priv *keys.PrivateKey) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.keys[accountID] = priv
	return nil
}

// DeleteKey implements the KeyStore interface.
func (s *MemoryStore) DeleteKey(accountID string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.keys, accountID)
	return nil
}

// Accounts implements the KeyStore interface.
func (s *MemoryStore) Accounts() ([]string, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()
	accounts := make([]string, 0, len(s.keys))
	for id := range s.keys {
		accounts = append(accounts, id)
	}
	sort.Strings(accounts)
	return accounts, nil
}
