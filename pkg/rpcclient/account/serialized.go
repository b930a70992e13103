package account

import (
	"context"
	"sync"

	"github.com/frol/nearlib/pkg/crypto/keys"
	"github.com/frol/nearlib/pkg/nearrpc/result"
)

// Serialized is an opt-in wrapper around Account that serializes
// state-changing calls per originator account, so that concurrent callers
// sharing an originator never fetch the same nonce. Calls for different
// originators still run in parallel, read queries are never serialized.
// It doesn't protect against other processes submitting transactions from
// the same account.
type Serialized struct {
	*Account

	mtx    sync.Mutex
	owners map[string]*sync.Mutex
}

// NewSerialized creates a Serialized account wrapper over the given RPC
// interface.
func NewSerialized(client RPCAccount) *Serialized {
	return &Serialized{
		Account: New(client),
		owners:  make(map[string]*sync.Mutex),
	}
}

func (s *Serialized) ownerLock(owner string) *sync.Mutex {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	l, ok := s.owners[owner]
	if !ok {
		l = new(sync.Mutex)
		s.owners[owner] = l
	}
	return l
}

// CreateAccount performs Account.CreateAccount holding the originator lock.
func (s *Serialized) CreateAccount(ctx context.Context, newAccountID, publicKey string, amount uint64, originator string) (*result.TransactionResult, error) {
	l := s.ownerLock(originator)
	l.Lock()
	defer l.Unlock()
	return s.Account.CreateAccount(ctx, newAccountID, publicKey, amount, originator)
}

// CreateAccountWithRandomKey performs Account.CreateAccountWithRandomKey
// holding the originator lock.
func (s *Serialized) CreateAccountWithRandomKey(ctx context.Context, newAccountID string, amount uint64, originator string) (*keys.PrivateKey, *result.TransactionResult, error) {
	l := s.ownerLock(originator)
	l.Lock()
	defer l.Unlock()
	return s.Account.CreateAccountWithRandomKey(ctx, newAccountID, amount, originator)
}

// AddAccessKey performs Account.AddAccessKey holding the owner lock.
func (s *Serialized) AddAccessKey(ctx context.Context, owner, newPublicKey, contractID, methodName, fundingOwner string, fundingAmount uint64) (*result.TransactionResult, error) {
	l := s.ownerLock(owner)
	l.Lock()
	defer l.Unlock()
	return s.Account.AddAccessKey(ctx, owner, newPublicKey, contractID, methodName, fundingOwner, fundingAmount)
}

// RemoveAccessKey performs Account.RemoveAccessKey holding the owner lock.
func (s *Serialized) RemoveAccessKey(ctx context.Context, owner, publicKey string) (*result.TransactionResult, error) {
	l := s.ownerLock(owner)
	l.Lock()
	defer l.Unlock()
	return s.Account.RemoveAccessKey(ctx, owner, publicKey)
}
