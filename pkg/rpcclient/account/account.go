/*
Package account provides a way to change account state on the chain via the
RPC client: account creation, access-key management and the read queries
that go with them.

Every state-changing method performs a single fetch-nonce/build/sign/submit
cycle with no retries. The nonce fetch and its subsequent use are not
atomic: two concurrent calls for the same originator may read the same
nonce, in which case the remote node accepts exactly one of the submissions
and rejects the other with an application-level error. Nothing is locked or
reserved locally; use Serialized when concurrent writers share an
originator account and this trade-off is not acceptable.
*/
package account

import (
	"context"

	"github.com/frol/nearlib/pkg/crypto/keys"
	"github.com/frol/nearlib/pkg/nearrpc/result"
	"github.com/frol/nearlib/pkg/transaction"
)

// RPCAccount is an interface required from the RPC client to successfully
// perform account-level operations.
type RPCAccount interface {
	GetNonce(ctx context.Context, accountID string) (uint64, error)
	SignAndSubmitTransaction(ctx context.Context, signerID string, tx *transaction.Transaction) (*result.TransactionResult, error)
	ViewAccount(ctx context.Context, accountID string) (*result.AccountView, error)
	Query(ctx context.Context, path string, data []byte) (*result.QueryResponse, error)
}

// Account performs account-level operations on behalf of originator
// accounts whose keys the underlying client can look up.
type Account struct {
	client RPCAccount
}

// New creates an Account instance using the specified RPC interface. All
// communication is performed via this client, it's the only dependency.
func New(client RPCAccount) *Account {
	return &Account{client: client}
}

// CreateAccount registers newAccountID on the chain with the given base58
// public key as its default access key, funding it with amount from the
// originator. A zero amount is not sent at all, the wire encoding
// distinguishes an absent amount from an explicit zero.
func (a *Account) CreateAccount(ctx context.Context, newAccountID, publicKey string, amount uint64, originator string) (*result.TransactionResult, error) {
	nonce, err := a.client.GetNonce(ctx, originator)
	if err != nil {
		return nil, err
	}
	pub, err := keys.NewPublicKeyFromString(publicKey)
	if err != nil {
		return nil, err
	}
	tx := transaction.NewCreateAccount(nonce+1, originator, newAccountID, *pub, amount)
	return a.client.SignAndSubmitTransaction(ctx, originator, tx)
}

// CreateAccountWithRandomKey generates a fresh random key pair and performs
// CreateAccount with its public key. The generated private key is returned
// even when the submission fails and the caller is solely responsible for
// persisting it: losing it makes the new account's default key unusable.
func (a *Account) CreateAccountWithRandomKey(ctx context.Context, newAccountID string, amount uint64, originator string) (*keys.PrivateKey, *result.TransactionResult, error) {
	priv, err := keys.NewPrivateKey()
	if err != nil {
		return nil, nil, err
	}
	res, err := a.CreateAccount(ctx, newAccountID, priv.PublicKey().String(), amount, originator)
	return priv, res, err
}

// AddAccessKey authorizes the given base58 public key to sign transactions
// for the owner account. An empty contractID grants full permission. A
// non-empty contractID restricts the new key to that contract and, when
// methodName is non-empty, to that single method. fundingOwner and
// fundingAmount describe how the key is funded and are likewise skipped
// when empty. methodName without contractID is rejected with
// transaction.ErrMethodWithoutContract.
func (a *Account) AddAccessKey(ctx context.Context, owner, newPublicKey, contractID, methodName, fundingOwner string, fundingAmount uint64) (*result.TransactionResult, error) {
	if contractID == "" && methodName != "" {
		return nil, transaction.ErrMethodWithoutContract
	}
	nonce, err := a.client.GetNonce(ctx, owner)
	if err != nil {
		return nil, err
	}
	pub, err := keys.NewPublicKeyFromString(newPublicKey)
	if err != nil {
		return nil, err
	}

	var accessKey *transaction.AccessKey
	if contractID != "" {
		var method []byte
		if methodName != "" {
			method = []byte(methodName)
		}
		accessKey, err = transaction.NewAccessKey(contractID, method, fundingOwner, fundingAmount)
		if err != nil {
			return nil, err
		}
	}
	tx := transaction.NewAddKey(nonce+1, owner, *pub, accessKey)
	return a.client.SignAndSubmitTransaction(ctx, owner, tx)
}

// RemoveAccessKey revokes the given base58 public key from the owner
// account. Whether the key was previously active is not validated locally,
// a deletion of a non-existent key is the remote node's concern.
func (a *Account) RemoveAccessKey(ctx context.Context, owner, publicKey string) (*result.TransactionResult, error) {
	nonce, err := a.client.GetNonce(ctx, owner)
	if err != nil {
		return nil, err
	}
	pub, err := keys.NewPublicKeyFromString(publicKey)
	if err != nil {
		return nil, err
	}
	tx := transaction.NewDeleteKey(nonce+1, owner, *pub)
	return a.client.SignAndSubmitTransaction(ctx, owner, tx)
}

// ViewAccount returns the current state of the given account. It's a pure
// read-through query with no local state change.
func (a *Account) ViewAccount(ctx context.Context, accountID string) (*result.AccountView, error) {
	return a.client.ViewAccount(ctx, accountID)
}
