/*
Package wallet implements key storage for NEAR accounts. A KeyStore maps
account IDs to their signing keys; the RPC client consults it when asked to
sign and submit a transaction. Losing a key for an account created with a
random key makes that account's default key unusable, so callers performing
account creation must persist the generated keys themselves.
*/
package wallet

import (
	"errors"

	"github.com/frol/nearlib/pkg/crypto/keys"
)

// ErrKeyNotFound is returned when a store has no key for the requested
// account.
var ErrKeyNotFound = errors.New("key not found")

// KeyStore is the interface all key storages share.
type KeyStore interface {
	// GetKey returns the private key of the given account or
	// ErrKeyNotFound.
	GetKey(accountID string) (*keys.PrivateKey, error)
	// SetKey saves the private key for the given account, overwriting any
	// previous one.
	SetKey(accountID string, priv *keys.PrivateKey) error
	// DeleteKey removes the key of the given account. Removing a missing
	// key is not an error.
	DeleteKey(accountID string) error
	// Accounts lists all account IDs the store has keys for.
	Accounts() ([]string, error)
}
