package wallet

import (
	"fmt"
	"os"
	"time"

	"github.com/frol/nearlib/pkg/crypto/keys"
	bolt "go.etcd.io/bbolt"
)

var keysBucket = []byte("keys")

// BoltStore is a file-backed KeyStore on top of BoltDB. A single file can
// hold keys for any number of accounts.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore creates or opens a BoltStore at the given path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, os.FileMode(0600), &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open key store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(keysBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltStore{db: db}, nil
}

// GetKey implements the KeyStore interface.
func (s *BoltStore) GetKey(accountID string) (*keys.PrivateKey, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(keysBucket).Get([]byte(accountID))
		if v == nil {
			return ErrKeyNotFound
		}
		raw = make([]byte, len(v))
		copy(raw, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys.NewPrivateKeyFromBytes(raw)
}

// SetKey implements the KeyStore interface.
func (s *BoltStore) SetKey(accountID string, priv *keys.PrivateKey) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(keysBucket).Put([]byte(accountID), priv.Bytes())
	})
}

// DeleteKey implements the KeyStore interface.
func (s *BoltStore) DeleteKey(accountID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(keysBucket).Delete([]byte(accountID))
	})
}

// Accounts implements the KeyStore interface.
func (s *BoltStore) Accounts() ([]string, error) {
	var accounts []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(keysBucket).ForEach(func(k, _ []byte) error {
			accounts = append(accounts, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// Close closes the underlying database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
