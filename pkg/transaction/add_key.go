package transaction

import (
	"github.com/frol/nearlib/pkg/crypto/keys"
	"github.com/frol/nearlib/pkg/io"
)

// AddKeyTX represents an add-key transaction. It authorizes NewKey to sign
// transactions for the originator account. A nil AccessKey grants full
// permission, a non-nil one scopes the new key to a contract and
// optionally to a method.
type AddKeyTX struct {
	NewKey    keys.PublicKey
	AccessKey *AccessKey
}

// NewAddKey creates a Transaction of AddKeyType type.
func NewAddKey(nonce uint64, originator string, newKey keys.PublicKey, accessKey *AccessKey) *Transaction {
	return &Transaction{
		Type:     AddKeyType,
		Nonce:    nonce,
		SignerID: originator,
		Data: &AddKeyTX{
			NewKey:    newKey,
			AccessKey: accessKey,
		},
	}
}

// EncodeBinary implements the io.Serializable interface.
func (tx *AddKeyTX) EncodeBinary(w *io.BinWriter) {
	tx.NewKey.EncodeBinary(w)
	w.WriteBool(tx.AccessKey != nil)
	if tx.AccessKey != nil {
		tx.AccessKey.EncodeBinary(w)
	}
}

// DecodeBinary implements the io.Serializable interface.
func (tx *AddKeyTX) DecodeBinary(r *io.BinReader) {
	tx.NewKey.DecodeBinary(r)
	if r.ReadBool() {
		tx.AccessKey = new(AccessKey)
		tx.AccessKey.DecodeBinary(r)
	}
}
