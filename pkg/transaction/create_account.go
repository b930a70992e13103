package transaction

import (
	"github.com/frol/nearlib/pkg/crypto/keys"
	"github.com/frol/nearlib/pkg/io"
)

// CreateAccountTX represents a create-account transaction. It registers
// NewAccountID on the chain with PublicKey as its default access key,
// optionally moving Amount from the originator to the new account.
type CreateAccountTX struct {
	NewAccountID string
	PublicKey    keys.PublicKey
	// Amount is optional. Zero means the field is absent from the wire
	// form: downstream validation distinguishes absent from explicit zero.
	Amount uint64
}

// NewCreateAccount creates a Transaction of CreateAccountType type.
func NewCreateAccount(nonce uint64, originator, newAccountID string, pub keys.PublicKey, amount uint64) *Transaction {
	return &Transaction{
		Type:     CreateAccountType,
		Nonce:    nonce,
		SignerID: originator,
		Data: &CreateAccountTX{
			NewAccountID: newAccountID,
			PublicKey:    pub,
			Amount:       amount,
		},
	}
}

// EncodeBinary implements the io.Serializable interface.
func (tx *CreateAccountTX) EncodeBinary(w *io.BinWriter) {
	w.WriteString(tx.NewAccountID)
	tx.PublicKey.EncodeBinary(w)
	w.WriteBool(tx.Amount > 0)
	if tx.Amount > 0 {
		w.WriteU64LE(tx.Amount)
	}
}

// DecodeBinary implements the io.Serializable interface.
func (tx *CreateAccountTX) DecodeBinary(r *io.BinReader) {
	tx.NewAccountID = r.ReadString()
	tx.PublicKey.DecodeBinary(r)
	if r.ReadBool() {
		tx.Amount = r.ReadU64LE()
	}
}
