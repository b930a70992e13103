// Package transaction defines the typed transaction payloads this library
// can build and sign. A Transaction value is constructed, immediately
// signed, submitted and discarded; it is never mutated after creation.
package transaction

import (
	"crypto/sha256"
	"fmt"

	"github.com/frol/nearlib/pkg/io"
	"github.com/frol/nearlib/pkg/util"
)

// Transaction is a single state change applied to an account on the chain.
type Transaction struct {
	// The type of the transaction.
	Type TXType

	// Nonce is the per-account replay protection counter. The remote node
	// accepts a transaction only if its nonce exceeds every previously
	// accepted nonce of SignerID.
	Nonce uint64

	// SignerID is the account the transaction originates from.
	SignerID string

	// Data specific to the type of the transaction.
	// This is always a pointer to a <Type>TX.
	Data TXer

	hash   util.Uint256
	hashed bool
}

// EncodeBinary implements the io.Serializable interface.
func (t *Transaction) EncodeBinary(w *io.BinWriter) {
	w.WriteB(byte(t.Type))
	w.WriteU64LE(t.Nonce)
	w.WriteString(t.SignerID)
	t.Data.EncodeBinary(w)
}

// DecodeBinary implements the io.Serializable interface.
func (t *Transaction) DecodeBinary(r *io.BinReader) {
	t.Type = TXType(r.ReadB())
	t.Nonce = r.ReadU64LE()
	t.SignerID = r.ReadString()

	switch t.Type {
	case CreateAccountType:
		t.Data = new(CreateAccountTX)
	case AddKeyType:
		t.Data = new(AddKeyTX)
	case DeleteKeyType:
		t.Data = new(DeleteKeyTX)
	default:
		if r.Err == nil {
			r.Err = fmt.Errorf("invalid transaction type: %x", byte(t.Type))
		}
		return
	}
	t.Data.DecodeBinary(r)
}

// Bytes returns the binary form of the transaction.
func (t *Transaction) Bytes() ([]byte, error) {
	return io.ToByteArray(t)
}

// Hash returns the SHA-256 hash of the binary form of the transaction. The
// value is computed on the first call and cached, which is safe because
// transactions are immutable after creation.
func (t *Transaction) Hash() (util.Uint256, error) {
	if !t.hashed {
		b, err := t.Bytes()
		if err != nil {
			return util.Uint256{}, err
		}
		t.hash = sha256.Sum256(b)
		t.hashed = true
	}
	return t.hash, nil
}
