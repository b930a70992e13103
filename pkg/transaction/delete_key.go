package transaction

import (
	"github.com/frol/nearlib/pkg/crypto/keys"
	"github.com/frol/nearlib/pkg/io"
)

// DeleteKeyTX represents a delete-key transaction revoking CurKey from the
// originator account. Whether CurKey was actually active is the remote
// node's concern, nothing is validated locally.
type DeleteKeyTX struct {
	CurKey keys.PublicKey
}

// NewDeleteKey creates a Transaction of DeleteKeyType type.
func NewDeleteKey(nonce uint64, originator string, curKey keys.PublicKey) *Transaction {
	return &Transaction{
		Type:     DeleteKeyType,
		Nonce:    nonce,
		SignerID: originator,
		Data:     &DeleteKeyTX{CurKey: curKey},
	}
}

// EncodeBinary implements the io.Serializable interface.
func (tx *DeleteKeyTX) EncodeBinary(w *io.BinWriter) {
	tx.CurKey.EncodeBinary(w)
}

// DecodeBinary implements the io.Serializable interface.
func (tx *DeleteKeyTX) DecodeBinary(r *io.BinReader) {
	tx.CurKey.DecodeBinary(r)
}
