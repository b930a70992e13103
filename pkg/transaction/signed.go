package transaction

import (
	"github.com/frol/nearlib/pkg/crypto/keys"
	"github.com/frol/nearlib/pkg/io"
)

// SignedTransaction is a transaction with the signature of its hash and the
// public key the signature verifies against.
type SignedTransaction struct {
	Transaction *Transaction
	Signature   []byte
	PublicKey   keys.PublicKey
}

// Sign signs the transaction hash with the given private key and returns
// the result ready for submission.
func (t *Transaction) Sign(priv *keys.PrivateKey) (*SignedTransaction, error) {
	h, err := t.Hash()
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{
		Transaction: t,
		Signature:   priv.Sign(h.Bytes()),
		PublicKey:   *priv.PublicKey(),
	}, nil
}

// Verify checks that the signature matches the transaction hash and the
// embedded public key.
func (s *SignedTransaction) Verify() bool {
	h, err := s.Transaction.Hash()
	if err != nil {
		return false
	}
	return s.PublicKey.Verify(h.Bytes(), s.Signature)
}

// EncodeBinary implements the io.Serializable interface.
func (s *SignedTransaction) EncodeBinary(w *io.BinWriter) {
	s.Transaction.EncodeBinary(w)
	w.WriteVarBytes(s.Signature)
	s.PublicKey.EncodeBinary(w)
}

// DecodeBinary implements the io.Serializable interface.
func (s *SignedTransaction) DecodeBinary(r *io.BinReader) {
	s.Transaction = new(Transaction)
	s.Transaction.DecodeBinary(r)
	s.Signature = r.ReadVarBytes()
	s.PublicKey.DecodeBinary(r)
}

// Bytes returns the binary form of the signed transaction as submitted
// over the wire.
func (s *SignedTransaction) Bytes() ([]byte, error) {
	return io.ToByteArray(s)
}
