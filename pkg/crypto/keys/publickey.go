package keys

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/frol/nearlib/pkg/encoding/base58"
	"github.com/frol/nearlib/pkg/io"
)

// PublicKey represents a 32-byte Ed25519 public key.
type PublicKey [ed25519.PublicKeySize]byte

// NewPublicKeyFromBytes returns a public key created from b.
func NewPublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid public key length: expected %d bytes got %d", ed25519.PublicKeySize, len(b))
	}
	var pub PublicKey
	copy(pub[:], b)
	return &pub, nil
}

// NewPublicKeyFromString returns a public key created from its base58
// representation, with or without the Ed25519Prefix.
func NewPublicKeyFromString(s string) (*PublicKey, error) {
	b, err := base58.DecodeLen(strings.TrimPrefix(s, Ed25519Prefix), ed25519.PublicKeySize)
	if err != nil {
		return nil, err
	}
	var pub PublicKey
	copy(pub[:], b)
	return &pub, nil
}

// Verify returns true if the signature is a valid signature of message by
// this public key.
func (p *PublicKey) Verify(message, signature []byte) bool {
	return ed25519.Verify(p.Bytes(), message, signature)
}

// Bytes returns the byte representation of the public key.
func (p *PublicKey) Bytes() []byte {
	b := make([]byte, ed25519.PublicKeySize)
	copy(b, p[:])
	return b
}

// String implements the stringer interface. The key is base58-encoded with
// the Ed25519Prefix and can be fed back to NewPublicKeyFromString.
func (p *PublicKey) String() string {
	return Ed25519Prefix + base58.Encode(p[:])
}

// EncodeBinary implements the io.Serializable interface.
func (p *PublicKey) EncodeBinary(w *io.BinWriter) {
	w.WriteBytes(p[:])
}

// DecodeBinary implements the io.Serializable interface.
func (p *PublicKey) DecodeBinary(r *io.BinReader) {
	r.ReadBytes(p[:])
}
