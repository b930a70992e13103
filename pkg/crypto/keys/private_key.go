package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/frol/nearlib/pkg/encoding/base58"
	"github.com/tyler-smith/go-bip39"
)

// Ed25519Prefix is prepended to all key material exposed in the textual
// form to make the signing scheme explicit.
const Ed25519Prefix = "ed25519:"

// PrivateKey represents a NEAR account private key and provides a high level
// API around ed25519.PrivateKey.
type PrivateKey struct {
	k ed25519.PrivateKey
}

// NewPrivateKey creates a new random Ed25519 private key using a
// cryptographically secure entropy source.
func NewPrivateKey() (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{k: priv}, nil
}

// NewPrivateKeyFromSeed deterministically derives a private key from an
// arbitrary seed string. The seed is hashed with SHA-256 into the 32-byte
// Ed25519 seed, so any string is a valid input and equal seeds always
// produce equal keys.
func NewPrivateKeyFromSeed(seed string) *PrivateKey {
	digest := sha256.Sum256([]byte(seed))
	return &PrivateKey{k: ed25519.NewKeyFromSeed(digest[:])}
}

// NewPrivateKeyFromSeedPhrase deterministically derives a private key from a
// BIP-39 mnemonic and an optional passphrase.
func NewPrivateKeyFromSeedPhrase(mnemonic, passphrase string) (*PrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("invalid mnemonic")
	}
	seed := bip39.NewSeed(mnemonic, passphrase)
	return &PrivateKey{k: ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])}, nil
}

// NewPrivateKeyFromBytes returns a private key from its raw bytes. Both the
// 64-byte expanded form and the 32-byte seed are accepted.
func NewPrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	switch len(b) {
	case ed25519.PrivateKeySize:
		k := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
		copy(k, b)
		return &PrivateKey{k: k}, nil
	case ed25519.SeedSize:
		return &PrivateKey{k: ed25519.NewKeyFromSeed(b)}, nil
	default:
		return nil, fmt.Errorf("invalid private key length: expected %d or %d bytes got %d",
			ed25519.PrivateKeySize, ed25519.SeedSize, len(b))
	}
}

// NewPrivateKeyFromString returns a private key from its base58
// representation, with or without the Ed25519Prefix. Both 64-byte expanded
// keys and 32-byte seeds are accepted.
func NewPrivateKeyFromString(s string) (*PrivateKey, error) {
	b, err := base58.Decode(strings.TrimPrefix(s, Ed25519Prefix))
	if err != nil {
		return nil, err
	}
	return NewPrivateKeyFromBytes(b)
}

// PublicKey derives the public key from the private key.
func (p *PrivateKey) PublicKey() *PublicKey {
	var pub PublicKey
	copy(pub[:], p.k[ed25519.SeedSize:])
	return &pub
}

// Sign signs arbitrary length data using the private key. Ed25519 is a
// deterministic scheme, equal inputs always produce equal signatures.
func (p *PrivateKey) Sign(data []byte) []byte {
	return ed25519.Sign(p.k, data)
}

// Bytes returns the underlying bytes of the expanded 64-byte private key.
func (p *PrivateKey) Bytes() []byte {
	b := make([]byte, ed25519.PrivateKeySize)
	copy(b, p.k)
	return b
}

// String implements the stringer interface. The key is base58-encoded with
// the Ed25519Prefix and can be fed back to NewPrivateKeyFromString.
func (p *PrivateKey) String() string {
	return Ed25519Prefix + base58.Encode(p.k)
}
