package wallet

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/frol/nearlib/pkg/crypto/keys"
	"github.com/frol/nearlib/pkg/encoding/base58"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

// Scrypt parameters used for key encryption.
const (
	n = 16384
	r = 8
	p = 8

	saltSize  = 16
	nonceSize = 24
)

// ErrDecrypt is returned on attempt to decrypt an exported key with a wrong
// passphrase or from a corrupted string.
var ErrDecrypt = errors.New("failed to decrypt the key")

// EncryptKey encrypts a private key with the given passphrase into a
// printable base58 string suitable for backups.
func EncryptKey(priv *keys.PrivateKey, passphrase string) (string, error) {
	var salt [saltSize]byte
	var nonce [nonceSize]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return "", err
	}
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", err
	}

	secret, err := deriveSecret(passphrase, salt)
	if err != nil {
		return "", err
	}

	blob := make([]byte, 0, saltSize+nonceSize+len(priv.Bytes())+secretbox.Overhead)
	blob = append(blob, salt[:]...)
	blob = append(blob, nonce[:]...)
	blob = secretbox.Seal(blob, priv.Bytes(), &nonce, secret)
	return base58.Encode(blob), nil
}

// DecryptKey decrypts a key previously exported with EncryptKey.
func DecryptKey(encrypted, passphrase string) (*keys.PrivateKey, error) {
	blob, err := base58.Decode(encrypted)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDecrypt, err)
	}
	if len(blob) <= saltSize+nonceSize+secretbox.Overhead {
		return nil, ErrDecrypt
	}

	var salt [saltSize]byte
	var nonce [nonceSize]byte
	copy(salt[:], blob[:saltSize])
	copy(nonce[:], blob[saltSize:saltSize+nonceSize])

	secret, err := deriveSecret(passphrase, salt)
	if err != nil {
		return nil, err
	}

	raw, ok := secretbox.Open(nil, blob[saltSize+nonceSize:], &nonce, secret)
	if !ok {
		return nil, ErrDecrypt
	}
	return keys.NewPrivateKeyFromBytes(raw)
}

func deriveSecret(passphrase string, salt [saltSize]byte) (*[32]byte, error) {
	b, err := scrypt.Key([]byte(passphrase), salt[:], n, r, p, 32)
	if err != nil {
		return nil, err
	}
	var secret [32]byte
	copy(secret[:], b)
	return &secret, nil
}
