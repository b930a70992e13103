// Package base58 provides encoding helpers for key material crossing the
// binary/text boundary. All public keys and secret keys exposed by this
// library as strings use this alphabet.
package base58

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// Encode encodes a byte slice into a base58 string.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode decodes a base58 string into a byte slice. It returns an error if
// the string contains characters outside of the base58 alphabet.
func Decode(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base58 string: %w", err)
	}
	return b, nil
}

// DecodeLen decodes a base58 string and checks that the result is exactly
// size bytes long.
func DecodeLen(s string, size int) ([]byte, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf("invalid decoded length: expected %d bytes got %d", size, len(b))
	}
	return b, nil
}
