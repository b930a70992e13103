package util

import (
	"encoding/json"
	"fmt"

	"github.com/frol/nearlib/pkg/encoding/base58"
	"github.com/frol/nearlib/pkg/io"
)

// Uint256Size is the size of Uint256 in bytes.
const Uint256Size = 32

// Uint256 is a 32 byte long unsigned integer. Transaction hashes use it and
// expose it to the outside world in the base58 form.
type Uint256 [Uint256Size]byte

// Uint256DecodeBytes attempts to decode the given bytes into a Uint256.
func Uint256DecodeBytes(b []byte) (u Uint256, err error) {
	if len(b) != Uint256Size {
		return u, fmt.Errorf("expected []byte of size %d got %d", Uint256Size, len(b))
	}
	copy(u[:], b)
	return u, nil
}

// Uint256DecodeString attempts to decode the given base58 string into a
// Uint256.
func Uint256DecodeString(s string) (u Uint256, err error) {
	b, err := base58.DecodeLen(s, Uint256Size)
	if err != nil {
		return u, err
	}
	return Uint256DecodeBytes(b)
}

// Bytes returns a byte slice representation of u.
func (u Uint256) Bytes() []byte {
	return u[:]
}

// Equals returns true if both values represent the same hash.
func (u Uint256) Equals(other Uint256) bool {
	return u == other
}

// String implements the stringer interface.
func (u Uint256) String() string {
	return base58.Encode(u[:])
}

// MarshalJSON implements the json.Marshaler interface.
func (u Uint256) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (u *Uint256) UnmarshalJSON(data []byte) (err error) {
	var s string
	if err = json.Unmarshal(data, &s); err != nil {
		return err
	}
	*u, err = Uint256DecodeString(s)
	return err
}

// EncodeBinary implements the io.Serializable interface.
func (u *Uint256) EncodeBinary(w *io.BinWriter) {
	w.WriteBytes(u[:])
}

// DecodeBinary implements the io.Serializable interface.
func (u *Uint256) DecodeBinary(r *io.BinReader) {
	r.ReadBytes(u[:])
}
