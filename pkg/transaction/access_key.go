package transaction

import (
	"errors"

	"github.com/frol/nearlib/pkg/io"
)

// ErrMethodWithoutContract is returned on attempt to restrict an access key
// to a method without restricting it to a contract first. Such a key would
// look scoped while actually being unrestricted, so it's rejected outright.
var ErrMethodWithoutContract = errors.New("access key method restriction requires a contract restriction")

// AccessKey describes the scope of a secondary signing credential. The zero
// value of every field means "unrestricted" for that dimension and is
// omitted from the wire form.
type AccessKey struct {
	// ContractID restricts the key to calls of a single contract.
	ContractID string
	// MethodName restricts the key to a single method of ContractID. Raw
	// UTF-8 bytes of the method name.
	MethodName []byte
	// BalanceOwner names the account funding this key.
	BalanceOwner string
	// Amount is the funding value attached to this key.
	Amount uint64
}

// NewAccessKey creates a contract-scoped AccessKey. It returns
// ErrMethodWithoutContract if methodName is given without a contractID.
func NewAccessKey(contractID string, methodName []byte, balanceOwner string, amount uint64) (*AccessKey, error) {
	k := &AccessKey{
		ContractID:   contractID,
		MethodName:   methodName,
		BalanceOwner: balanceOwner,
		Amount:       amount,
	}
	if err := k.isValid(); err != nil {
		return nil, err
	}
	return k, nil
}

func (k *AccessKey) isValid() error {
	if len(k.MethodName) != 0 && k.ContractID == "" {
		return ErrMethodWithoutContract
	}
	return nil
}

// EncodeBinary implements the io.Serializable interface.
func (k *AccessKey) EncodeBinary(w *io.BinWriter) {
	w.WriteString(k.ContractID)
	w.WriteVarBytes(k.MethodName)
	w.WriteString(k.BalanceOwner)
	w.WriteBool(k.Amount > 0)
	if k.Amount > 0 {
		w.WriteU64LE(k.Amount)
	}
}

// DecodeBinary implements the io.Serializable interface.
func (k *AccessKey) DecodeBinary(r *io.BinReader) {
	k.ContractID = r.ReadString()
	k.MethodName = r.ReadVarBytes()
	if len(k.MethodName) == 0 {
		k.MethodName = nil
	}
	k.BalanceOwner = r.ReadString()
	if r.ReadBool() {
		k.Amount = r.ReadU64LE()
	}
	if r.Err == nil {
		r.Err = k.isValid()
	}
}
