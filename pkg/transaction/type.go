package transaction

// TXType is the type of a transaction.
type TXType uint8

// All account-level state changes go through one of these
// transaction types.
const (
	CreateAccountType TXType = 0x01
	AddKeyType        TXType = 0x02
	DeleteKeyType     TXType = 0x03
)

// String implements the stringer interface.
func (t TXType) String() string {
	switch t {
	case CreateAccountType:
		return "create-account transaction"
	case AddKeyType:
		return "add-key transaction"
	case DeleteKeyType:
		return "delete-key transaction"
	default:
		return ""
	}
}
