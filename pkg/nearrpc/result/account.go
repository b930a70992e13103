package result

// AccountView is the state of an account as reported by the node.
type AccountView struct {
	AccountID  string   `json:"account_id"`
	Amount     uint64   `json:"amount"`
	Stake      uint64   `json:"stake"`
	Nonce      uint64   `json:"nonce"`
	PublicKeys []string `json:"public_keys"`
	CodeHash   string   `json:"code_hash,omitempty"`
}
