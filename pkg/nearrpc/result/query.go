package result

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// QueryResponse is the node's answer to a key-value query such as
// account/<id> or access_key/<id>. Value carries base64-encoded JSON.
type QueryResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Log   string `json:"log,omitempty"`
}

// DecodeValue returns the raw bytes of the base64-encoded response value.
func (r *QueryResponse) DecodeValue() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(r.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode query response value: %w", err)
	}
	return b, nil
}

// AuthorizedApp is a single access-key grant of an account reshaped for
// callers: which contract the key is scoped to, how it is funded and the
// base58 form of the key itself.
type AuthorizedApp struct {
	ContractID string `json:"contractId"`
	Amount     uint64 `json:"amount"`
	PublicKey  string `json:"publicKey"`
}

// AccountDetails lists the access keys of an account. Transactions is never
// populated: the underlying query endpoint carries no history, the field is
// kept for callers that expect the shape.
type AccountDetails struct {
	AuthorizedApps []AuthorizedApp   `json:"authorizedApps"`
	Transactions   []json.RawMessage `json:"transactions"`
}
