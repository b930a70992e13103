package account

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/frol/nearlib/pkg/nearrpc/result"
	ojson "github.com/nspcc-dev/go-ordered-json"
)

// GetAccountDetails returns the list of access keys of the given account
// reshaped into authorized apps. The order of AuthorizedApps follows the
// iteration order of the response mapping, which is not guaranteed to be
// stable across calls if the underlying store's key order is unspecified.
// Transactions is always empty, the endpoint carries no history.
func (a *Account) GetAccountDetails(ctx context.Context, accountID string) (*result.AccountDetails, error) {
	resp, err := a.client.Query(ctx, "access_key/"+accountID, nil)
	if err != nil {
		return nil, err
	}
	value, err := resp.DecodeValue()
	if err != nil {
		return nil, err
	}

	d := ojson.NewDecoder(bytes.NewBuffer(value))
	d.UseOrderedObject()
	d.UseNumber()

	var v interface{}
	if err := d.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode access keys: %w", err)
	}
	obj, ok := v.(ojson.OrderedObject)
	if !ok {
		return nil, fmt.Errorf("unexpected access keys format: %T", v)
	}

	details := &result.AccountDetails{
		AuthorizedApps: make([]result.AuthorizedApp, 0, len(obj)),
		Transactions:   []json.RawMessage{},
	}
	for i := range obj {
		app := result.AuthorizedApp{PublicKey: obj[i].Key}
		if err := decodeAccessKey(obj[i].Value, &app); err != nil {
			return nil, err
		}
		details.AuthorizedApps = append(details.AuthorizedApps, app)
	}
	return details, nil
}

// decodeAccessKey fills contract ID and amount from a single access-key
// entry. A null entry is a full-permission key and leaves both empty.
func decodeAccessKey(v interface{}, app *result.AuthorizedApp) error {
	if v == nil {
		return nil
	}
	entry, ok := v.(ojson.OrderedObject)
	if !ok {
		return fmt.Errorf("unexpected access key entry format: %T", v)
	}
	for i := range entry {
		switch entry[i].Key {
		case "contract_id":
			if s, ok := entry[i].Value.(string); ok {
				app.ContractID = s
			}
		case "amount":
			num, ok := entry[i].Value.(ojson.Number)
			if !ok {
				return fmt.Errorf("unexpected access key amount format: %T", entry[i].Value)
			}
			amount, err := parseUint(num)
			if err != nil {
				return err
			}
			app.Amount = amount
		}
	}
	return nil
}

func parseUint(num ojson.Number) (uint64, error) {
	val, err := num.Int64()
	if err != nil || val < 0 {
		return 0, fmt.Errorf("invalid access key amount: %s", num)
	}
	return uint64(val), nil
}
