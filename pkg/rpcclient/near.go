package rpcclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/frol/nearlib/pkg/nearrpc/result"
	"github.com/frol/nearlib/pkg/transaction"
	"github.com/frol/nearlib/pkg/util"
)

// ErrNoKeyStore is returned from SignAndSubmitTransaction when the client
// was created without a key store.
var ErrNoKeyStore = errors.New("client has no key store configured")

// Query performs a generic key-value query against the node state. Known
// paths are "account/<id>" and "access_key/<id>".
func (c *Client) Query(ctx context.Context, path string, data []byte) (*result.QueryResponse, error) {
	var resp = new(result.QueryResponse)
	if err := c.performRequest(ctx, "query", []interface{}{path, data}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ViewAccount returns the current state of the given account. It fails if
// the account is unknown to the node.
func (c *Client) ViewAccount(ctx context.Context, accountID string) (*result.AccountView, error) {
	resp, err := c.Query(ctx, "account/"+accountID, nil)
	if err != nil {
		return nil, err
	}
	value, err := resp.DecodeValue()
	if err != nil {
		return nil, err
	}
	var acc = new(result.AccountView)
	if err := json.Unmarshal(value, acc); err != nil {
		return nil, fmt.Errorf("failed to decode account view: %w", err)
	}
	return acc, nil
}

// GetNonce returns the current nonce of the given account. Note that
// fetching a nonce and submitting a transaction with it is inherently racy
// when several writers use the same account, see the account subpackage.
func (c *Client) GetNonce(ctx context.Context, accountID string) (uint64, error) {
	acc, err := c.ViewAccount(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return acc.Nonce, nil
}

// SubmitTransaction submits a signed transaction and returns its execution
// outcome once the node has processed it.
func (c *Client) SubmitTransaction(ctx context.Context, stx *transaction.SignedTransaction) (*result.TransactionResult, error) {
	b, err := stx.Bytes()
	if err != nil {
		return nil, err
	}
	var resp = new(result.TransactionResult)
	err = c.performRequest(ctx, "submit_transaction", []interface{}{base64.StdEncoding.EncodeToString(b)}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// SubmitTransactionAsync submits a signed transaction without waiting for
// its execution and returns the transaction hash to poll for.
func (c *Client) SubmitTransactionAsync(ctx context.Context, stx *transaction.SignedTransaction) (util.Uint256, error) {
	b, err := stx.Bytes()
	if err != nil {
		return util.Uint256{}, err
	}
	var resp string
	err = c.performRequest(ctx, "broadcast_tx_async", []interface{}{base64.StdEncoding.EncodeToString(b)}, &resp)
	if err != nil {
		return util.Uint256{}, err
	}
	return util.Uint256DecodeString(resp)
}

// GetTransactionStatus returns the current execution outcome of a
// previously submitted transaction.
func (c *Client) GetTransactionStatus(ctx context.Context, hash util.Uint256) (*result.TransactionResult, error) {
	var resp = new(result.TransactionResult)
	if err := c.performRequest(ctx, "tx", []interface{}{hash.String()}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SignAndSubmitTransaction signs tx with the signer's key looked up in the
// configured key store and submits the result. The returned outcome (or the
// error) comes from the node as is.
func (c *Client) SignAndSubmitTransaction(ctx context.Context, signerID string, tx *transaction.Transaction) (*result.TransactionResult, error) {
	if c.keys == nil {
		return nil, ErrNoKeyStore
	}
	priv, err := c.keys.GetKey(signerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get key of %s: %w", signerID, err)
	}
	stx, err := tx.Sign(priv)
	if err != nil {
		return nil, err
	}
	return c.SubmitTransaction(ctx, stx)
}
