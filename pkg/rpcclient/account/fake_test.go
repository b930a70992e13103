package account

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"github.com/frol/nearlib/pkg/crypto/keys"
	"github.com/frol/nearlib/pkg/nearrpc"
	"github.com/frol/nearlib/pkg/nearrpc/result"
	"github.com/frol/nearlib/pkg/transaction"
)

// fakeKeyEntry is a single active access key of a fake account, in the
// order the keys were added.
type fakeKeyEntry struct {
	pub        string
	full       bool
	contractID string
	amount     uint64
}

type fakeAccount struct {
	amount uint64
	nonce  uint64
	keys   []fakeKeyEntry
}

// fakeChain implements RPCAccount over an in-memory account set. It tracks
// nonces and active access keys the way the remote node would.
type fakeChain struct {
	mtx      sync.Mutex
	accounts map[string]*fakeAccount
	// signers maps account IDs to the private key used on their behalf.
	signers map[string]*keys.PrivateKey
	lastTX  *transaction.Transaction
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		accounts: make(map[string]*fakeAccount),
		signers:  make(map[string]*keys.PrivateKey),
	}
}

// addFunded registers an account with a balance and a full-access key.
func (f *fakeChain) addFunded(id string, amount uint64, priv *keys.PrivateKey) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	f.accounts[id] = &fakeAccount{
		amount: amount,
		keys:   []fakeKeyEntry{{pub: priv.PublicKey().String(), full: true}},
	}
	f.signers[id] = priv
}

func (f *fakeChain) GetNonce(_ context.Context, accountID string) (uint64, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	acc, ok := f.accounts[accountID]
	if !ok {
		return 0, nearrpc.NewError(-32000, "unknown account", accountID)
	}
	return acc.nonce, nil
}

func (f *fakeChain) ViewAccount(_ context.Context, accountID string) (*result.AccountView, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	acc, ok := f.accounts[accountID]
	if !ok {
		return nil, nearrpc.NewError(-32000, "unknown account", accountID)
	}
	view := &result.AccountView{
		AccountID: accountID,
		Amount:    acc.amount,
		Nonce:     acc.nonce,
	}
	for _, k := range acc.keys {
		view.PublicKeys = append(view.PublicKeys, k.pub)
	}
	return view, nil
}

func (f *fakeChain) Query(_ context.Context, path string, _ []byte) (*result.QueryResponse, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	if !strings.HasPrefix(path, "access_key/") {
		return nil, nearrpc.NewError(nearrpc.MethodNotFoundCode, "unknown query path", path)
	}
	accountID := strings.TrimPrefix(path, "access_key/")
	acc, okAcc := f.accounts[accountID]
	if !okAcc {
		return nil, nearrpc.NewError(-32000, "unknown account", accountID)
	}

	entries := make([]string, 0, len(acc.keys))
	for _, k := range acc.keys {
		if k.full {
			entries = append(entries, fmt.Sprintf("%q:null", k.pub))
		} else {
			entries = append(entries, fmt.Sprintf("%q:{\"contract_id\":%q,\"amount\":%d}", k.pub, k.contractID, k.amount))
		}
	}
	value := "{" + strings.Join(entries, ",") + "}"
	return &result.QueryResponse{
		Key:   path,
		Value: base64.StdEncoding.EncodeToString([]byte(value)),
	}, nil
}

func (f *fakeChain) SignAndSubmitTransaction(_ context.Context, signerID string, tx *transaction.Transaction) (*result.TransactionResult, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	signer, ok := f.accounts[signerID]
	if !ok {
		return nil, nearrpc.NewError(-32000, "unknown account", signerID)
	}
	priv, ok := f.signers[signerID]
	if !ok {
		return nil, nearrpc.NewError(-32000, "no key for account", signerID)
	}
	stx, err := tx.Sign(priv)
	if err != nil {
		return nil, err
	}
	if !stx.Verify() {
		return nil, nearrpc.NewError(-32000, "invalid signature", signerID)
	}
	if !signer.hasActiveKey(priv.PublicKey().String()) {
		return nil, nearrpc.NewError(-32000, "signed with a revoked key", signerID)
	}
	if tx.Nonce <= signer.nonce {
		return nil, nearrpc.NewError(-32000, "nonce too small",
			fmt.Sprintf("%d <= %d", tx.Nonce, signer.nonce))
	}
	signer.nonce = tx.Nonce
	f.lastTX = tx

	switch data := tx.Data.(type) {
	case *transaction.CreateAccountTX:
		if _, exists := f.accounts[data.NewAccountID]; exists {
			return nil, nearrpc.NewError(-32000, "account already exists", data.NewAccountID)
		}
		if data.Amount > signer.amount {
			return nil, nearrpc.NewError(-32000, "not enough balance", signerID)
		}
		signer.amount -= data.Amount
		f.accounts[data.NewAccountID] = &fakeAccount{
			amount: data.Amount,
			keys:   []fakeKeyEntry{{pub: data.PublicKey.String(), full: true}},
		}
	case *transaction.AddKeyTX:
		entry := fakeKeyEntry{pub: data.NewKey.String(), full: data.AccessKey == nil}
		if data.AccessKey != nil {
			entry.contractID = data.AccessKey.ContractID
			entry.amount = data.AccessKey.Amount
		}
		signer.keys = append(signer.keys, entry)
	case *transaction.DeleteKeyTX:
		signer.removeKey(data.CurKey.String())
	default:
		return nil, nearrpc.NewError(-32000, "unknown transaction type", tx.Type.String())
	}

	hash, err := tx.Hash()
	if err != nil {
		return nil, err
	}
	return &result.TransactionResult{
		Status: result.TransactionCompleted,
		Hash:   hash,
	}, nil
}

func (acc *fakeAccount) hasActiveKey(pub string) bool {
	for _, k := range acc.keys {
		if k.pub == pub {
			return true
		}
	}
	return false
}

func (acc *fakeAccount) removeKey(pub string) {
	for i, k := range acc.keys {
		if k.pub == pub {
			acc.keys = append(acc.keys[:i], acc.keys[i+1:]...)
			return
		}
	}
}
