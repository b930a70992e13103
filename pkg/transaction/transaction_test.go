package transaction

import (
	"bytes"
	"testing"

	"github.com/frol/nearlib/pkg/crypto/keys"
	"github.com/frol/nearlib/pkg/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T, seed string) keys.PublicKey {
	t.Helper()
	return *keys.NewPrivateKeyFromSeed(seed).PublicKey()
}

func encodeDecode(t *testing.T, tx *Transaction) *Transaction {
	t.Helper()
	b, err := tx.Bytes()
	require.NoError(t, err)

	restored := new(Transaction)
	require.NoError(t, io.FromByteArray(restored, b))
	return restored
}

func TestCreateAccountRoundTrip(t *testing.T) {
	tx := NewCreateAccount(42, "originator.near", "new.near", testKey(t, "new"), 1000)

	restored := encodeDecode(t, tx)
	assert.Equal(t, CreateAccountType, restored.Type)
	assert.Equal(t, uint64(42), restored.Nonce)
	assert.Equal(t, "originator.near", restored.SignerID)

	data, ok := restored.Data.(*CreateAccountTX)
	require.True(t, ok)
	assert.Equal(t, "new.near", data.NewAccountID)
	assert.Equal(t, testKey(t, "new"), data.PublicKey)
	assert.Equal(t, uint64(1000), data.Amount)
}

func TestCreateAccountZeroAmountOmitted(t *testing.T) {
	pub := testKey(t, "new")
	withAmount := NewCreateAccount(1, "a.near", "b.near", pub, 7)
	withoutAmount := NewCreateAccount(1, "a.near", "b.near", pub, 0)

	b1, err := withAmount.Bytes()
	require.NoError(t, err)
	b0, err := withoutAmount.Bytes()
	require.NoError(t, err)

	// The amount field (8 bytes) is absent from the wire form, not encoded
	// as an explicit zero.
	assert.Equal(t, len(b1)-8, len(b0))

	restored := encodeDecode(t, withoutAmount)
	assert.Equal(t, uint64(0), restored.Data.(*CreateAccountTX).Amount)
}

func TestAddKeyRoundTrip(t *testing.T) {
	ak, err := NewAccessKey("contractX", []byte("deposit"), "funder.near", 50)
	require.NoError(t, err)
	tx := NewAddKey(7, "owner.near", testKey(t, "added"), ak)

	restored := encodeDecode(t, tx)
	data, ok := restored.Data.(*AddKeyTX)
	require.True(t, ok)
	assert.Equal(t, testKey(t, "added"), data.NewKey)
	require.NotNil(t, data.AccessKey)
	assert.Equal(t, "contractX", data.AccessKey.ContractID)
	assert.Equal(t, []byte("deposit"), data.AccessKey.MethodName)
	assert.Equal(t, "funder.near", data.AccessKey.BalanceOwner)
	assert.Equal(t, uint64(50), data.AccessKey.Amount)
}

func TestAddKeyUnrestricted(t *testing.T) {
	tx := NewAddKey(7, "owner.near", testKey(t, "added"), nil)

	restored := encodeDecode(t, tx)
	assert.Nil(t, restored.Data.(*AddKeyTX).AccessKey)
}

func TestAccessKeyMethodWithoutContract(t *testing.T) {
	_, err := NewAccessKey("", []byte("deposit"), "", 0)
	require.ErrorIs(t, err, ErrMethodWithoutContract)

	// The same restriction holds on decode.
	bad := &AccessKey{MethodName: []byte("deposit")}
	w := io.NewBufBinWriter()
	bad.EncodeBinary(&w.BinWriter)
	require.NoError(t, w.Err)

	restored := new(AccessKey)
	require.ErrorIs(t, io.FromByteArray(restored, w.Bytes()), ErrMethodWithoutContract)
}

func TestAccessKeyContractOnly(t *testing.T) {
	ak, err := NewAccessKey("contractX", nil, "", 0)
	require.NoError(t, err)
	assert.Equal(t, "contractX", ak.ContractID)
	assert.Nil(t, ak.MethodName)
}

func TestDeleteKeyRoundTrip(t *testing.T) {
	tx := NewDeleteKey(3, "owner.near", testKey(t, "revoked"))

	restored := encodeDecode(t, tx)
	assert.Equal(t, testKey(t, "revoked"), restored.Data.(*DeleteKeyTX).CurKey)
}

func TestDecodeInvalidType(t *testing.T) {
	w := io.NewBufBinWriter()
	w.WriteB(0xff)
	w.WriteU64LE(1)
	w.WriteString("a.near")

	restored := new(Transaction)
	require.Error(t, io.FromByteArray(restored, w.Bytes()))
}

func TestHashStable(t *testing.T) {
	tx := NewCreateAccount(42, "originator.near", "new.near", testKey(t, "new"), 1000)

	h1, err := tx.Hash()
	require.NoError(t, err)
	h2, err := tx.Hash()
	require.NoError(t, err)
	assert.True(t, h1.Equals(h2))

	other := NewCreateAccount(43, "originator.near", "new.near", testKey(t, "new"), 1000)
	h3, err := other.Hash()
	require.NoError(t, err)
	assert.False(t, h1.Equals(h3))
}

func TestSignVerify(t *testing.T) {
	priv := keys.NewPrivateKeyFromSeed("signer")
	tx := NewDeleteKey(3, "owner.near", testKey(t, "revoked"))

	stx, err := tx.Sign(priv)
	require.NoError(t, err)
	assert.True(t, stx.Verify())
	assert.Equal(t, *priv.PublicKey(), stx.PublicKey)

	stx.Signature[0] ^= 0xff
	assert.False(t, stx.Verify())
}

func TestSignedTransactionRoundTrip(t *testing.T) {
	priv := keys.NewPrivateKeyFromSeed("signer")
	tx := NewCreateAccount(42, "originator.near", "new.near", testKey(t, "new"), 0)
	stx, err := tx.Sign(priv)
	require.NoError(t, err)

	b, err := stx.Bytes()
	require.NoError(t, err)

	restored := new(SignedTransaction)
	require.NoError(t, io.FromByteArray(restored, b))
	assert.True(t, restored.Verify())
	assert.True(t, bytes.Equal(stx.Signature, restored.Signature))
}
