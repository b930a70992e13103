package wallet

import (
	"path/filepath"
	"testing"

	"github.com/frol/nearlib/pkg/crypto/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, s KeyStore) {
	alice := keys.NewPrivateKeyFromSeed("alice.near")
	bob := keys.NewPrivateKeyFromSeed("bob.near")

	_, err := s.GetKey("alice.near")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.SetKey("alice.near", alice))
	require.NoError(t, s.SetKey("bob.near", bob))

	got, err := s.GetKey("alice.near")
	require.NoError(t, err)
	assert.Equal(t, alice.Bytes(), got.Bytes())

	accounts, err := s.Accounts()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice.near", "bob.near"}, accounts)

	// Overwrite.
	require.NoError(t, s.SetKey("alice.near", bob))
	got, err = s.GetKey("alice.near")
	require.NoError(t, err)
	assert.Equal(t, bob.Bytes(), got.Bytes())

	require.NoError(t, s.DeleteKey("alice.near"))
	_, err = s.GetKey("alice.near")
	require.ErrorIs(t, err, ErrKeyNotFound)
	// Deleting a missing key is not an error.
	require.NoError(t, s.DeleteKey("alice.near"))
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.db")
	s, err := NewBoltStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })

	testStore(t, s)
}

func TestBoltStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.db")
	priv := keys.NewPrivateKeyFromSeed("persistent")

	s, err := NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SetKey("acc.near", priv))
	require.NoError(t, s.Close())

	s, err = NewBoltStore(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.GetKey("acc.near")
	require.NoError(t, err)
	assert.Equal(t, priv.Bytes(), got.Bytes())
}

func TestEncryptDecryptKey(t *testing.T) {
	priv := keys.NewPrivateKeyFromSeed("to encrypt")

	enc, err := EncryptKey(priv, "passw0rd")
	require.NoError(t, err)

	dec, err := DecryptKey(enc, "passw0rd")
	require.NoError(t, err)
	assert.Equal(t, priv.Bytes(), dec.Bytes())

	_, err = DecryptKey(enc, "wrong")
	require.ErrorIs(t, err, ErrDecrypt)

	_, err = DecryptKey("garbage!", "passw0rd")
	require.ErrorIs(t, err, ErrDecrypt)
}
