package keys

import (
	"testing"

	"github.com/frol/nearlib/pkg/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicKeyStringRoundTrip(t *testing.T) {
	pub := NewPrivateKeyFromSeed("pubkey roundtrip").PublicKey()

	restored, err := NewPublicKeyFromString(pub.String())
	require.NoError(t, err)
	assert.Equal(t, pub, restored)
}

func TestPublicKeyFromBytes(t *testing.T) {
	pub := NewPrivateKeyFromSeed("frombytes").PublicKey()

	restored, err := NewPublicKeyFromBytes(pub.Bytes())
	require.NoError(t, err)
	assert.Equal(t, pub, restored)

	_, err = NewPublicKeyFromBytes(pub.Bytes()[:16])
	require.Error(t, err)
}

func TestPublicKeyEncodeDecodeBinary(t *testing.T) {
	pub := NewPrivateKeyFromSeed("binary").PublicKey()

	w := io.NewBufBinWriter()
	pub.EncodeBinary(&w.BinWriter)
	require.NoError(t, w.Err)

	var restored PublicKey
	r := io.NewBinReaderFromBuf(w.Bytes())
	restored.DecodeBinary(r)
	require.NoError(t, r.Err)
	assert.Equal(t, *pub, restored)
}
