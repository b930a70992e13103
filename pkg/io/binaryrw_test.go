package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadU64LE(t *testing.T) {
	var (
		val uint64 = 0xbadc0de15a11dead
		bw         = NewBufBinWriter()
	)
	bw.WriteU64LE(val)
	require.NoError(t, bw.Err)

	br := NewBinReaderFromBuf(bw.Bytes())
	assert.Equal(t, val, br.ReadU64LE())
	require.NoError(t, br.Err)
}

func TestWriteReadVarUint(t *testing.T) {
	values := []uint64{0, 1, 0xfc, 0xfd, 0xfff, 0xffff, 0x10000, 0xffffffff, 0x100000000}
	for _, val := range values {
		bw := NewBufBinWriter()
		bw.WriteVarUint(val)
		require.NoError(t, bw.Err)

		br := NewBinReaderFromBuf(bw.Bytes())
		assert.Equal(t, val, br.ReadVarUint())
		require.NoError(t, br.Err)
	}
}

func TestWriteReadString(t *testing.T) {
	bw := NewBufBinWriter()
	bw.WriteString("originator.near")
	bw.WriteString("")
	require.NoError(t, bw.Err)

	br := NewBinReaderFromBuf(bw.Bytes())
	assert.Equal(t, "originator.near", br.ReadString())
	assert.Equal(t, "", br.ReadString())
	require.NoError(t, br.Err)
}

func TestReadVarBytesTooBig(t *testing.T) {
	bw := NewBufBinWriter()
	bw.WriteVarBytes(make([]byte, 32))
	require.NoError(t, bw.Err)

	br := NewBinReaderFromBuf(bw.Bytes())
	br.ReadVarBytes(16)
	require.Error(t, br.Err)
}

func TestBufBinWriterDrained(t *testing.T) {
	bw := NewBufBinWriter()
	bw.WriteB(1)
	require.NotNil(t, bw.Bytes())

	bw.WriteB(2)
	require.Error(t, bw.Err)

	bw.Reset()
	bw.WriteB(3)
	require.NoError(t, bw.Err)
	assert.Equal(t, 1, bw.Len())
}

func TestStickyError(t *testing.T) {
	br := NewBinReaderFromBuf([]byte{0x01})
	br.ReadU64LE()
	require.Error(t, br.Err)
	// Subsequent reads keep the original error.
	err := br.Err
	assert.Zero(t, br.ReadB())
	assert.Equal(t, err, br.Err)
}
