package io

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// maxVarBytesSize is the maximum size of a var-prefixed byte array this
// reader is willing to allocate. RPC responses never legitimately carry
// anything close to it.
const maxVarBytesSize = 0x1000000

// BinReader is a convenient wrapper around an io.Reader and err object.
// Used to simplify error handling when reading into a struct with many fields.
type BinReader struct {
	r   io.Reader
	Err error
	uv  [8]byte
}

// NewBinReaderFromIO makes a BinReader from io.Reader.
func NewBinReaderFromIO(ior io.Reader) *BinReader {
	return &BinReader{r: ior}
}

// NewBinReaderFromBuf makes a BinReader from a byte buffer.
func NewBinReaderFromBuf(b []byte) *BinReader {
	return NewBinReaderFromIO(bytes.NewReader(b))
}

// ReadU64LE reads a little-endian encoded uint64 value from the underlying
// io.Reader. On read failures it returns zero.
func (r *BinReader) ReadU64LE() uint64 {
	r.ReadBytes(r.uv[:8])
	if r.Err != nil {
		return 0
	}
	return binary.LittleEndian.Uint64(r.uv[:8])
}

// ReadU32LE reads a little-endian encoded uint32 value from the underlying
// io.Reader. On read failures it returns zero.
func (r *BinReader) ReadU32LE() uint32 {
	r.ReadBytes(r.uv[:4])
	if r.Err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(r.uv[:4])
}

// ReadB reads a byte from the underlying io.Reader. On read failures it
// returns zero.
func (r *BinReader) ReadB() byte {
	r.ReadBytes(r.uv[:1])
	if r.Err != nil {
		return 0
	}
	return r.uv[0]
}

// ReadBool reads a boolean value encoded in a zero/non-zero byte from the
// underlying io.Reader. On read failures it returns false.
func (r *BinReader) ReadBool() bool {
	return r.ReadB() != 0
}

// ReadBytes copies a fixed-size buffer from the reader to the provided slice.
func (r *BinReader) ReadBytes(buf []byte) {
	if r.Err != nil {
		return
	}
	_, r.Err = io.ReadFull(r.r, buf)
}

// ReadVarUint reads a variable-length encoded integer from the
// underlying reader.
func (r *BinReader) ReadVarUint() uint64 {
	if r.Err != nil {
		return 0
	}

	var b = r.ReadB()
	switch b {
	case 0xfd:
		r.ReadBytes(r.uv[:2])
		return uint64(binary.LittleEndian.Uint16(r.uv[:2]))
	case 0xfe:
		r.ReadBytes(r.uv[:4])
		return uint64(binary.LittleEndian.Uint32(r.uv[:4]))
	case 0xff:
		r.ReadBytes(r.uv[:8])
		return binary.LittleEndian.Uint64(r.uv[:8])
	default:
		return uint64(b)
	}
}

// ReadVarBytes reads the next set of bytes from the underlying reader.
// ReadVarUint is used to determine how large that slice is.
func (r *BinReader) ReadVarBytes(maxSize ...int) []byte {
	ms := maxVarBytesSize
	if len(maxSize) != 0 {
		ms = maxSize[0]
	}
	n := r.ReadVarUint()
	if n > uint64(ms) {
		r.Err = errors.New("byte-slice is too big")
		return nil
	}
	if r.Err != nil {
		return nil
	}
	b := make([]byte, n)
	r.ReadBytes(b)
	if r.Err != nil {
		return nil
	}
	return b
}

// ReadString calls ReadVarBytes and casts the results as a string.
func (r *BinReader) ReadString(maxSize ...int) string {
	return string(r.ReadVarBytes(maxSize...))
}
