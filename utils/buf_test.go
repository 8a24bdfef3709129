package utils

import (
	"bytes"
	"io"
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRand_buf(t *testing.T) {
	maxLength := 1000
	var vardata = make([]byte, mathrand.Intn(maxLength))
	var varint = int64(mathrand.Intn(maxLength)) - int64(maxLength/2)
	writeBuf := bytes.NewBuffer(nil)
	require.NoError(t, WriteVarInt(writeBuf, varint))
	require.NoError(t, WriteVarBytes(writeBuf, vardata))

	readBuf := bytes.NewBuffer(writeBuf.Bytes())
	varintRead, err := ReadVarInt(readBuf)
	assert.Nil(t, err)
	assert.Equal(t, varint, varintRead)
	vardataRead, err := ReadVarBytes(readBuf)
	assert.Nil(t, err)
	assert.Equal(t, vardata, vardataRead)
}

func TestReadVarBytesTruncated(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, WriteVarBytes(buf, []byte("abcdef")))
	_, err := ReadVarBytes(bytes.NewReader(buf.Bytes()[:4]))
	assert.Error(t, err)

	buf.Reset()
	require.NoError(t, WriteVarInt(buf, -3))
	_, err = ReadVarBytes(buf)
	assert.Error(t, err)

	_, err = ReadVarInt(bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestReadVarIntPlainReader(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	require.NoError(t, WriteVarInt(buf, 300))
	require.NoError(t, WriteVarBytes(buf, []byte("tail")))

	// io.LimitReader hides the ByteReader of the underlying buffer.
	r := io.LimitReader(buf, int64(buf.Len()))
	num, err := ReadVarInt(r)
	require.NoError(t, err)
	assert.Equal(t, int64(300), num)
	data, err := ReadVarBytes(r)
	require.NoError(t, err)
	assert.Equal(t, []byte("tail"), data)
}
