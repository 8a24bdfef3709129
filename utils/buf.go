package utils

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxVarBytes bounds the length prefix accepted by ReadVarBytes.
const MaxVarBytes = 1 << 20

type byteReader struct {
	io.Reader
}

func (r byteReader) ReadByte() (byte, error) {
	var b [1]byte
	_, err := io.ReadFull(r.Reader, b[:])
	return b[0], err
}

// ReadVarInt reads a signed varint. Readers that are not io.ByteReaders are
// consumed one byte at a time, so nothing past the varint is read.
func ReadVarInt(r io.Reader) (int64, error) {
	if br, ok := r.(io.ByteReader); ok {
		return binary.ReadVarint(br)
	}
	return binary.ReadVarint(byteReader{r})
}

// ReadVarBytes reads a byte string written by WriteVarBytes.
func ReadVarBytes(r io.Reader) ([]byte, error) {
	num, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if num < 0 || num > MaxVarBytes {
		return nil, fmt.Errorf("invalid byte string length %d", num)
	}
	data := make([]byte, num)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return data, nil
}

func WriteVarInt(w io.Writer, num int64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutVarint(buf[:], num)
	_, err := w.Write(buf[:n])
	return err
}

func WriteVarBytes(w io.Writer, data []byte) error {
	if err := WriteVarInt(w, int64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}
