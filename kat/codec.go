package kat

import (
	"bytes"
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/izouxv/goEcc/utils"
)

// Binary layout: a varint count, then per vector the curve name, x and y as
// (varint sign, var bytes magnitude), a varint validity flag and the comment.
// A missing coordinate is written with sign absentSign and no magnitude, so
// incomplete vectors still have a digest and fail individually in a run.

const absentSign = 2

func writeBig(w io.Writer, v *big.Int) error {
	if v == nil {
		if err := utils.WriteVarInt(w, absentSign); err != nil {
			return err
		}
		return utils.WriteVarBytes(w, nil)
	}
	if err := utils.WriteVarInt(w, int64(v.Sign())); err != nil {
		return err
	}
	return utils.WriteVarBytes(w, v.Bytes())
}

func readBig(r io.Reader) (*big.Int, error) {
	sign, err := utils.ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	data, err := utils.ReadVarBytes(r)
	if err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(data)
	switch {
	case sign == absentSign && len(data) == 0:
		return nil, nil
	case sign < -1 || sign > 1:
		return nil, fmt.Errorf("%w: sign %d", ErrInvalidVector, sign)
	case sign < 0:
		v.Neg(v)
	case sign == 0 && v.Sign() != 0:
		return nil, fmt.Errorf("%w: non-zero magnitude with zero sign", ErrInvalidVector)
	}
	return v, nil
}

// Encode writes vectors in the binary form.
func Encode(w io.Writer, vectors []Vector) error {
	if err := utils.WriteVarInt(w, int64(len(vectors))); err != nil {
		return err
	}
	for _, v := range vectors {
		if err := utils.WriteVarBytes(w, []byte(v.Curve)); err != nil {
			return err
		}
		if err := writeBig(w, v.X); err != nil {
			return err
		}
		if err := writeBig(w, v.Y); err != nil {
			return err
		}
		var valid int64
		if v.Valid {
			valid = 1
		}
		if err := utils.WriteVarInt(w, valid); err != nil {
			return err
		}
		if err := utils.WriteVarBytes(w, []byte(v.Comment)); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads vectors written by Encode.
func Decode(r io.Reader) ([]Vector, error) {
	count, err := utils.ReadVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read vector count: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative vector count %d", ErrInvalidVector, count)
	}
	var vectors []Vector
	for i := int64(0); i < count; i++ {
		v, err := decodeOne(r)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		vectors = append(vectors, v)
	}
	return vectors, nil
}

func decodeOne(r io.Reader) (v Vector, err error) {
	name, err := utils.ReadVarBytes(r)
	if err != nil {
		return v, err
	}
	if len(name) == 0 {
		return v, fmt.Errorf("%w: missing curve", ErrInvalidVector)
	}
	v.Curve = string(name)
	if v.X, err = readBig(r); err != nil {
		return v, err
	}
	if v.Y, err = readBig(r); err != nil {
		return v, err
	}
	valid, err := utils.ReadVarInt(r)
	if err != nil {
		return v, err
	}
	if valid != 0 && valid != 1 {
		return v, fmt.Errorf("%w: validity flag %d", ErrInvalidVector, valid)
	}
	v.Valid = valid == 1
	comment, err := utils.ReadVarBytes(r)
	if err != nil {
		return v, err
	}
	v.Comment = string(comment)
	return v, nil
}

// Digest returns the SHA3-256 hash of the binary encoding of vectors.
func Digest(vectors []Vector) (common.Hash, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, vectors); err != nil {
		return common.Hash{}, err
	}
	sum, err := utils.Sha3Hash(buf.Bytes())
	if err != nil {
		return common.Hash{}, err
	}
	return common.BytesToHash(sum), nil
}
