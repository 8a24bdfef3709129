// Package kat runs known-answer vectors through the curve validity check.
//
// A vector names a curve from the catalog, an affine point and the expected
// result of curve.IsPointValid. Vectors are read from JSON or from a compact
// binary form; the binary form also defines the digest that pins a vector
// set in a run report.
package kat

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/izouxv/goEcc/utils"
)

var (
	// ErrUnknownCurve is returned for vectors naming a curve missing from the catalog.
	ErrUnknownCurve = errors.New("unknown curve")
	// ErrInvalidVector is returned for vectors that cannot be decoded.
	ErrInvalidVector = errors.New("invalid vector")
)

//go:embed vectors.json
var defaultVectors []byte

// Vector is a single known-answer test case.
type Vector struct {
	Curve   string
	X, Y    *big.Int
	Valid   bool
	Comment string
}

type vectorJSON struct {
	Curve   string `json:"curve"`
	X       string `json:"x"`
	Y       string `json:"y"`
	Valid   bool   `json:"valid"`
	Comment string `json:"comment,omitempty"`
}

func (v Vector) MarshalJSON() ([]byte, error) {
	if v.X == nil || v.Y == nil {
		return nil, fmt.Errorf("%w: missing coordinate", ErrInvalidVector)
	}
	return json.Marshal(vectorJSON{
		Curve:   v.Curve,
		X:       utils.FormatBig(v.X),
		Y:       utils.FormatBig(v.Y),
		Valid:   v.Valid,
		Comment: v.Comment,
	})
}

func (v *Vector) UnmarshalJSON(data []byte) error {
	var enc vectorJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&enc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidVector, err)
	}
	if enc.Curve == "" {
		return fmt.Errorf("%w: missing curve", ErrInvalidVector)
	}
	x, err := utils.ParseBig(enc.X)
	if err != nil {
		return fmt.Errorf("%w: x: %v", ErrInvalidVector, err)
	}
	y, err := utils.ParseBig(enc.Y)
	if err != nil {
		return fmt.Errorf("%w: y: %v", ErrInvalidVector, err)
	}
	*v = Vector{Curve: enc.Curve, X: x, Y: y, Valid: enc.Valid, Comment: enc.Comment}
	return nil
}

// LoadVectors decodes a JSON array of vectors.
func LoadVectors(r io.Reader) ([]Vector, error) {
	var vectors []Vector
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&vectors); err != nil {
		return nil, fmt.Errorf("failed to decode vectors: %w", err)
	}
	return vectors, nil
}

// WriteVectors encodes vectors as an indented JSON array.
func WriteVectors(w io.Writer, vectors []Vector) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(vectors)
}

// LoadFile reads vectors from path. Files ending in .json are read as JSON,
// anything else as the binary encoding written by Encode.
func LoadFile(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if isJSON(path) {
		return LoadVectors(f)
	}
	return Decode(f)
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// Default returns the built-in vector set.
func Default() []Vector {
	vectors, err := LoadVectors(bytes.NewReader(defaultVectors))
	if err != nil {
		panic("kat: built-in vectors: " + err.Error())
	}
	return vectors
}
