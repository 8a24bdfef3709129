package kat

import (
	"bytes"
	"context"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() log.Logger {
	return log.NewLogger(log.DiscardHandler())
}

func TestDefaultVectors(t *testing.T) {
	vectors := Default()
	require.NotEmpty(t, vectors)

	report, err := NewRunner(discard()).Run(context.Background(), vectors)
	require.NoError(t, err)
	assert.True(t, report.OK(), "failures: %v", report.Failures)
	assert.Equal(t, len(vectors), report.Total)
	assert.NotEmpty(t, report.ID)
}

func TestP192Scenarios(t *testing.T) {
	const vectors = `[
		{"curve": "P-192", "x": "0x491c0c4761b0a4a147b5e4ce03a531546644f5d1e3d05e57", "y": "0x6fa5addd47c5d6be3933fbff88f57a6c8ca0232c471965de", "valid": false},
		{"curve": "P-192", "x": "0x646c22e8aa5f7833390e0399155ac198ae42470bba4fc834", "y": "0x8d4afcfffd80e69a4d180178b37c44572495b7b267ee32a9", "valid": true},
		{"curve": "P-192", "x": "0x1b574acd4fb0f60dde3e3b5f3f0e94211f95112e43cba6fd2", "y": "0xbcc1b8a770f01a22e84d7f14e44932ffe094d8e3b1e6ac26", "valid": false},
		{"curve": "P-192", "x": "0x9671ec444cff24c8a5be80b018fa505ed6109a731e88c91a", "y": "0xfe79dae23008e46bf4230c895aab261a95845a77f06d0655", "valid": true}
	]`
	parsed, err := LoadVectors(strings.NewReader(vectors))
	require.NoError(t, err)
	require.Len(t, parsed, 4)

	for i, v := range parsed {
		got, err := Check(v)
		require.NoError(t, err)
		assert.Equal(t, v.Valid, got, "scenario %d", i+1)
	}
}

func TestRunReportsFailures(t *testing.T) {
	vectors := Default()[:2]
	vectors[1].Valid = !vectors[1].Valid
	vectors = append(vectors, Vector{Curve: "nope", X: big.NewInt(1), Y: big.NewInt(2)})

	var out bytes.Buffer
	report, err := NewRunner(log.NewLogger(log.NewTerminalHandler(&out, false))).Run(context.Background(), vectors)
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Passed)
	require.Len(t, report.Failures, 2)

	assert.Equal(t, 1, report.Failures[0].Index)
	assert.NoError(t, report.Failures[0].Err)
	assert.Equal(t, 2, report.Failures[1].Index)
	assert.ErrorIs(t, report.Failures[1].Err, ErrUnknownCurve)
	assert.Contains(t, report.Failures[1].String(), "unknown curve")

	assert.Contains(t, out.String(), "Vector failed")
	assert.Contains(t, out.String(), "Known-answer run complete")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := NewRunner(discard()).Run(ctx, Default())
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Equal(t, 0, report.Total)
	assert.False(t, report.OK())
}

func TestLoadVectorsErrors(t *testing.T) {
	tests := []string{
		`[{"curve": "", "x": "0x1", "y": "0x2", "valid": true}]`,
		`[{"curve": "secp192r1", "x": "zz", "y": "0x2", "valid": true}]`,
		`[{"curve": "secp192r1", "x": "0x1", "y": "", "valid": true}]`,
		`[{"curve": "secp192r1", "x": "0x1", "y": "0x2", "extra": 1}]`,
		`{`,
	}
	for _, in := range tests {
		_, err := LoadVectors(strings.NewReader(in))
		assert.Error(t, err, in)
	}

	_, err := LoadVectors(strings.NewReader(tests[1]))
	assert.ErrorIs(t, err, ErrInvalidVector)
}

func TestJSONRoundTrip(t *testing.T) {
	vectors := []Vector{{Curve: "sect163k1", X: big.NewInt(-5), Y: big.NewInt(255), Valid: false, Comment: "negative x"}}
	var buf bytes.Buffer
	require.NoError(t, WriteVectors(&buf, vectors))
	assert.Contains(t, buf.String(), `"x": "-0x5"`)

	back, err := LoadVectors(&buf)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, 0, back[0].X.Cmp(big.NewInt(-5)))
	assert.Equal(t, "negative x", back[0].Comment)
}

func TestBinaryCodec(t *testing.T) {
	vectors := Default()
	vectors = append(vectors, Vector{Curve: "secp192r1", X: big.NewInt(-7), Y: new(big.Int), Comment: "signed"})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, vectors))
	back, err := Decode(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, back, len(vectors))
	for i := range vectors {
		assert.Equal(t, vectors[i].Curve, back[i].Curve)
		assert.Equal(t, 0, vectors[i].X.Cmp(back[i].X), i)
		assert.Equal(t, 0, vectors[i].Y.Cmp(back[i].Y), i)
		assert.Equal(t, vectors[i].Valid, back[i].Valid)
		assert.Equal(t, vectors[i].Comment, back[i].Comment)
	}

	_, err = Decode(bytes.NewReader(buf.Bytes()[:buf.Len()-3]))
	assert.Error(t, err)

	// Missing coordinates survive the binary form.
	buf.Reset()
	require.NoError(t, Encode(&buf, []Vector{{Curve: "secp192r1", Y: big.NewInt(3)}}))
	back, err = Decode(&buf)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Nil(t, back[0].X)
	assert.Equal(t, int64(3), back[0].Y.Int64())
}

func TestRunIncompleteVector(t *testing.T) {
	vectors := Default()[:1]
	vectors = append(vectors, Vector{Curve: "secp192r1", X: big.NewInt(1)}, Vector{Curve: "sect163k1"})

	digest, err := Digest(vectors)
	require.NoError(t, err)

	report, err := NewRunner(discard()).Run(context.Background(), vectors)
	require.NoError(t, err)
	assert.Equal(t, digest, report.Digest)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Passed)
	require.Len(t, report.Failures, 2)
	for i, f := range report.Failures {
		assert.Equal(t, i+1, f.Index)
		assert.ErrorIs(t, f.Err, ErrInvalidVector)
	}
}

func TestDigest(t *testing.T) {
	a, err := Digest(Default())
	require.NoError(t, err)
	b, err := Digest(Default())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	changed := Default()
	changed[0].Valid = !changed[0].Valid
	c, err := Digest(changed)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	report, err := NewRunner(discard()).Run(context.Background(), Default())
	require.NoError(t, err)
	assert.Equal(t, a, report.Digest)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	vectors := Default()

	bin := filepath.Join(dir, "vectors.bin")
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, vectors))
	require.NoError(t, os.WriteFile(bin, buf.Bytes(), 0o600))

	js := filepath.Join(dir, "vectors.JSON")
	buf.Reset()
	require.NoError(t, WriteVectors(&buf, vectors))
	require.NoError(t, os.WriteFile(js, buf.Bytes(), 0o600))

	for _, path := range []string{bin, js} {
		loaded, err := LoadFile(path)
		require.NoError(t, err, path)
		assert.Len(t, loaded, len(vectors), path)
	}

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
