package curve

import (
	"fmt"
	"math/big"
)

// Kind selects the family of a curve and with it the field its coordinates
// live in. The set of kinds is closed.
type Kind int

const (
	// Prime curves satisfy y² = x³ + a·x + b over the integers mod P.
	Prime Kind = iota
	// Binary curves satisfy y² + x·y = x³ + a·x² + b over GF(2^m), where P is
	// the irreducible reduction polynomial of degree m.
	Binary
)

func (k Kind) String() string {
	switch k {
	case Prime:
		return "prime"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// CurveParams describes a named elliptic curve. Values handed out by the
// catalog are shared and must not be modified.
type CurveParams struct {
	Name    string
	Kind    Kind
	P       *big.Int // prime modulus, or reduction polynomial for Binary
	A, B    *big.Int // curve coefficients
	Gx, Gy  *big.Int // base point
	N       *big.Int // order of the base point
	H       int      // cofactor
	BitSize int      // size of the underlying field
}

func (c *CurveParams) String() string {
	return fmt.Sprintf("%s(%s, %d bits)", c.Name, c.Kind, c.BitSize)
}

func unknownKind(CURVE *CurveParams) string {
	return fmt.Sprintf("curve: %s has unknown kind %v", CURVE.Name, CURVE.Kind)
}
