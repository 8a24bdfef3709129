// Package curve implements affine elliptic-curve group arithmetic for prime
// and binary curves: addition, doubling, scalar multiplication and
// membership checks.
//
// Nothing in this package is constant-time. The double-and-add loop in
// PointMul branches on every bit of the scalar, so it must not be fed
// secret scalars where timing can be observed.
package curve

import (
	"fmt"
	"math/big"
)

// Point is an affine point or the point at infinity. The zero value is the
// point at infinity. Points are immutable values; a Point does not know its
// curve and is not guaranteed to lie on one, see IsPointValid.
type Point struct {
	x, y *big.Int
}

// NewPoint returns the affine point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) Point {
	return Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
}

// Infinity returns the identity element O.
func Infinity() Point {
	return Point{}
}

// X returns a copy of the x coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int {
	if p.x == nil {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int {
	if p.y == nil {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal compares coordinates. The point at infinity only equals itself.
func (p Point) Equal(q Point) bool {
	if p.x == nil || q.x == nil {
		return p.x == nil && q.x == nil
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

func (p Point) String() string {
	if p.x == nil {
		return "infinity"
	}
	return fmt.Sprintf("(%#x, %#x)", p.x, p.y)
}

// IsPointAtInfinity reports whether p is the identity element.
func IsPointAtInfinity(p Point) bool {
	return p.x == nil
}

// Generator returns the base point of CURVE.
func Generator(CURVE *CurveParams) Point {
	return NewPoint(CURVE.Gx, CURVE.Gy)
}

// PointAdd returns a + b. Whenever a division step is undefined the result
// is the point at infinity rather than an error.
func PointAdd(CURVE *CurveParams, a, b Point) Point {
	if IsPointAtInfinity(a) {
		return b
	}
	if IsPointAtInfinity(b) {
		return a
	}
	if b.Equal(PointNeg(CURVE, a)) {
		return Infinity()
	}
	if a.Equal(b) {
		return PointDouble(CURVE, a)
	}
	switch CURVE.Kind {
	case Prime:
		return primeAdd(CURVE, a, b)
	case Binary:
		return binaryAdd(CURVE, a, b)
	default:
		panic(unknownKind(CURVE))
	}
}

// PointDouble returns 2·a. Points of order two double to infinity.
func PointDouble(CURVE *CurveParams, a Point) Point {
	if IsPointAtInfinity(a) {
		return a
	}
	switch CURVE.Kind {
	case Prime:
		return primeDouble(CURVE, a)
	case Binary:
		return binaryDouble(CURVE, a)
	default:
		panic(unknownKind(CURVE))
	}
}

// PointNeg returns -a. Negation differs per family: (x, p-y) on prime
// curves, (x, x+y) on binary curves.
func PointNeg(CURVE *CurveParams, a Point) Point {
	if IsPointAtInfinity(a) {
		return a
	}
	switch CURVE.Kind {
	case Prime:
		return primeNeg(CURVE, a)
	case Binary:
		return binaryNeg(a)
	default:
		panic(unknownKind(CURVE))
	}
}

// PointMul returns k·a for any integer k, negative values included.
func PointMul(CURVE *CurveParams, k *big.Int, a Point) Point {
	if IsPointAtInfinity(a) {
		return a
	}
	if k.Sign() < 0 {
		a = PointNeg(CURVE, a)
	}
	// Double-and-add from the most significant bit of |k|.
	n := new(big.Int).Abs(k)
	acc := Infinity()
	for i := n.BitLen() - 1; i >= 0; i-- {
		acc = PointDouble(CURVE, acc)
		if n.Bit(i) == 1 {
			acc = PointAdd(CURVE, acc, a)
		}
	}
	return acc
}

// PointMulBase returns k·G for the base point G of CURVE.
func PointMulBase(CURVE *CurveParams, k *big.Int) Point {
	return PointMul(CURVE, k, Generator(CURVE))
}

// IsPointValid reports whether p is a member of the group of CURVE: either
// the point at infinity, or an affine point with canonical coordinates that
// satisfies the curve equation.
func IsPointValid(CURVE *CurveParams, p Point) bool {
	if IsPointAtInfinity(p) {
		return true
	}
	switch CURVE.Kind {
	case Prime:
		return primeIsValid(CURVE, p)
	case Binary:
		return binaryIsValid(CURVE, p)
	default:
		panic(unknownKind(CURVE))
	}
}
