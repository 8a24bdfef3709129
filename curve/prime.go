package curve

import (
	"math/big"

	"github.com/izouxv/goEcc/field"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

func primeNeg(CURVE *CurveParams, a Point) Point {
	return Point{x: new(big.Int).Set(a.x), y: field.BigIntNeg(CURVE.P, a.y)}
}

// primeAdd handles a ≠ ±b, both affine.
func primeAdd(CURVE *CurveParams, a, b Point) Point {
	P := CURVE.P
	// s = (ya - yb) / (xa - xb)
	inv, ok := field.ModInverse(field.BigIntSub(P, a.x, b.x), P)
	if !ok {
		return Infinity()
	}
	s := field.BigIntMul(P, field.BigIntSub(P, a.y, b.y), inv)

	// x = s² - xa - xb
	x := field.BigIntMul(P, s, s)
	x = field.BigIntSub(P, x, a.x)
	x = field.BigIntSub(P, x, b.x)

	// y = s(xa - x) - ya
	y := field.BigIntMul(P, s, field.BigIntSub(P, a.x, x))
	y = field.BigIntSub(P, y, a.y)
	return Point{x: x, y: y}
}

func primeDouble(CURVE *CurveParams, a Point) Point {
	P := CURVE.P
	// λ = (3x² + a) / 2y, undefined for points of order two.
	inv, ok := field.ModInverse(field.BigIntMul(P, two, a.y), P)
	if !ok {
		return Infinity()
	}
	num := field.BigIntMul(P, three, field.BigIntMul(P, a.x, a.x))
	num = field.BigIntAdd(P, num, CURVE.A)
	l := field.BigIntMul(P, num, inv)

	// x = λ² - 2x
	x := field.BigIntMul(P, l, l)
	x = field.BigIntSub(P, x, field.BigIntMul(P, two, a.x))

	// y = λ(xa - x) - ya
	y := field.BigIntMul(P, l, field.BigIntSub(P, a.x, x))
	y = field.BigIntSub(P, y, a.y)
	return Point{x: x, y: y}
}

func inRange(P, v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(P) < 0
}

// primeIsValid checks 0 <= x, y < p and y² = x³ + ax + b.
func primeIsValid(CURVE *CurveParams, p Point) bool {
	P := CURVE.P
	if !inRange(P, p.x) || !inRange(P, p.y) {
		return false
	}
	y2 := field.BigIntMul(P, p.y, p.y)

	rhs := field.BigIntMul(P, p.x, p.x)
	rhs = field.BigIntAdd(P, rhs, CURVE.A) // x² + a
	rhs = field.BigIntMul(P, rhs, p.x)     // x³ + ax
	rhs = field.BigIntAdd(P, rhs, CURVE.B) // x³ + ax + b
	return y2.Cmp(rhs) == 0
}
