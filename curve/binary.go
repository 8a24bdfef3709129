package curve

import (
	"math/big"

	"github.com/izouxv/goEcc/field"
)

func binaryNeg(a Point) Point {
	return Point{x: new(big.Int).Set(a.x), y: field.Add(a.x, a.y)}
}

// hasNegative reports coordinates outside the field's element encoding.
func hasNegative(points ...Point) bool {
	for _, p := range points {
		if p.x.Sign() < 0 || p.y.Sign() < 0 {
			return true
		}
	}
	return false
}

// binaryAdd handles a ≠ ±b, both affine.
func binaryAdd(CURVE *CurveParams, a, b Point) Point {
	fx := CURVE.P
	if hasNegative(a, b) {
		return Infinity()
	}
	// s = (ya + yb) / (xa + xb)
	s, ok := field.Div(fx, field.Add(a.y, b.y), field.Add(a.x, b.x))
	if !ok {
		return Infinity()
	}

	// x = s² + s + xa + xb + a
	x := field.Add(field.Square(fx, s), s)
	x = field.Add(x, a.x)
	x = field.Add(x, b.x)
	x = field.Add(x, CURVE.A)

	// y = s(xa + x) + x + ya
	y := field.Mul(fx, s, field.Add(a.x, x))
	y = field.Add(y, x)
	y = field.Add(y, a.y)
	return Point{x: x, y: y}
}

func binaryDouble(CURVE *CurveParams, a Point) Point {
	fx := CURVE.P
	if hasNegative(a) {
		return Infinity()
	}
	// The only point with x = 0 has order two.
	if a.x.Sign() == 0 {
		return Infinity()
	}
	// s = x + y/x
	s, ok := field.Div(fx, a.y, a.x)
	if !ok {
		return Infinity()
	}
	s = field.Add(s, a.x)

	// x' = s² + s + a
	x := field.Add(field.Square(fx, s), s)
	x = field.Add(x, CURVE.A)

	// y' = x² + x'(s + 1)
	y := field.Mul(fx, x, field.Add(s, one))
	y = field.Add(y, field.Square(fx, a.x))
	return Point{x: x, y: y}
}

// binaryIsValid checks that x and y are reduced and that
// y² + xy = x³ + ax² + b, written as (x + a)x² + xy + b + y² = 0.
func binaryIsValid(CURVE *CurveParams, p Point) bool {
	fx := CURVE.P
	if !field.IsReduced(fx, p.x) || !field.IsReduced(fx, p.y) {
		return false
	}
	x2 := field.Square(fx, p.x)
	sum := field.Mul(fx, field.Add(p.x, CURVE.A), x2)
	sum = field.Add(sum, field.Mul(fx, p.y, p.x))
	sum = field.Add(sum, CURVE.B)
	sum = field.Add(sum, field.Square(fx, p.y))
	return sum.Sign() == 0
}
