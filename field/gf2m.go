package field

import (
	"math/big"
)

// Elements of GF(2^m) are non-negative *big.Int values read as polynomials
// over GF(2): bit i is the coefficient of t^i. The field is fixed by the
// reduction polynomial fx, whose degree is m. Reduce, Mul, Square, Inverse
// and Div read a negative argument by its magnitude.

var one = big.NewInt(1)

// Degree returns m for the field defined by fx.
func Degree(fx *big.Int) int {
	return fx.BitLen() - 1
}

// Add returns x + y. Addition in characteristic 2 needs no reduction.
func Add(x, y *big.Int) *big.Int {
	return new(big.Int).Xor(x, y)
}

// Reduce returns |x| mod fx.
func Reduce(fx, x *big.Int) *big.Int {
	res := new(big.Int).Abs(x)
	m := fx.BitLen()
	t := new(big.Int)
	for res.BitLen() >= m {
		t.Lsh(fx, uint(res.BitLen()-m))
		res.Xor(res, t)
	}
	return res
}

// IsReduced reports whether x is a canonical element of the field, i.e.
// non-negative and of degree below m.
func IsReduced(fx, x *big.Int) bool {
	return x.Sign() >= 0 && x.BitLen() < fx.BitLen()
}

// Mul returns x·y mod fx.
func Mul(fx, x, y *big.Int) *big.Int {
	res := new(big.Int)
	t := new(big.Int)
	ax, ay := new(big.Int).Abs(x), new(big.Int).Abs(y)
	for i := 0; i < ay.BitLen(); i++ {
		if ay.Bit(i) == 1 {
			t.Lsh(ax, uint(i))
			res.Xor(res, t)
		}
	}
	return Reduce(fx, res)
}

// Square returns x² mod fx.
func Square(fx, x *big.Int) *big.Int {
	// Squaring is linear in GF(2)[t]: bit i of x moves to bit 2i.
	res := new(big.Int)
	ax := new(big.Int).Abs(x)
	for i := 0; i < ax.BitLen(); i++ {
		if ax.Bit(i) == 1 {
			res.SetBit(res, 2*i, 1)
		}
	}
	return Reduce(fx, res)
}

// Inverse returns x⁻¹ mod fx using the extended Euclidean algorithm over
// GF(2)[t]. The second result is false when x reduces to zero or shares a
// factor with fx.
func Inverse(fx, x *big.Int) (*big.Int, bool) {
	u := Reduce(fx, x)
	if u.Sign() == 0 {
		return nil, false
	}
	v := new(big.Int).Set(fx)
	g1, g2 := big.NewInt(1), new(big.Int)
	t := new(big.Int)
	for u.Cmp(one) != 0 {
		if u.Sign() == 0 {
			return nil, false
		}
		j := u.BitLen() - v.BitLen()
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}
		u.Xor(u, t.Lsh(v, uint(j)))
		g1.Xor(g1, t.Lsh(g2, uint(j)))
	}
	return Reduce(fx, g1), true
}

// Div returns x/y mod fx. The second result is false when y has no inverse,
// which for an irreducible fx means y is the field zero.
func Div(fx, x, y *big.Int) (*big.Int, bool) {
	yInv, ok := Inverse(fx, y)
	if !ok {
		return nil, false
	}
	return Mul(fx, x, yInv), true
}
