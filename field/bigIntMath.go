// Package field implements the finite-field arithmetic underneath the curve
// package: residues modulo a prime and polynomials over GF(2) reduced by an
// irreducible polynomial.
//
// None of the functions here are constant-time. Every result is a freshly
// allocated *big.Int; arguments are never modified.
package field

import (
	"math/big"
)

func BigIntAdd(P, a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Add(a, b)
	res.Mod(res, P)
	return
}

func BigIntSub(P, a, b *big.Int) (res *big.Int) {
	res = new(big.Int)
	res.Sub(a, b)
	res.Mod(res, P)
	return
}

func BigIntMul(P, a, b *big.Int) (res *big.Int) {
	res = new(big.Int).Mul(a, b)
	res.Mod(res, P)
	return
}

// BigIntNeg returns -a mod P.
func BigIntNeg(P, a *big.Int) (res *big.Int) {
	res = new(big.Int).Neg(a)
	res.Mod(res, P)
	return
}

// ModInverse returns a⁻¹ mod m. The second result is false when
// gcd(a, m) != 1, in which case no inverse exists.
func ModInverse(a, m *big.Int) (*big.Int, bool) {
	if m.Sign() <= 0 {
		return nil, false
	}
	r := new(big.Int).Mod(a, m)
	if r.ModInverse(r, m) == nil {
		return nil, false
	}
	return r, true
}
