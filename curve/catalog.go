package curve

import (
	"crypto/elliptic"
	"math/big"
	"sort"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Curve is a map of registered curves keyed by name. Aliases map to the
// same record.
var Curve = make(map[string]*CurveParams)

// CurveRegist registers a curve so it can be looked up by name.
func CurveRegist(params *CurveParams) {
	if _, ok := Curve[params.Name]; ok {
		panic("curve already registered: " + params.Name)
	}
	Curve[params.Name] = params
}

// CurveAlias makes a registered curve reachable under another name.
func CurveAlias(alias, name string) {
	params, ok := Curve[name]
	if !ok {
		panic("curve not registered: " + name)
	}
	if _, ok := Curve[alias]; ok {
		panic("curve already registered: " + alias)
	}
	Curve[alias] = params
}

// CurveGet retrieves a registered curve by name or alias, nil if unknown.
func CurveGet(name string) *CurveParams {
	return Curve[name]
}

// CurveNames returns the canonical names of all registered curves, sorted.
func CurveNames() []string {
	names := make([]string, 0, len(Curve))
	for name, params := range Curve {
		if params.Name == name {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func init() {
	CurveRegist(secp192r1())
	CurveRegist(fromElliptic("secp224r1", elliptic.P224()))
	CurveRegist(fromElliptic("secp256r1", elliptic.P256()))
	CurveRegist(fromElliptic("secp384r1", elliptic.P384()))
	CurveRegist(fromElliptic("secp521r1", elliptic.P521()))
	CurveRegist(secp256k1Params())

	CurveRegist(sect163k1())
	CurveRegist(sect163r2())
	CurveRegist(sect233k1())
	CurveRegist(sect233r1())
	CurveRegist(sect283k1())
	CurveRegist(sect283r1())

	CurveAlias("P-192", "secp192r1")
	CurveAlias("prime192v1", "secp192r1")
	CurveAlias("P-224", "secp224r1")
	CurveAlias("P-256", "secp256r1")
	CurveAlias("prime256v1", "secp256r1")
	CurveAlias("P-384", "secp384r1")
	CurveAlias("P-521", "secp521r1")
	CurveAlias("K-163", "sect163k1")
	CurveAlias("B-163", "sect163r2")
	CurveAlias("K-233", "sect233k1")
	CurveAlias("B-233", "sect233r1")
	CurveAlias("K-283", "sect283k1")
	CurveAlias("B-283", "sect283r1")
}

func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: bad hex constant " + s)
	}
	return v
}

// poly builds a reduction polynomial from the exponents of its terms.
func poly(exps ...int) *big.Int {
	v := new(big.Int)
	for _, e := range exps {
		v.SetBit(v, e, 1)
	}
	return v
}

// fromElliptic converts one of the NIST curves of crypto/elliptic, which all
// have a = -3.
func fromElliptic(name string, c elliptic.Curve) *CurveParams {
	params := c.Params()
	return &CurveParams{
		Name:    name,
		Kind:    Prime,
		P:       params.P,
		A:       new(big.Int).Sub(params.P, three),
		B:       params.B,
		Gx:      params.Gx,
		Gy:      params.Gy,
		N:       params.N,
		H:       1,
		BitSize: params.BitSize,
	}
}

func secp256k1Params() *CurveParams {
	params := secp256k1.S256().Params()
	return &CurveParams{
		Name:    "secp256k1",
		Kind:    Prime,
		P:       params.P,
		A:       new(big.Int),
		B:       params.B,
		Gx:      params.Gx,
		Gy:      params.Gy,
		N:       params.N,
		H:       1,
		BitSize: params.BitSize,
	}
}

// SEC 2 curves not covered by crypto/elliptic.

func secp192r1() *CurveParams {
	return &CurveParams{
		Name:    "secp192r1",
		Kind:    Prime,
		P:       fromHex("fffffffffffffffffffffffffffffffeffffffffffffffff"),
		A:       fromHex("fffffffffffffffffffffffffffffffefffffffffffffffc"),
		B:       fromHex("64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1"),
		Gx:      fromHex("188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012"),
		Gy:      fromHex("07192b95ffc8da78631011ed6b24cdd573f977a11e794811"),
		N:       fromHex("ffffffffffffffffffffffff99def836146bc9b1b4d22831"),
		H:       1,
		BitSize: 192,
	}
}

func sect163k1() *CurveParams {
	return &CurveParams{
		Name:    "sect163k1",
		Kind:    Binary,
		P:       poly(163, 7, 6, 3, 0),
		A:       big.NewInt(1),
		B:       big.NewInt(1),
		Gx:      fromHex("02fe13c0537bbc11acaa07d793de4e6d5e5c94eee8"),
		Gy:      fromHex("0289070fb05d38ff58321f2e800536d538ccdaa3d9"),
		N:       fromHex("04000000000000000000020108a2e0cc0d99f8a5ef"),
		H:       2,
		BitSize: 163,
	}
}

func sect163r2() *CurveParams {
	return &CurveParams{
		Name:    "sect163r2",
		Kind:    Binary,
		P:       poly(163, 7, 6, 3, 0),
		A:       big.NewInt(1),
		B:       fromHex("020a601907b8c953ca1481eb10512f78744a3205fd"),
		Gx:      fromHex("03f0eba16286a2d57ea0991168d4994637e8343e36"),
		Gy:      fromHex("00d51fbc6c71a0094fa2cdd545b11c5c0c797324f1"),
		N:       fromHex("040000000000000000000292fe77e70c12a4234c33"),
		H:       2,
		BitSize: 163,
	}
}

func sect233k1() *CurveParams {
	return &CurveParams{
		Name:    "sect233k1",
		Kind:    Binary,
		P:       poly(233, 74, 0),
		A:       big.NewInt(0),
		B:       big.NewInt(1),
		Gx:      fromHex("017232ba853a7e731af129f22ff4149563a419c26bf50a4c9d6eefad6126"),
		Gy:      fromHex("01db537dece819b7f70f555a67c427a8cd9bf18aeb9b56e0c11056fae6a3"),
		N:       fromHex("8000000000000000000000000000069d5bb915bcd46efb1ad5f173abdf"),
		H:       4,
		BitSize: 233,
	}
}

func sect233r1() *CurveParams {
	return &CurveParams{
		Name:    "sect233r1",
		Kind:    Binary,
		P:       poly(233, 74, 0),
		A:       big.NewInt(1),
		B:       fromHex("0066647ede6c332c7f8c0923bb58213b333b20e9ce4281fe115f7d8f90ad"),
		Gx:      fromHex("00fac9dfcbac8313bb2139f1bb755fef65bc391f8b36f8f8eb7371fd558b"),
		Gy:      fromHex("01006a08a41903350678e58528bebf8a0beff867a7ca36716f7e01f81052"),
		N:       fromHex("01000000000000000000000000000013e974e72f8a6922031d2603cfe0d7"),
		H:       2,
		BitSize: 233,
	}
}

func sect283k1() *CurveParams {
	return &CurveParams{
		Name:    "sect283k1",
		Kind:    Binary,
		P:       poly(283, 12, 7, 5, 0),
		A:       big.NewInt(0),
		B:       big.NewInt(1),
		Gx:      fromHex("0503213f78ca44883f1a3b8162f188e553cd265f23c1567a16876913b0c2ac2458492836"),
		Gy:      fromHex("01ccda380f1c9e318d90f95d07e5426fe87e45c0e8184698e45962364e34116177dd2259"),
		N:       fromHex("01ffffffffffffffffffffffffffffffffffe9ae2ed07577265dff7f94451e061e163c61"),
		H:       4,
		BitSize: 283,
	}
}

func sect283r1() *CurveParams {
	return &CurveParams{
		Name:    "sect283r1",
		Kind:    Binary,
		P:       poly(283, 12, 7, 5, 0),
		A:       big.NewInt(1),
		B:       fromHex("027b680ac8b8596da5a4af8a19a0303fca97fd7645309fa2a581485af6263e313b79a2f5"),
		Gx:      fromHex("05f939258db7dd90e1934f8c70b0dfec2eed25b8557eac9c80e2e198f8cdbecd86b12053"),
		Gy:      fromHex("03676854fe24141cb98fe6d4b20d02b4516ff702350eddb0826779c813f0df45be8112f4"),
		N:       fromHex("03ffffffffffffffffffffffffffffffffffef90399660fc938a90165b042a7cefadb307"),
		H:       2,
		BitSize: 283,
	}
}
