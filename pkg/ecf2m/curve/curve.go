package curve

import "math/big"

// Curve identifies a standardized elliptic curve over a binary extension
// field GF(2^m).
type Curve int

// Standard binary curves from SEC 2 / FIPS 186.
const (
	K163 Curve = iota + 1 // sect163k1, Koblitz
	B163                  // sect163r2, random
	K233                  // sect233k1, Koblitz
	B233                  // sect233r1, random
	K283                  // sect283k1, Koblitz
)

// params carries the domain parameters of one curve. Polynomials and
// coordinates are hex strings parsed once at package init.
type params struct {
	name string
	m    int    // extension degree
	f    string // reduction polynomial
	a    string // curve coefficient a
	b    string // curve coefficient b
	gx   string // base point x
	gy   string // base point y
	n    string // base point order
	h    int    // cofactor
}

var table = map[Curve]*params{
	K163: {
		name: "K-163",
		m:    163,
		f:    "0800000000000000000000000000000000000000C9",
		a:    "1",
		b:    "1",
		gx:   "02FE13C0537BBC11ACAA07D793DE4E6D5E5C94EEE8",
		gy:   "0289070FB05D38FF58321F2E800536D538CCDAA3D9",
		n:    "04000000000000000000020108A2E0CC0D99F8A5EF",
		h:    2,
	},
	B163: {
		name: "B-163",
		m:    163,
		f:    "0800000000000000000000000000000000000000C9",
		a:    "1",
		b:    "020A601907B8C953CA1481EB10512F78744A3205FD",
		gx:   "03F0EBA16286A2D57EA0991168D4994637E8343E36",
		gy:   "00D51FBC6C71A0094FA2CDD545B11C5C0C797324F1",
		n:    "040000000000000000000292FE77E70C12A4234C33",
		h:    2,
	},
	K233: {
		name: "K-233",
		m:    233,
		f:    "020000000000000000000000000000000000000004000000000000000001",
		a:    "0",
		b:    "1",
		gx:   "017232BA853A7E731AF129F22FF4149563A419C26BF50A4C9D6EEFAD6126",
		gy:   "01DB537DECE819B7F70F555A67C427A8CD9BF18AEB9B56E0C11056FAE6A3",
		n:    "8000000000000000000000000000069D5BB915BCD46EFB1AD5F173ABDF",
		h:    4,
	},
	B233: {
		name: "B-233",
		m:    233,
		f:    "020000000000000000000000000000000000000004000000000000000001",
		a:    "1",
		b:    "0066647EDE6C332C7F8C0923BB58213B333B20E9CE4281FE115F7D8F90AD",
		gx:   "00FAC9DFCBAC8313BB2139F1BB755FEF65BC391F8B36F8F8EB7371FD558B",
		gy:   "01006A08A41903350678E58528BEBF8A0BEFF867A7CA36716F7E01F81052",
		n:    "01000000000000000000000000000013E974E72F8A6922031D2603CFE0D7",
		h:    2,
	},
	K283: {
		name: "K-283",
		m:    283,
		f:    "0800000000000000000000000000000000000000000000000000000000000000000010A1",
		a:    "0",
		b:    "1",
		gx:   "0503213F78CA44883F1A3B8162F188E553CD265F23C1567A16876913B0C2AC2458492836",
		gy:   "01CCDA380F1C9E318D90F95D07E5426FE87E45C0E8184698E45962364E34116177DD2259",
		n:    "01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFE9AE2ED07577265DFF7F94451E061E163C61",
		h:    4,
	},
}

// Known reports whether c names a supported curve.
func (c Curve) Known() bool {
	_, ok := table[c]
	return ok
}

// String returns the NIST name of the curve.
func (c Curve) String() string {
	if p, ok := table[c]; ok {
		return p.name
	}
	return "Unknown"
}

// FieldDegree returns the extension degree m of the coordinate field.
func (c Curve) FieldDegree() int {
	if p, ok := table[c]; ok {
		return p.m
	}
	return 0
}

// CoordinateSize returns the byte length of a fixed-size coordinate
// encoding, ceil(m/8).
func (c Curve) CoordinateSize() int {
	if p, ok := table[c]; ok {
		return (p.m + 7) / 8
	}
	return 0
}

// ReductionPolynomial returns the irreducible polynomial defining the field.
func (c Curve) ReductionPolynomial() *big.Int {
	return hexParam(c, func(p *params) string { return p.f })
}

// A returns the curve coefficient a of y^2 + xy = x^3 + a*x^2 + b.
func (c Curve) A() *big.Int {
	return hexParam(c, func(p *params) string { return p.a })
}

// B returns the curve coefficient b.
func (c Curve) B() *big.Int {
	return hexParam(c, func(p *params) string { return p.b })
}

// Generator returns the affine coordinates of the standard base point.
func (c Curve) Generator() (x, y *big.Int) {
	return hexParam(c, func(p *params) string { return p.gx }),
		hexParam(c, func(p *params) string { return p.gy })
}

// Order returns the order of the base point.
func (c Curve) Order() *big.Int {
	return hexParam(c, func(p *params) string { return p.n })
}

// Cofactor returns the curve cofactor h.
func (c Curve) Cofactor() int {
	if p, ok := table[c]; ok {
		return p.h
	}
	return 0
}

// All returns the supported curves in a stable order.
func All() []Curve {
	return []Curve{K163, B163, K233, B233, K283}
}

func hexParam(c Curve, pick func(*params) string) *big.Int {
	p, ok := table[c]
	if !ok {
		return nil
	}
	v, ok := new(big.Int).SetString(pick(p), 16)
	if !ok {
		// Parameters are compile-time constants; a parse failure is a
		// programming error.
		panic("curve: malformed domain parameter for " + p.name)
	}
	return v
}
