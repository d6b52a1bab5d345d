package field

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Context is the field-arithmetic environment for one GF(2^m) curve: the
// irreducible reduction polynomial, the Weierstrass coefficients a and b, and
// the random source used to draw candidate elements.
//
// Context is not safe for unsynchronized concurrent use by multiple callers;
// see the package documentation.
type Context struct {
	m int      // extension degree
	f *big.Int // reduction polynomial, degree exactly m

	a *Element
	b *Element

	rand io.Reader
}

// NewContext builds a field context for GF(2^m) with reduction polynomial f
// and curve equation y^2 + xy = x^3 + a*x^2 + b. The a and b coefficients
// are reduced on entry. A nil rnd selects crypto/rand.
//
// The extension degree must be odd: the half-trace method used by SolveForY
// only applies to odd m, and every standardized binary curve field (163, 233,
// 283, 409, 571) satisfies this.
func NewContext(m int, f, a, b *big.Int, rnd io.Reader) (*Context, error) {
	if m <= 0 {
		return nil, fmt.Errorf("field: extension degree must be positive, got %d", m)
	}
	if m%2 == 0 {
		return nil, fmt.Errorf("field: extension degree must be odd, got %d", m)
	}
	if f == nil || f.BitLen() != m+1 {
		return nil, fmt.Errorf("field: reduction polynomial must have degree %d", m)
	}
	if a == nil || b == nil {
		return nil, errors.New("field: missing curve coefficient")
	}
	if rnd == nil {
		rnd = rand.Reader
	}

	c := &Context{
		m:    m,
		f:    new(big.Int).Set(f),
		rand: rnd,
	}
	c.a = c.NewElement(a)
	c.b = c.NewElement(b)
	if c.b.IsZero() {
		// b = 0 makes the curve singular.
		return nil, errors.New("field: curve coefficient b must be nonzero")
	}
	return c, nil
}

// Degree returns the extension degree m.
func (c *Context) Degree() int {
	return c.m
}

// A returns a copy of the curve coefficient a.
func (c *Context) A() *Element {
	return c.a.Clone()
}

// B returns a copy of the curve coefficient b.
func (c *Context) B() *Element {
	return c.b.Clone()
}

// NewElement builds a reduced element from the bit pattern of v.
func (c *Context) NewElement(v *big.Int) *Element {
	return &Element{v: c.reduce(new(big.Int).Set(v))}
}

// ElementFromBytes decodes a big-endian byte sequence into a reduced field
// element. Any length is accepted: values at or above the reduction
// polynomial are reduced into the field, and an empty slice decodes to the
// zero element. The input is never retained.
func (c *Context) ElementFromBytes(buf []byte) *Element {
	return &Element{v: c.reduce(new(big.Int).SetBytes(buf))}
}

// RandomElement draws a uniformly random integer in [0, bound) from the
// context's random source and reduces it into the field. The bound is an
// arbitrary-precision value so that large field-size classes cannot overflow
// a fixed-width ceiling computation.
func (c *Context) RandomElement(bound *big.Int) (*Element, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, errors.New("field: random bound must be positive")
	}
	n, err := rand.Int(c.rand, bound)
	if err != nil {
		return nil, fmt.Errorf("field: drawing random element: %w", err)
	}
	return &Element{v: c.reduce(n)}, nil
}

// reduce brings p below the field degree by xoring in shifted copies of the
// reduction polynomial. It mutates and returns p.
func (c *Context) reduce(p *big.Int) *big.Int {
	var t big.Int
	for d := p.BitLen() - 1; d >= c.m; d = p.BitLen() - 1 {
		t.Lsh(c.f, uint(d-c.m))
		p.Xor(p, &t)
	}
	return p
}
