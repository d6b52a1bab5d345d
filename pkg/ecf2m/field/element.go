package field

import "math/big"

// Element is a field element of GF(2^m): a polynomial over GF(2) whose
// coefficient vector is the bit pattern of the backing big.Int. Elements
// produced by a Context are always reduced below the field degree.
//
// Element has value semantics from the caller's point of view: every
// constructor and arithmetic method allocates a fresh backing integer, and
// accessors return defensive copies. Do not share one Element between
// goroutines while mutating it through Zeroize.
type Element struct {
	v *big.Int
}

// Bytes returns the big-endian byte encoding of the element. The zero
// element encodes as an empty slice, matching big.Int. The returned slice is
// a fresh allocation owned by the caller.
func (e *Element) Bytes() []byte {
	if e == nil || e.v == nil {
		return nil
	}
	return e.v.Bytes()
}

// BigInt returns a copy of the element's coefficient vector as a big.Int.
func (e *Element) BigInt() *big.Int {
	if e == nil || e.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(e.v)
}

// IsZero reports whether the element is the additive identity.
func (e *Element) IsZero() bool {
	return e == nil || e.v == nil || e.v.Sign() == 0
}

// Equal reports whether two elements have identical coefficient vectors.
func (e *Element) Equal(other *Element) bool {
	if e.IsZero() || other.IsZero() {
		return e.IsZero() && other.IsZero()
	}
	return e.v.Cmp(other.v) == 0
}

// Clone returns an independent copy of the element.
func (e *Element) Clone() *Element {
	return &Element{v: e.BigInt()}
}

// Zeroize overwrites the backing integer with zero. This is best effort:
// big.Int may have left intermediate copies behind during arithmetic, but
// clearing the final buffer matches the disposal contract for point
// coordinates.
func (e *Element) Zeroize() {
	if e == nil || e.v == nil {
		return
	}
	e.v.SetInt64(0)
}

// degree returns the polynomial degree, or -1 for the zero element.
func (e *Element) degree() int {
	if e.IsZero() {
		return -1
	}
	return e.v.BitLen() - 1
}
