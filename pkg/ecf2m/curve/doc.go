// Package curve enumerates the supported binary-field elliptic curves and
// their domain parameters.
//
// Each Curve value names a SEC 2 / FIPS 186 curve over GF(2^m) and exposes
// its reduction polynomial, Weierstrass coefficients, base point, order, and
// cofactor. The package holds data only; arithmetic lives in the field
// package and lifecycle management in ecf2m.
package curve
