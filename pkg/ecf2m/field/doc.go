// Package field implements polynomial-basis arithmetic over binary extension
// fields GF(2^m) together with the curve-membership operations needed by the
// point manager.
//
// Elements are polynomials over GF(2) held as the bit pattern of a big.Int
// and kept reduced modulo the field's irreducible reduction polynomial.
// Addition is xor, multiplication is shift-and-xor followed by reduction, and
// inversion uses the polynomial extended Euclidean algorithm.
//
// A Context bundles the reduction polynomial, the curve coefficients a and b
// of the Weierstrass equation y^2 + xy = x^3 + a*x^2 + b, and the random
// source used for element sampling. The two curve capabilities are exposed as
// separate methods rather than one overloaded "set" call:
//
//   - CheckOnCurve reports whether an (x, y) pair satisfies the equation.
//   - SolveForY derives a matching y for a candidate x, when one exists.
//
// # Concurrency
//
// Context is not safe for unsynchronized concurrent use: RandomElement reads
// from the shared random source. Callers must serialize access or create one
// Context per goroutine.
package field
