package field_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coinbase/ecf2m-go/pkg/ecf2m/field"
)

// Test field: GF(2^7) with reduction polynomial z^7 + z + 1 and curve
// coefficients a = b = 1. Small enough that identities can be checked by
// hand or by brute force.
const (
	testDegree = 7
	testPoly   = 0x83 // z^7 + z + 1
)

func newTestContext(t *testing.T) *field.Context {
	t.Helper()
	ctx, err := field.NewContext(testDegree, big.NewInt(testPoly), big.NewInt(1), big.NewInt(1), nil)
	require.NoError(t, err)
	return ctx
}

func TestNewContextValidation(t *testing.T) {
	one := big.NewInt(1)
	poly := big.NewInt(testPoly)

	cases := []struct {
		name string
		m    int
		f    *big.Int
		a, b *big.Int
	}{
		{"zero degree", 0, poly, one, one},
		{"even degree", 8, big.NewInt(0x11b), one, one},
		{"degree mismatch", 9, poly, one, one},
		{"nil polynomial", 7, nil, one, one},
		{"singular curve", 7, poly, one, big.NewInt(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := field.NewContext(tc.m, tc.f, tc.a, tc.b, nil)
			require.Error(t, err)
		})
	}
}

func TestElementFromBytesReduces(t *testing.T) {
	ctx := newTestContext(t)

	// z^7 = z + 1 under z^7 + z + 1.
	e := ctx.ElementFromBytes([]byte{0x80})
	require.Equal(t, int64(0x03), e.BigInt().Int64())

	// Empty input is the zero element.
	require.True(t, ctx.ElementFromBytes(nil).IsZero())

	// Already-reduced values pass through unchanged.
	e = ctx.ElementFromBytes([]byte{0x5a})
	require.Equal(t, int64(0x5a), e.BigInt().Int64())
}

func TestBytesRoundTrip(t *testing.T) {
	ctx := newTestContext(t)

	for _, v := range []int64{0, 1, 2, 0x42, 0x7f} {
		e := ctx.NewElement(big.NewInt(v))
		back := ctx.ElementFromBytes(e.Bytes())
		require.True(t, e.Equal(back), "round trip changed value %#x", v)
	}
}

func TestMulKnownProducts(t *testing.T) {
	ctx := newTestContext(t)

	cases := []struct {
		x, y, want int64
	}{
		{0x02, 0x02, 0x04},       // z * z = z^2
		{0x40, 0x02, 0x03},       // z^6 * z = z^7 = z + 1
		{0x01, 0x5b, 0x5b},       // multiplicative identity
		{0x00, 0x37, 0x00},       // absorbing zero
		{0x40, 0x40, 0x60},       // z^12 = z^5 * z^7 = z^6 + z^5
	}
	for _, tc := range cases {
		x := ctx.NewElement(big.NewInt(tc.x))
		y := ctx.NewElement(big.NewInt(tc.y))
		got := ctx.Mul(x, y).BigInt().Int64()
		require.Equal(t, tc.want, got, "%#x * %#x", tc.x, tc.y)
	}
}

func TestSquareMatchesMul(t *testing.T) {
	ctx := newTestContext(t)

	for v := int64(0); v < 1<<testDegree; v++ {
		e := ctx.NewElement(big.NewInt(v))
		require.True(t, ctx.Square(e).Equal(ctx.Mul(e, e)), "square mismatch at %#x", v)
	}
}

func TestInverse(t *testing.T) {
	ctx := newTestContext(t)
	one := ctx.NewElement(big.NewInt(1))

	for v := int64(1); v < 1<<testDegree; v++ {
		e := ctx.NewElement(big.NewInt(v))
		inv, err := ctx.Inverse(e)
		require.NoError(t, err)
		require.True(t, ctx.Mul(e, inv).Equal(one), "e * e^-1 != 1 at %#x", v)
	}

	_, err := ctx.Inverse(ctx.NewElement(big.NewInt(0)))
	require.Error(t, err)
}

func TestSqrtInvertsSquare(t *testing.T) {
	ctx := newTestContext(t)

	for v := int64(0); v < 1<<testDegree; v++ {
		e := ctx.NewElement(big.NewInt(v))
		require.True(t, ctx.Sqrt(ctx.Square(e)).Equal(e), "sqrt(x^2) != x at %#x", v)
	}
}

func TestTraceProperties(t *testing.T) {
	ctx := newTestContext(t)

	// Trace is GF(2)-valued, linear, and splits the field evenly.
	zeros := 0
	for v := int64(0); v < 1<<testDegree; v++ {
		tr := ctx.Trace(ctx.NewElement(big.NewInt(v)))
		require.LessOrEqual(t, tr, uint(1))
		if tr == 0 {
			zeros++
		}
	}
	require.Equal(t, 1<<(testDegree-1), zeros)

	for v := int64(1); v < 1<<testDegree; v += 13 {
		for w := int64(1); w < 1<<testDegree; w += 17 {
			x := ctx.NewElement(big.NewInt(v))
			y := ctx.NewElement(big.NewInt(w))
			require.Equal(t, ctx.Trace(x)^ctx.Trace(y), ctx.Trace(ctx.Add(x, y)))
		}
	}
}

func TestHalfTraceSolvesQuadratic(t *testing.T) {
	ctx := newTestContext(t)

	for v := int64(0); v < 1<<testDegree; v++ {
		c := ctx.NewElement(big.NewInt(v))
		if ctx.Trace(c) != 0 {
			continue
		}
		z := ctx.HalfTrace(c)
		// z^2 + z must equal c.
		require.True(t, ctx.Add(ctx.Square(z), z).Equal(c), "half-trace failed at %#x", v)
	}
}

func TestSolveForY(t *testing.T) {
	ctx := newTestContext(t)

	solvable := 0
	for v := int64(0); v < 1<<testDegree; v++ {
		x := ctx.NewElement(big.NewInt(v))
		y, ok := ctx.SolveForY(x)
		if !ok {
			continue
		}
		solvable++
		require.True(t, ctx.CheckOnCurve(x, y), "derived point off curve at x=%#x", v)
	}
	// Roughly half of all x values admit a y; x = 0 always does.
	require.Greater(t, solvable, 1<<(testDegree-2))

	y, ok := ctx.SolveForY(ctx.NewElement(big.NewInt(0)))
	require.True(t, ok)
	require.True(t, ctx.CheckOnCurve(ctx.NewElement(big.NewInt(0)), y))
}

func TestCheckOnCurveRejectsOffCurvePair(t *testing.T) {
	ctx := newTestContext(t)

	// (3, 5): y^2 + xy = z^4+z^3+z^2+z while x^3 + x^2 + 1 = z^3+z+1.
	x := ctx.ElementFromBytes([]byte{0x03})
	y := ctx.ElementFromBytes([]byte{0x05})
	require.False(t, ctx.CheckOnCurve(x, y))
}

func TestRandomElement(t *testing.T) {
	ctx := newTestContext(t)

	bound := new(big.Int).Lsh(big.NewInt(1), 64)
	seen := map[int64]bool{}
	for i := 0; i < 64; i++ {
		e, err := ctx.RandomElement(bound)
		require.NoError(t, err)
		require.Less(t, e.BigInt().Int64(), int64(1)<<testDegree)
		seen[e.BigInt().Int64()] = true
	}
	// 64 draws over 128 values collide, but should not collapse to a point.
	require.Greater(t, len(seen), 8)

	_, err := ctx.RandomElement(big.NewInt(0))
	require.Error(t, err)
	_, err = ctx.RandomElement(nil)
	require.Error(t, err)
}

func TestZeroize(t *testing.T) {
	ctx := newTestContext(t)

	e := ctx.ElementFromBytes([]byte{0x55})
	e.Zeroize()
	require.True(t, e.IsZero())
	require.Empty(t, e.Bytes())
}
