package curve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coinbase/ecf2m-go/pkg/ecf2m/curve"
)

func TestCurveParameters(t *testing.T) {
	cases := []struct {
		c      curve.Curve
		name   string
		degree int
		size   int
	}{
		{curve.K163, "K-163", 163, 21},
		{curve.B163, "B-163", 163, 21},
		{curve.K233, "K-233", 233, 30},
		{curve.B233, "B-233", 233, 30},
		{curve.K283, "K-283", 283, 36},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, tc.c.Known())
			require.Equal(t, tc.name, tc.c.String())
			require.Equal(t, tc.degree, tc.c.FieldDegree())
			require.Equal(t, tc.size, tc.c.CoordinateSize())

			f := tc.c.ReductionPolynomial()
			require.NotNil(t, f)
			require.Equal(t, tc.degree+1, f.BitLen(), "reduction polynomial degree")

			require.NotNil(t, tc.c.A())
			require.NotZero(t, tc.c.B().Sign(), "b must be nonzero")

			gx, gy := tc.c.Generator()
			require.NotNil(t, gx)
			require.NotNil(t, gy)
			require.Less(t, gx.BitLen(), tc.degree+1)
			require.Less(t, gy.BitLen(), tc.degree+1)

			require.Positive(t, tc.c.Order().Sign())
			require.Contains(t, []int{2, 4}, tc.c.Cofactor())
		})
	}
}

func TestUnknownCurve(t *testing.T) {
	var c curve.Curve
	require.False(t, c.Known())
	require.Equal(t, "Unknown", c.String())
	require.Zero(t, c.FieldDegree())
	require.Nil(t, c.ReductionPolynomial())
	require.Zero(t, c.Cofactor())
}

func TestAllListsEveryCurve(t *testing.T) {
	all := curve.All()
	require.Len(t, all, 5)
	for _, c := range all {
		require.True(t, c.Known())
	}
}
