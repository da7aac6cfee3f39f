package ieeeref

import (
	"math"
	"strconv"
	"testing"

	"github.com/arbfloat/arbfloat/cfloat"
	"github.com/arbfloat/arbfloat/internal/value"
	"github.com/stretchr/testify/require"
)

func TestClassifyMatchesSpecialValues(t *testing.T) {
	require.Equal(t, "zero", Classify(0x0000))
	require.Equal(t, "inf", Classify(0x7C00))
	require.Equal(t, "nan", Classify(0x7E00))
	require.Equal(t, "subnormal", Classify(0x0001))
	require.Equal(t, "normal", Classify(0x3C00))
}

func TestRoundTripAgreesWithReference(t *testing.T) {
	for _, f := range []float64{1, -1, 2.5, 100, -100, 0.125} {
		require.True(t, RoundTrips(f, 0.05), "reference round-trip of %v", f)
	}
}

func TestCfloatAgreesWithReferenceOnNormalValues(t *testing.T) {
	for _, f := range []float64{1, -1, 2.5, 100, -100, 0.125, 1234.5} {
		c := cfloat.IEEEBinary16.FromTriple(value.FromFloat64(f))
		want := Decode(Encode(f))
		got, err := strconv.ParseFloat(c.String(), 64)
		require.NoError(t, err)
		require.InDeltaf(t, want, got, math.Abs(want)*0.02+1e-6, "cfloat vs reference for %v", f)
	}
}
