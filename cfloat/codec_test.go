package cfloat

import (
	"math"
	"testing"

	"github.com/arbfloat/arbfloat/internal/value"
	"github.com/stretchr/testify/require"
)

func cf(cfg Config, f float64) Cfloat { return cfg.FromTriple(value.FromFloat64(f)) }

func toF(c Cfloat) float64 { return c.decode().ToFloat64() }

func TestZeroRoundTrip(t *testing.T) {
	z := cf(IEEEBinary16, 0)
	require.True(t, z.IsZero())
}

func TestSpecialsIEEE16(t *testing.T) {
	inf := cf(IEEEBinary16, math.Inf(1))
	require.True(t, inf.IsInf())
	require.False(t, inf.Sign())

	ninf := cf(IEEEBinary16, math.Inf(-1))
	require.True(t, ninf.IsInf())
	require.True(t, ninf.Sign())

	nan := cf(IEEEBinary16, math.NaN())
	require.True(t, nan.IsNaN())
}

func TestNormalRoundTrip(t *testing.T) {
	for _, f := range []float64{1, -1, 2.5, 0.125, 100, -100} {
		c := cf(IEEEBinary16, f)
		require.InDeltaf(t, f, toF(c), 1e-2, "roundtrip of %v", f)
	}
}

func TestSubnormalRoundTrip(t *testing.T) {
	tiny := math.Ldexp(1, -20) // below binary16 normal range
	c := cf(IEEEBinary16, tiny)
	require.False(t, c.IsZero())
	require.InDelta(t, tiny, toF(c), tiny*0.2)
}

func TestSubnormalFlushedToZeroWithoutSupport(t *testing.T) {
	noSub := Config{N: 16, ES: 5, HasSubnormals: false}
	tiny := math.Ldexp(1, -20)
	c := cf(noSub, tiny)
	require.True(t, c.IsZero())
}

func TestOverflowProducesInfinity(t *testing.T) {
	c := cf(IEEEBinary16, 1e10)
	require.True(t, c.IsInf())
}

func TestSaturatingConfigNeverOverflowsToInf(t *testing.T) {
	c := cf(FP8E4M3, 1e10)
	require.False(t, c.IsInf())
	require.False(t, c.IsNaN())
}

func TestSignedZeroPreservesSign(t *testing.T) {
	negZero := cf(IEEEBinary16, math.Copysign(0, -1))
	require.True(t, negZero.IsZero())
	require.True(t, negZero.Sign())
}
