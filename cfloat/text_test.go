package cfloat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryStringRoundTrip(t *testing.T) {
	c := cf(IEEEBinary16, 3.5)
	s := c.BinaryString()
	back, err := Parse(IEEEBinary16, s)
	require.NoError(t, err)
	require.InDelta(t, toF(c), toF(back), 1e-3)
}

func TestParseSpecials(t *testing.T) {
	nan, err := Parse(IEEEBinary16, "nan")
	require.NoError(t, err)
	require.True(t, nan.IsNaN())

	inf, err := Parse(IEEEBinary16, "inf")
	require.NoError(t, err)
	require.True(t, inf.IsInf())

	ninf, err := Parse(IEEEBinary16, "-inf")
	require.NoError(t, err)
	require.True(t, ninf.IsInf())
	require.True(t, ninf.Sign())
}

func TestParseDecimal(t *testing.T) {
	c, err := Parse(IEEEBinary16, "2.5")
	require.NoError(t, err)
	require.InDelta(t, 2.5, toF(c), 1e-2)
}

func TestStringFormatsSpecials(t *testing.T) {
	require.Equal(t, "nan", QNaN(IEEEBinary16).String())
	require.Equal(t, "snan", SNaN(IEEEBinary16).String())
	require.Equal(t, "inf", PosInf(IEEEBinary16).String())
	require.Equal(t, "-inf", NegInf(IEEEBinary16).String())
}

func TestNamedConstants(t *testing.T) {
	require.True(t, Zero(IEEEBinary16, false).IsZero())
	require.True(t, MaxPos(IEEEBinary16).Sign() == false)
	require.True(t, MaxNeg(IEEEBinary16).Sign())
	require.True(t, MinPos(IEEEBinary16).Sign() == false)
	require.True(t, MinNeg(IEEEBinary16).Sign())
	require.False(t, QNaN(IEEEBinary16).IsSignalingNaN())
	require.True(t, SNaN(IEEEBinary16).IsSignalingNaN())
}
