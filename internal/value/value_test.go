package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromUint64(t *testing.T) {
	tr := FromUint64(0b1011, false)
	require.Equal(t, int32(3), tr.Scale)
	require.Equal(t, 3, tr.FBits)
	require.Equal(t, uint64(0b1011), tr.Significand.Uint64())
}

func TestFromUint64Zero(t *testing.T) {
	tr := FromUint64(0, true)
	require.True(t, tr.IsZero)
	require.True(t, tr.Sign)
}

func TestFromInt64Negative(t *testing.T) {
	tr := FromInt64(-8)
	require.True(t, tr.Sign)
	require.Equal(t, int32(3), tr.Scale)
}

func TestFromFloat64Normal(t *testing.T) {
	tr := FromFloat64(1.5)
	require.False(t, tr.Sign)
	require.Equal(t, int32(0), tr.Scale)
	require.InDelta(t, 1.5, tr.ToFloat64(), 1e-12)
}

func TestFromFloat64Subnormal(t *testing.T) {
	tiny := math.Float64frombits(1) // smallest positive subnormal float64
	tr := FromFloat64(tiny)
	require.False(t, tr.IsZero)
	require.Equal(t, int32(-1074), tr.Scale)
	require.InDelta(t, tiny, tr.ToFloat64(), tiny/1e9)
}

func TestFromFloat64Specials(t *testing.T) {
	require.True(t, FromFloat64(0).IsZero)
	require.True(t, FromFloat64(math.Inf(1)).IsInf)
	require.True(t, FromFloat64(math.NaN()).IsNaN)
}

func TestRightExtend(t *testing.T) {
	tr := FromUint64(0b101, false) // fbits=2, value 1.01 * 2^2
	before := tr.ToFloat64()
	widened := tr.RightExtend(6)
	require.Equal(t, 6, widened.FBits)
	require.InDelta(t, before, widened.ToFloat64(), 1e-12)
}

func TestWithContextWidensSignificand(t *testing.T) {
	tr := FromUint64(0b101, false)
	mulTriple := tr.WithContext(MUL)
	require.Equal(t, MUL.Width(tr.FBits), mulTriple.Significand.Width())
	require.InDelta(t, tr.ToFloat64(), mulTriple.ToFloat64(), 1e-9)
}

func TestNegPreservesSpecialFlags(t *testing.T) {
	inf := Inf(false)
	negInf := inf.Neg()
	require.True(t, negInf.IsInf)
	require.True(t, negInf.Sign)
}
