package posit

import (
	"testing"

	"github.com/arbfloat/arbfloat/internal/value"
	"github.com/stretchr/testify/require"
)

func p16(f float64) Posit { return Posit16.FromTriple(value.FromFloat64(f)) }

func toF(p Posit) float64 { return p.decode().ToFloat64() }

func TestAddBasic(t *testing.T) {
	sum := Posit16.Add(p16(1), p16(2))
	require.InDelta(t, 3, toF(sum), 1e-3)
}

func TestAddCancelsToZero(t *testing.T) {
	sum := Posit16.Add(p16(5), p16(-5))
	require.True(t, sum.IsZero())
}

func TestAddNaRPropagates(t *testing.T) {
	sum := Posit16.Add(NaR(Posit16), p16(1))
	require.True(t, sum.IsNaR())
}

func TestSubBasic(t *testing.T) {
	diff := Posit16.Sub(p16(5), p16(3))
	require.InDelta(t, 2, toF(diff), 1e-3)
}

func TestMulBasic(t *testing.T) {
	prod := Posit16.Mul(p16(3), p16(4))
	require.InDelta(t, 12, toF(prod), 1e-2)
}

func TestMulByZero(t *testing.T) {
	prod := Posit16.Mul(p16(3), Zero(Posit16))
	require.True(t, prod.IsZero())
}

func TestMulSign(t *testing.T) {
	prod := Posit16.Mul(p16(-3), p16(4))
	require.Less(t, toF(prod), 0.0)
}

func TestDivBasic(t *testing.T) {
	q := Posit16.Div(p16(10), p16(4))
	require.InDelta(t, 2.5, toF(q), 1e-2)
}

func TestDivByZeroIsNaR(t *testing.T) {
	q := Posit16.Div(p16(1), Zero(Posit16))
	require.True(t, q.IsNaR())
}

func TestSqrtBasic(t *testing.T) {
	s := Posit16.Sqrt(p16(4))
	require.InDelta(t, 2, toF(s), 1e-2)
}

func TestSqrtNegativeIsNaR(t *testing.T) {
	s := Posit16.Sqrt(p16(-4))
	require.True(t, s.IsNaR())
}

func TestNegAndAbs(t *testing.T) {
	v := p16(3)
	require.InDelta(t, -3, toF(v.Neg()), 1e-3)
	require.InDelta(t, 3, toF(v.Neg().Abs()), 1e-3)
}

func TestNegZeroIsZero(t *testing.T) {
	require.True(t, Zero(Posit16).Neg().IsZero())
}

func TestNegNaRIsNaR(t *testing.T) {
	require.True(t, NaR(Posit16).Neg().IsNaR())
}

func TestCompareOrdering(t *testing.T) {
	require.True(t, Lt(p16(1), p16(2)))
	require.True(t, Gt(p16(2), p16(1)))
	require.True(t, Eq(p16(2), p16(2)))
	require.True(t, Le(p16(2), p16(2)))
	require.True(t, Ge(p16(3), p16(2)))
}

func TestNaRComparesFalseExceptNe(t *testing.T) {
	require.False(t, Eq(NaR(Posit16), NaR(Posit16)))
	require.False(t, Lt(NaR(Posit16), MinNeg(Posit16)))
	require.False(t, Le(NaR(Posit16), p16(-1000)))
	require.False(t, Gt(p16(1000), NaR(Posit16)))
	require.False(t, Ge(p16(1000), NaR(Posit16)))
	require.True(t, Ne(NaR(Posit16), NaR(Posit16)))
	require.True(t, Ne(NaR(Posit16), p16(1)))
}

func TestCompareRawLatticeOrderingStillSortsNaRLowest(t *testing.T) {
	require.Less(t, Compare(NaR(Posit16), MinNeg(Posit16)), 0)
	require.Less(t, Compare(NaR(Posit16), p16(-1000)), 0)
}
