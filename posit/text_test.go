package posit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringNaR(t *testing.T) {
	require.Equal(t, "nar", NaR(Posit16).String())
}

func TestStringRoundTripsThroughParse(t *testing.T) {
	p := p16(3.5)
	s := p.String()
	back, err := Parse(Posit16, s)
	require.NoError(t, err)
	require.True(t, Eq(p, back))
}

func TestParseDecimalLiteral(t *testing.T) {
	p, err := Parse(Posit16, "2.5")
	require.NoError(t, err)
	require.InDelta(t, 2.5, toF(p), 1e-3)
}

func TestParseNaR(t *testing.T) {
	p, err := Parse(Posit16, "nar")
	require.NoError(t, err)
	require.True(t, p.IsNaR())
}

func TestParseRejectsMismatchedConfig(t *testing.T) {
	_, err := Parse(Posit16, "8.0x01p")
	require.Error(t, err)
}
