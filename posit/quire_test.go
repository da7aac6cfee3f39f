package posit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuireAddValue(t *testing.T) {
	qc := NewQuireConfig(Posit16)
	q := NewQuire(qc)
	q = q.AddValue(p16(1)).AddValue(p16(2)).AddValue(p16(3))
	result := q.ToPosit(Posit16)
	require.InDelta(t, 6, toF(result), 1e-2)
}

func TestQuireSubValue(t *testing.T) {
	qc := NewQuireConfig(Posit16)
	q := NewQuire(qc).AddValue(p16(5)).SubValue(p16(3))
	require.InDelta(t, 2, toF(q.ToPosit(Posit16)), 1e-2)
}

func TestQuireFMA(t *testing.T) {
	qc := NewQuireConfig(Posit16)
	q := NewQuire(qc).FMA(p16(2), p16(3)).FMA(p16(4), p16(5))
	require.InDelta(t, 26, toF(q.ToPosit(Posit16)), 1e-1)
}

func TestQuireFDP(t *testing.T) {
	qc := NewQuireConfig(Posit16)
	as := []Posit{p16(1), p16(2), p16(3)}
	bs := []Posit{p16(4), p16(5), p16(6)}
	q := NewQuire(qc).FDP(as, bs)
	require.InDelta(t, 32, toF(q.ToPosit(Posit16)), 1e-1) // 1*4+2*5+3*6
}

func TestQuireNaRPoisons(t *testing.T) {
	qc := NewQuireConfig(Posit16)
	q := NewQuire(qc).AddValue(p16(1)).AddValue(NaR(Posit16))
	require.True(t, q.IsNaR())
	require.True(t, q.ToPosit(Posit16).IsNaR())
}

func TestQuireClear(t *testing.T) {
	qc := NewQuireConfig(Posit16)
	q := NewQuire(qc).AddValue(p16(5)).Clear()
	require.True(t, q.ToPosit(Posit16).IsZero())
}

func TestQuireCancelsToZero(t *testing.T) {
	qc := NewQuireConfig(Posit16)
	q := NewQuire(qc).AddValue(p16(4)).SubValue(p16(4))
	require.True(t, q.ToPosit(Posit16).IsZero())
}
