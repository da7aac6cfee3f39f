package round

import (
	"testing"

	"github.com/arbfloat/arbfloat/bitblock"
	"github.com/stretchr/testify/require"
)

func TestRoundNoOp(t *testing.T) {
	wide := bitblock.FromUint64(8, 0b1011_0110)
	got, carry := Round(wide, 0)
	require.False(t, carry)
	require.Equal(t, uint64(0b1011_0110), got.Uint64())
}

func TestRoundDownWhenGuardClear(t *testing.T) {
	// discard 4 bits: 1011|0110 -> guard bit (bit3) = 0, round down
	wide := bitblock.FromUint64(8, 0b1011_0110)
	got, carry := Round(wide, 4)
	require.False(t, carry)
	require.Equal(t, uint64(0b1011), got.Uint64())
}

func TestRoundUpWhenGuardSetAndSticky(t *testing.T) {
	// discard 4 bits: 1011|1010 -> guard=1, round/sticky bits nonzero -> round up
	wide := bitblock.FromUint64(8, 0b1011_1010)
	got, carry := Round(wide, 4)
	require.False(t, carry)
	require.Equal(t, uint64(0b1100), got.Uint64())
}

func TestRoundTiesToEven(t *testing.T) {
	// discard 4 bits: 1011|1000 -> guard=1, rest=0 (exact tie): round to even LSB
	// kept=1011 (odd) -> rounds up to 1100
	wide := bitblock.FromUint64(8, 0b1011_1000)
	got, _ := Round(wide, 4)
	require.Equal(t, uint64(0b1100), got.Uint64())

	// kept=1010 (even) -> stays at 1010
	wide2 := bitblock.FromUint64(8, 0b1010_1000)
	got2, _ := Round(wide2, 4)
	require.Equal(t, uint64(0b1010), got2.Uint64())
}

func TestRoundOverflowRenormalizes(t *testing.T) {
	// discard 4 bits: 1111|1000 -> rounds up from 1111 to 10000 which overflows 4 bits
	wide := bitblock.FromUint64(8, 0b1111_1000)
	got, carry := Round(wide, 4)
	require.True(t, carry)
	require.Equal(t, uint64(0b1000), got.Uint64()) // renormalized: top bit only
}

func TestStickyFrom(t *testing.T) {
	wide := bitblock.FromUint64(8, 0b0000_0100)
	require.True(t, StickyFrom(wide, 3))
	require.False(t, StickyFrom(wide, 2))
}
