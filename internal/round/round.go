// Package round implements the library's single rounding primitive: given a
// wide bit-block and a shift amount, it assembles the guard, round and
// sticky bits and produces a round-to-nearest-even reduction. Every posit
// and cfloat encoder funnels its final truncation through this package —
// it is the only place in the library that discards information.
package round

import "github.com/arbfloat/arbfloat/bitblock"

// Round reduces wide by discarding its low n bits under round-to-nearest-even,
// returning a block of width wide.Width()-n. If rounding up overflows that
// narrower width (the classic "all ones" case), the result is renormalized
// to have only its top bit set and carry reports that the caller must add
// one to its exponent.
//
// n == 0 is a no-op: the full value is already exact at the target width.
func Round(wide bitblock.Block, n int) (result bitblock.Block, carry bool) {
	if n == 0 {
		return wide.Clone(), false
	}
	if n < 0 || n > wide.Width() {
		panic("round: shift out of range")
	}

	targetWidth := wide.Width() - n
	kept := bitblock.Truncate(wide.Shr(n), targetWidth)

	l, g, r, s := grs(wide, n)
	if !(g && (l || r || s)) {
		return kept, false
	}

	incremented, overflowed := kept.Add(bitblock.FromUint64(targetWidth, 1))
	if !overflowed {
		return incremented, false
	}
	// All-ones rolled over to zero: the true renormalized value is the
	// hidden bit alone, one exponent step up.
	renormalized := bitblock.New(targetWidth)
	renormalized.Set(targetWidth-1, true)
	return renormalized, true
}

// StickyFrom reports the OR-reduction of all bits of wide at or below index
// n-1 — the sticky bit a shift-right-by-n would otherwise discard, exposed
// separately for callers (like the quire) that need it without performing
// the shift themselves.
func StickyFrom(wide bitblock.Block, n int) bool {
	if n <= 0 {
		return false
	}
	return wide.AnyAfter(n - 1)
}

// grs reads the guard/round/sticky bits for a right-shift-by-n reduction of
// wide, shared by both carry policies below.
func grs(wide bitblock.Block, n int) (l, g, r, s bool) {
	l = wide.Test(n)
	g = n-1 >= 0 && wide.Test(n-1)
	r = n-2 >= 0 && wide.Test(n-2)
	s = n-3 >= 0 && wide.AnyAfter(n-3)
	return
}

// IntegerSaturate reduces wide by discarding its low n bits under
// round-to-nearest-even, treating the kept bits as a flat unsigned integer
// (not a hidden-bit significand): on overflow it saturates to all-ones
// instead of renormalizing to a single top bit. This is the truncation
// policy the posit codec needs for its regime/exponent/fraction bit
// pattern, where "the result saturates to maxpos" is the correct overflow
// behavior rather than an exponent bump.
func IntegerSaturate(wide bitblock.Block, n int) bitblock.Block {
	targetWidth := wide.Width() - n
	if n <= 0 {
		return bitblock.Truncate(wide, targetWidth)
	}
	kept := bitblock.Truncate(wide.Shr(n), targetWidth)
	l, g, r, s := grs(wide, n)
	if !(g && (l || r || s)) {
		return kept
	}
	incremented, overflowed := kept.Add(bitblock.FromUint64(targetWidth, 1))
	if !overflowed {
		return incremented
	}
	allOnes := bitblock.New(targetWidth)
	for i := 0; i < targetWidth; i++ {
		allOnes.Set(i, true)
	}
	return allOnes
}
