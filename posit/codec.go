package posit

import (
	"github.com/arbfloat/arbfloat/bitblock"
	"github.com/arbfloat/arbfloat/internal/round"
	"github.com/arbfloat/arbfloat/internal/value"
)

// Posit is a single value of a fixed (N, ES) configuration, stored as its
// raw N-bit two's-complement encoding.
type Posit struct {
	cfg  Config
	bits bitblock.Block
}

// Config returns p's configuration.
func (p Posit) Config() Config { return p.cfg }

// Bits returns a copy of p's raw encoding.
func (p Posit) Bits() bitblock.Block { return p.bits.Clone() }

// New builds a Posit from a raw encoding. Panics if raw's width doesn't
// match cfg.N.
func New(cfg Config, raw bitblock.Block) Posit {
	if raw.Width() != cfg.N {
		panic("posit: raw width does not match configuration")
	}
	return Posit{cfg: cfg, bits: raw}
}

// Zero returns the unique zero encoding for cfg.
func Zero(cfg Config) Posit { return Posit{cfg: cfg, bits: bitblock.New(cfg.N)} }

// NaR returns the Not-a-Real encoding for cfg: sign bit set, all else clear.
func NaR(cfg Config) Posit {
	bits := bitblock.New(cfg.N)
	bits.Set(cfg.N-1, true)
	return Posit{cfg: cfg, bits: bits}
}

// IsZero reports whether p is the zero encoding.
func (p Posit) IsZero() bool { return p.bits.IsZero() }

// IsNaR reports whether p is the Not-a-Real encoding.
func (p Posit) IsNaR() bool {
	if !p.bits.Test(p.cfg.N - 1) {
		return false
	}
	for i := 0; i < p.cfg.N-1; i++ {
		if p.bits.Test(i) {
			return false
		}
	}
	return true
}

// Sign reports whether p's raw two's-complement encoding has its sign bit
// set. Meaningless for Zero (which has no sign) and NaR.
func (p Posit) Sign() bool { return p.bits.Test(p.cfg.N - 1) }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func floorDiv(a, b int32) int32 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// decode expands p into the library's normalized triple, per spec section
// 4.3: scan the regime run starting just below the sign bit, take up to ES
// exponent bits from whatever remains, and the rest is fraction.
func (p Posit) decode() value.Triple {
	if p.IsZero() {
		return value.Zero(false)
	}
	if p.IsNaR() {
		return value.NaN()
	}

	sign := p.Sign()
	u := p.bits.Clone()
	if sign {
		u = u.TwosComplement()
	}

	availWidth := p.cfg.N - 1
	esPow := int32(1) << uint(p.cfg.ES)

	pos := availWidth - 1
	runBit := u.Test(pos)
	m := 0
	for pos >= 0 && u.Test(pos) == runBit {
		m++
		pos--
	}
	hasTerminator := pos >= 0
	consumed := m
	if hasTerminator {
		consumed++
		pos--
	}

	var k int32
	if runBit {
		k = int32(m - 1)
	} else {
		k = -int32(m)
	}

	remaining := availWidth - consumed
	exponentBitsAvail := minInt(p.cfg.ES, remaining)
	fractionBitsAvail := remaining - exponentBitsAvail

	var eVal uint64
	for i := 0; i < exponentBitsAvail; i++ {
		if u.Test(pos) {
			eVal |= uint64(1) << uint(p.cfg.ES-1-i)
		}
		pos--
	}

	frac := bitblock.New(fractionBitsAvail)
	for i := 0; i < fractionBitsAvail; i++ {
		frac.Set(fractionBitsAvail-1-i, u.Test(pos))
		pos--
	}

	scale := k*esPow + int32(eVal)

	sig := bitblock.New(fractionBitsAvail + 1)
	sig.Set(fractionBitsAvail, true)
	bitblock.CopyInto(frac, 0, &sig)

	return value.Triple{
		Sign:        sign,
		Scale:       scale,
		Significand: sig,
		FBits:       fractionBitsAvail,
		Ctx:         value.REP,
	}
}

// encode packs a normalized triple into an N-bit posit of configuration
// cfg, per spec section 4.3: clamp the scale to the configuration's
// regime/exponent range, build the left-justified regime+exponent+fraction
// bit pattern, and round it to N-1 bits with saturation at the lattice
// boundary.
func (cfg Config) encode(tr value.Triple) Posit {
	if tr.IsZero {
		return Zero(cfg)
	}
	if tr.IsInf || tr.IsNaN {
		return NaR(cfg)
	}

	s := tr.Scale
	if s < cfg.minScale() {
		s = cfg.minScale()
	}
	if s > cfg.maxScale() {
		s = cfg.maxScale()
	}

	esPow := int32(1) << uint(cfg.ES)
	k := floorDiv(s, esPow)
	e := s - k*esPow

	availWidth := cfg.N - 1
	var idealLen int
	var runBit bool
	if k >= 0 {
		runBit = true
		idealLen = int(k) + 2
	} else {
		runBit = false
		idealLen = int(-k) + 1
	}

	regimeConsumed := idealLen
	hasTerminator := true
	if idealLen > availWidth {
		regimeConsumed = availWidth
		hasTerminator = false
	}

	scratchWidth := regimeConsumed + cfg.ES + tr.FBits
	scratch := bitblock.New(scratchWidth)
	pos := scratchWidth - 1

	if hasTerminator {
		runLen := regimeConsumed - 1
		for i := 0; i < runLen; i++ {
			scratch.Set(pos, runBit)
			pos--
		}
		scratch.Set(pos, !runBit)
		pos--
	} else {
		for i := 0; i < regimeConsumed; i++ {
			scratch.Set(pos, runBit)
			pos--
		}
	}

	for i := 0; i < cfg.ES; i++ {
		bitVal := (e>>uint(cfg.ES-1-i))&1 != 0
		scratch.Set(pos, bitVal)
		pos--
	}

	frac := tr.Fraction()
	for i := 0; i < tr.FBits; i++ {
		scratch.Set(pos, frac.Test(tr.FBits-1-i))
		pos--
	}

	var kept bitblock.Block
	if scratchWidth <= availWidth {
		kept = bitblock.New(availWidth)
		bitblock.CopyInto(scratch, availWidth-scratchWidth, &kept)
	} else {
		kept = round.IntegerSaturate(scratch, scratchWidth-availWidth)
	}

	raw := bitblock.New(cfg.N)
	bitblock.CopyInto(kept, 0, &raw)
	if tr.Sign {
		raw = raw.TwosComplement()
	}
	return Posit{cfg: cfg, bits: raw}
}

// FromTriple encodes a normalized triple as a posit of configuration cfg.
func (cfg Config) FromTriple(tr value.Triple) Posit { return cfg.encode(tr) }
