package posit

import (
	"math"

	"github.com/arbfloat/arbfloat/bitblock"
	"github.com/arbfloat/arbfloat/internal/value"
)

// Neg returns the arithmetic negation of p: the two's complement of its raw
// bits. This single operation correctly negates Zero (0 -> 0), NaR (NaR ->
// NaR, since negating the sentinel must leave it a sentinel) and every
// ordinary value, with no special-casing needed.
func (p Posit) Neg() Posit {
	return Posit{cfg: p.cfg, bits: p.bits.TwosComplement()}
}

// Abs returns the absolute value of p.
func (p Posit) Abs() Posit {
	if p.Sign() {
		return p.Neg()
	}
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Add returns a+b, rounded to cfg.
func (cfg Config) Add(a, b Posit) Posit {
	ta, tb := a.decode(), b.decode()
	if ta.IsNaN || tb.IsNaN {
		return NaR(cfg)
	}
	if ta.IsZero {
		return cfg.FromTriple(tb)
	}
	if tb.IsZero {
		return cfg.FromTriple(ta)
	}

	fbits := maxInt(ta.FBits, tb.FBits)
	ta = ta.RightExtend(fbits).WithContext(value.ADD)
	tb = tb.RightExtend(fbits).WithContext(value.ADD)

	sum := addAligned(ta, tb)
	return cfg.FromTriple(sum)
}

// Sub returns a-b, rounded to cfg.
func (cfg Config) Sub(a, b Posit) Posit { return cfg.Add(a, b.Neg()) }

// addAligned sums two same-width, same-Ctx triples, aligning their scales
// first. Overflow into a new carry bit renormalizes by one exponent step;
// unlike subtraction's cancellation, addition of same-signed operands can
// only ever carry, never need a left shift.
func addAligned(ta, tb value.Triple) value.Triple {
	if ta.Scale < tb.Scale {
		ta, tb = tb, ta
	}
	wide := ta.Significand.Width()
	diff := int(ta.Scale - tb.Scale)

	bSig := tb.Significand
	switch {
	case diff >= wide:
		bSig = bitblock.New(wide)
		if !tb.Significand.IsZero() {
			bSig.Set(0, true)
		}
	case diff > 0:
		sticky := bSig.AnyAfter(diff - 1)
		bSig = bSig.Shr(diff)
		if sticky {
			bSig.Set(0, true)
		}
	}

	if ta.Sign == tb.Sign {
		sum, carry := ta.Significand.Add(bSig)
		scale := ta.Scale
		if carry {
			dropped := sum.Test(0)
			sum = sum.Shr(1)
			sum.Set(wide-1, true)
			if dropped {
				sum.Set(0, true)
			}
			scale++
		}
		return value.Triple{Sign: ta.Sign, Scale: scale, Significand: sum, FBits: ta.FBits, Ctx: value.ADD}
	}

	var diffSig bitblock.Block
	var sign bool
	switch {
	case ta.Significand.Less(bSig):
		diffSig, _ = bSig.Sub(ta.Significand)
		sign = tb.Sign
	case bSig.Less(ta.Significand):
		diffSig, _ = ta.Significand.Sub(bSig)
		sign = ta.Sign
	default:
		return value.Zero(false)
	}
	if diffSig.IsZero() {
		return value.Zero(false)
	}
	shift := wide - 1 - diffSig.Msb()
	return value.Triple{
		Sign:        sign,
		Scale:       ta.Scale - int32(shift),
		Significand: diffSig.Shl(shift),
		FBits:       ta.FBits,
		Ctx:         value.ADD,
	}
}

// Mul returns a*b, rounded to cfg. Multiplying two exact (fbits+1)-bit
// significands produces an exact 2*(fbits+1)-bit product, so the kernel
// itself never rounds; only the final posit encode, which has to fit that
// wide exact value into N bits, does.
func (cfg Config) Mul(a, b Posit) Posit {
	ta, tb := a.decode(), b.decode()
	if ta.IsNaN || tb.IsNaN {
		return NaR(cfg)
	}
	if ta.IsZero || tb.IsZero {
		return Zero(cfg)
	}

	fbits := maxInt(ta.FBits, tb.FBits)
	ta = ta.RightExtend(fbits)
	tb = tb.RightExtend(fbits)

	raw := ta.Significand.Mul(tb.Significand)
	topIdx := raw.Width() - 1
	scale := ta.Scale + tb.Scale

	if raw.Test(topIdx) {
		scale++
	} else {
		raw = raw.Shl(1)
	}

	return cfg.FromTriple(value.Triple{
		Sign:        ta.Sign != tb.Sign,
		Scale:       scale,
		Significand: raw,
		FBits:       raw.Width() - 1,
		Ctx:         value.MUL,
	})
}

// Div returns a/b, rounded to cfg. b == 0 produces NaR: posits have no
// signed infinity to distinguish 1/0 from -1/0.
func (cfg Config) Div(a, b Posit) Posit {
	ta, tb := a.decode(), b.decode()
	if ta.IsNaN || tb.IsNaN || tb.IsZero {
		return NaR(cfg)
	}
	if ta.IsZero {
		return Zero(cfg)
	}

	fbits := maxInt(ta.FBits, tb.FBits)
	ta = ta.RightExtend(fbits)
	tb = tb.RightExtend(fbits)

	qWidth := value.DIV.Width(fbits)
	numerator := bitblock.New(qWidth)
	bitblock.CopyInto(ta.Significand, qWidth-ta.Significand.Width(), &numerator)
	// The numerator is left-justified and the denominator is not, so the
	// quotient holds a/b scaled by 2^(qWidth-fbits-1).
	denominator := bitblock.New(qWidth)
	bitblock.CopyInto(tb.Significand, 0, &denominator)

	quotient, remainder, err := numerator.DivMod(denominator)
	if err != nil {
		return NaR(cfg)
	}
	if quotient.IsZero() {
		return Zero(cfg)
	}

	topIdx := qWidth - 1
	shift := topIdx - quotient.Msb()
	normalized := quotient.Shl(shift)
	if !remainder.IsZero() {
		normalized.Set(0, true)
	}

	return cfg.FromTriple(value.Triple{
		Sign:        ta.Sign != tb.Sign,
		Scale:       ta.Scale - tb.Scale + int32(fbits) - int32(shift),
		Significand: normalized,
		FBits:       qWidth - 1,
		Ctx:         value.DIV,
	})
}

// Sqrt returns the square root of p, rounded to cfg. Decodes to float64,
// calls math.Sqrt and re-encodes; posit configurations wide enough to
// exceed float64 precision are out of scope.
func (cfg Config) Sqrt(p Posit) Posit {
	if p.Sign() && !p.IsZero() {
		return NaR(cfg)
	}
	f := p.decode().ToFloat64()
	return cfg.FromTriple(value.FromFloat64(math.Sqrt(f)))
}

// signedInt interprets p's raw bits as a two's-complement signed integer.
// Posits are designed so that this integer ordering matches real-number
// ordering exactly, NaR included (its all-but-sign-bit-zero pattern is the
// most negative value representable, sorting below every real). Only valid
// for configurations with N <= 64.
func (p Posit) signedInt() int64 {
	u := p.bits.Uint64()
	if p.cfg.N < 64 && p.bits.Test(p.cfg.N-1) {
		u |= ^uint64(0) << uint(p.cfg.N)
	}
	return int64(u)
}

// Compare returns -1, 0 or 1 as a < b, a == b or a > b, using the direct
// two's-complement integer ordering of their raw encodings, NaR included
// (it sorts below every other value). This is the raw lattice order used
// internally by Enumerate and the bit-lattice walk, not a NaR-aware
// comparison; the public Eq/Ne/Lt/Le/Gt/Ge operators below guard against
// NaR themselves and should be used for anything but lattice ordering.
func Compare(a, b Posit) int {
	av, bv := a.signedInt(), b.signedInt()
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

// Eq reports whether a equals b. False whenever either operand is NaR,
// NaR included against itself.
func Eq(a, b Posit) bool {
	if a.IsNaR() || b.IsNaR() {
		return false
	}
	return Compare(a, b) == 0
}

// Ne reports whether a and b differ. True whenever either operand is NaR,
// the one comparison NaR participates in meaningfully.
func Ne(a, b Posit) bool { return !Eq(a, b) }

// Lt reports whether a < b. False whenever either operand is NaR.
func Lt(a, b Posit) bool {
	if a.IsNaR() || b.IsNaR() {
		return false
	}
	return Compare(a, b) < 0
}

// Le reports whether a <= b. False whenever either operand is NaR.
func Le(a, b Posit) bool {
	if a.IsNaR() || b.IsNaR() {
		return false
	}
	return Compare(a, b) <= 0
}

// Gt reports whether a > b. False whenever either operand is NaR.
func Gt(a, b Posit) bool {
	if a.IsNaR() || b.IsNaR() {
		return false
	}
	return Compare(a, b) > 0
}

// Ge reports whether a >= b. False whenever either operand is NaR.
func Ge(a, b Posit) bool {
	if a.IsNaR() || b.IsNaR() {
		return false
	}
	return Compare(a, b) >= 0
}
