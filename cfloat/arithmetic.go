package cfloat

import (
	"math"

	"github.com/arbfloat/arbfloat/bitblock"
	"github.com/arbfloat/arbfloat/internal/value"
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// nanResult combines the NaN-ness of one or more decoded operands into a
// result triple: an sNaN operand infects the result, matching IEEE-754
// propagation (a signaling NaN input always signals).
func nanResult(ts ...value.Triple) value.Triple {
	for _, t := range ts {
		if t.IsNaN && t.Signaling {
			return value.SignalingNaN()
		}
	}
	return value.NaN()
}

// Add returns a+b, rounded to cfg.
func (cfg Config) Add(a, b Cfloat) Cfloat {
	ta, tb := a.decode(), b.decode()
	if ta.IsNaN || tb.IsNaN {
		return cfg.FromTriple(nanResult(ta, tb))
	}
	if ta.IsInf || tb.IsInf {
		if ta.IsInf && tb.IsInf && ta.Sign != tb.Sign {
			// Inf + (-Inf): an invalid operation, which this package
			// always reports as a signaling NaN.
			return cfg.FromTriple(value.SignalingNaN())
		}
		if ta.IsInf {
			return cfg.FromTriple(ta)
		}
		return cfg.FromTriple(tb)
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
	return cfg.FromTriple(addAligned(ta, tb))
}

// Sub returns a-b, rounded to cfg.
func (cfg Config) Sub(a, b Cfloat) Cfloat { return cfg.Add(a, b.Neg()) }

// Neg returns the negation of c: its sign bit flipped. NaN's sign is
// conventionally meaningless but is flipped too, matching IEEE-754 bit
// twiddling of NaN payloads.
func (c Cfloat) Neg() Cfloat {
	out := c.bits.Clone()
	out.Set(c.cfg.N-1, !out.Test(c.cfg.N-1))
	return Cfloat{cfg: c.cfg, bits: out}
}

// Abs returns the absolute value of c.
func (c Cfloat) Abs() Cfloat {
	out := c.bits.Clone()
	out.Set(c.cfg.N-1, false)
	return Cfloat{cfg: c.cfg, bits: out}
}

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

// Mul returns a*b, rounded to cfg.
func (cfg Config) Mul(a, b Cfloat) Cfloat {
	ta, tb := a.decode(), b.decode()
	if ta.IsNaN || tb.IsNaN {
		return cfg.FromTriple(nanResult(ta, tb))
	}
	if (ta.IsZero && tb.IsInf) || (ta.IsInf && tb.IsZero) {
		return cfg.FromTriple(value.NaN())
	}
	if ta.IsInf || tb.IsInf {
		return cfg.FromTriple(value.Inf(ta.Sign != tb.Sign))
	}
	if ta.IsZero || tb.IsZero {
		return cfg.FromTriple(value.Zero(ta.Sign != tb.Sign))
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

// Div returns a/b, rounded to cfg.
func (cfg Config) Div(a, b Cfloat) Cfloat {
	ta, tb := a.decode(), b.decode()
	if ta.IsNaN || tb.IsNaN {
		return cfg.FromTriple(nanResult(ta, tb))
	}
	if tb.IsZero {
		if ta.IsZero {
			return cfg.FromTriple(value.NaN())
		}
		return cfg.FromTriple(value.Inf(ta.Sign != tb.Sign))
	}
	if ta.IsInf && tb.IsInf {
		return cfg.FromTriple(value.NaN())
	}
	if ta.IsInf {
		return cfg.FromTriple(value.Inf(ta.Sign != tb.Sign))
	}
	if tb.IsInf || ta.IsZero {
		return cfg.FromTriple(value.Zero(ta.Sign != tb.Sign))
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
		return cfg.FromTriple(value.NaN())
	}
	if quotient.IsZero() {
		return cfg.FromTriple(value.Zero(ta.Sign != tb.Sign))
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

// Sqrt returns the square root of c, rounded to cfg, bridging through
// float64: decode, math.Sqrt, re-encode.
func (cfg Config) Sqrt(c Cfloat) Cfloat {
	tr := c.decode()
	if tr.IsNaN {
		return cfg.FromTriple(nanResult(tr))
	}
	if tr.Sign && !tr.IsZero {
		return cfg.FromTriple(value.NaN())
	}
	return cfg.FromTriple(value.FromFloat64(math.Sqrt(tr.ToFloat64())))
}

// Compare returns -1, 0 or 1 as a < b, a == b or a > b, and ok=false if
// either operand is NaN (comparisons against NaN are unordered, matching
// IEEE-754).
func Compare(a, b Cfloat) (cmp int, ok bool) {
	if a.IsNaN() || b.IsNaN() {
		return 0, false
	}
	fa, fb := a.decode().ToFloat64(), b.decode().ToFloat64()
	switch {
	case fa < fb:
		return -1, true
	case fa > fb:
		return 1, true
	default:
		return 0, true
	}
}
