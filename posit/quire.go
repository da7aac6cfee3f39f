package posit

import (
	"github.com/arbfloat/arbfloat/bitblock"
	"github.com/arbfloat/arbfloat/internal/value"
)

// QuireConfig sizes the wide fixed-point accumulator a posit Config needs
// to hold the exact sum of a long, unrounded sequence of products without
// itself ever rounding: LowerBits of fraction, UpperBits of integer part,
// and CapacityBits of extra headroom above the integer part so that many
// additions can overflow into it before the accumulation as a whole
// overflows.
type QuireConfig struct {
	Posit        Config
	LowerBits    int
	UpperBits    int
	CapacityBits int
}

// NewQuireConfig derives the quire sizing for cfg. The segment widths grow
// with both N and useed, matching how a posit's own dynamic range grows:
// a wider regime field demands more quire headroom to stay exact.
func NewQuireConfig(cfg Config) QuireConfig {
	esPow := 1 << uint(cfg.ES)
	half := 2 * (cfg.N - 2) * esPow
	if half < 8 {
		half = 8
	}
	return QuireConfig{Posit: cfg, LowerBits: half, UpperBits: half, CapacityBits: 30}
}

func (qc QuireConfig) magWidth() int { return qc.CapacityBits + qc.UpperBits + qc.LowerBits }

// Quire is the exact sign-magnitude accumulator for fused multiply-add and
// fused dot product. Build one with NewQuire: the zero value has no
// configuration and a zero-width magnitude, so values accumulated into it
// are dropped.
type Quire struct {
	cfg      QuireConfig
	sign     bool
	mag      bitblock.Block
	poisoned bool
}

// NewQuire returns a cleared quire of the given configuration.
func NewQuire(cfg QuireConfig) Quire {
	return Quire{cfg: cfg, mag: bitblock.New(cfg.magWidth())}
}

// Clear returns q reset to zero, preserving its configuration.
func (q Quire) Clear() Quire { return NewQuire(q.cfg) }

// IsNaR reports whether q has accumulated a NaR operand and is therefore
// poisoned: every subsequent read returns NaR until Clear.
func (q Quire) IsNaR() bool { return q.poisoned }

func (q Quire) poison() Quire { return Quire{cfg: q.cfg, poisoned: true, mag: q.mag} }

// AddValue accumulates p exactly.
func (q Quire) AddValue(p Posit) Quire {
	if p.IsNaR() {
		return q.poison()
	}
	return q.accumulate(p.decode(), false)
}

// SubValue accumulates -p exactly.
func (q Quire) SubValue(p Posit) Quire {
	if p.IsNaR() {
		return q.poison()
	}
	return q.accumulate(p.decode(), true)
}

// FMA accumulates a*b exactly, without rounding the product first: the
// entire point of a quire is that a chain of FMA calls rounds only once,
// at the final ToPosit.
func (q Quire) FMA(a, b Posit) Quire {
	if a.IsNaR() || b.IsNaR() {
		return q.poison()
	}
	ta, tb := a.decode(), b.decode()
	if ta.IsZero || tb.IsZero {
		return q
	}

	fbits := maxInt(ta.FBits, tb.FBits)
	ta = ta.RightExtend(fbits)
	tb = tb.RightExtend(fbits)

	raw := ta.Significand.Mul(tb.Significand)
	scale := ta.Scale + tb.Scale
	topIdx := raw.Width() - 1
	if raw.Test(topIdx) {
		scale++
	} else {
		raw = raw.Shl(1)
	}

	return q.accumulate(value.Triple{
		Sign:        ta.Sign != tb.Sign,
		Scale:       scale,
		Significand: raw,
		FBits:       raw.Width() - 1,
	}, false)
}

// FDP accumulates the fused dot product of as and bs exactly. Panics if
// the slices differ in length.
func (q Quire) FDP(as, bs []Posit) Quire {
	if len(as) != len(bs) {
		panic("posit: FDP operand slices must be the same length")
	}
	for i := range as {
		q = q.FMA(as[i], bs[i])
	}
	return q
}

// accumulate folds a decoded triple into q's sign-magnitude total, placing
// its significand at the bit position its scale implies relative to the
// quire's fixed binary point (bit LowerBits represents 2^0).
func (q Quire) accumulate(tr value.Triple, negate bool) Quire {
	if tr.IsNaN {
		return q.poison()
	}
	if tr.IsZero {
		return q
	}

	width := q.cfg.magWidth()
	pointBit := q.cfg.LowerBits
	shift := pointBit + int(tr.Scale) - tr.FBits

	placed := bitblock.New(width)
	bitblock.CopyInto(tr.Significand, shift, &placed)

	sign := tr.Sign != negate
	if q.mag.IsZero() {
		return Quire{cfg: q.cfg, sign: sign, mag: placed, poisoned: q.poisoned}
	}
	if q.sign == sign {
		sum, _ := q.mag.Add(placed)
		return Quire{cfg: q.cfg, sign: sign, mag: sum, poisoned: q.poisoned}
	}
	if q.mag.Less(placed) {
		diff, _ := placed.Sub(q.mag)
		return Quire{cfg: q.cfg, sign: sign, mag: diff, poisoned: q.poisoned}
	}
	diff, _ := q.mag.Sub(placed)
	return Quire{cfg: q.cfg, sign: q.sign, mag: diff, poisoned: q.poisoned}
}

// ToPosit rounds q's exact accumulated total to a posit of configuration
// cfg, the single rounding step in the entire fused-accumulate pipeline.
func (q Quire) ToPosit(cfg Config) Posit {
	if q.poisoned {
		return NaR(cfg)
	}
	if q.mag.IsZero() {
		return Zero(cfg)
	}

	msb := q.mag.Msb()
	pointBit := q.cfg.LowerBits
	scale := int32(msb - pointBit)

	width := 64
	if msb+1 < width {
		width = msb + 1
	}
	lowShift := msb - width + 1
	sig := bitblock.Truncate(q.mag.Shr(lowShift), width)
	if lowShift > 0 && q.mag.AnyAfter(lowShift-1) {
		sig.Set(0, true)
	}

	return cfg.FromTriple(value.Triple{
		Sign:        q.sign,
		Scale:       scale,
		Significand: sig,
		FBits:       width - 1,
	})
}
