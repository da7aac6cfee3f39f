package cfloat

import (
	"github.com/arbfloat/arbfloat/bitblock"
	"github.com/arbfloat/arbfloat/internal/round"
	"github.com/arbfloat/arbfloat/internal/value"
)

// Cfloat is a single value of a fixed cfloat Config, stored as its raw
// N-bit sign/exponent/fraction encoding.
type Cfloat struct {
	cfg  Config
	bits bitblock.Block
}

// Config returns c's configuration.
func (c Cfloat) Config() Config { return c.cfg }

// Bits returns a copy of c's raw encoding.
func (c Cfloat) Bits() bitblock.Block { return c.bits.Clone() }

// New builds a Cfloat from a raw encoding. Panics if raw's width doesn't
// match cfg.N.
func New(cfg Config, raw bitblock.Block) Cfloat {
	if raw.Width() != cfg.N {
		panic("cfloat: raw width does not match configuration")
	}
	return Cfloat{cfg: cfg, bits: raw}
}

// Zero returns the signed zero encoding for cfg.
func Zero(cfg Config, sign bool) Cfloat { return zeroPattern(cfg, sign) }

// PosInf returns the positive infinity encoding for cfg. For a
// HasSupernormals configuration this bit pattern is not actually
// infinity — see infPattern.
func PosInf(cfg Config) Cfloat { return infPattern(cfg, false) }

// NegInf returns the negative infinity encoding for cfg. For a
// HasSupernormals configuration this bit pattern is not actually
// infinity — see infPattern.
func NegInf(cfg Config) Cfloat { return infPattern(cfg, true) }

// QNaN returns the canonical quiet NaN encoding for cfg.
func QNaN(cfg Config) Cfloat { return nanPattern(cfg, false) }

// SNaN returns the canonical signaling NaN encoding for cfg. Identical to
// QNaN for a HasSupernormals configuration, which has only one reserved
// NaN pattern.
func SNaN(cfg Config) Cfloat { return nanPattern(cfg, true) }

// MaxPos returns the largest finite positive value cfg can represent.
func MaxPos(cfg Config) Cfloat { return maxFinitePattern(cfg, false) }

// MaxNeg returns the most negative finite value cfg can represent.
func MaxNeg(cfg Config) Cfloat { return maxFinitePattern(cfg, true) }

// MinPos returns the smallest positive nonzero value cfg can represent:
// the smallest subnormal if cfg has subnormals, otherwise the smallest
// normal.
func MinPos(cfg Config) Cfloat { return minFinitePattern(cfg, false) }

// MinNeg returns the negation of MinPos.
func MinNeg(cfg Config) Cfloat { return minFinitePattern(cfg, true) }

func zeroPattern(cfg Config, sign bool) Cfloat {
	b := bitblock.New(cfg.N)
	b.Set(cfg.N-1, sign)
	return Cfloat{cfg: cfg, bits: b}
}

// infPattern builds the exponent-all-ones, fraction-all-zero encoding.
// For a HasSupernormals configuration this row is live finite range
// instead of a reserved infinity (only the all-ones-fraction pattern in
// that row is reserved, for NaN) — PosInf/NegInf document that case.
func infPattern(cfg Config, sign bool) Cfloat {
	b := bitblock.New(cfg.N)
	b.Set(cfg.N-1, sign)
	fbits := cfg.FBits()
	for i := 0; i < cfg.ES; i++ {
		b.Set(fbits+i, true)
	}
	return Cfloat{cfg: cfg, bits: b}
}

// nanPattern builds the canonical quiet or signaling NaN encoding: the
// quiet variant sets the top fraction bit (the IEEE-754 "is_quiet" bit),
// the signaling variant clears it and sets the bottom fraction bit instead
// so the field stays non-zero. A HasSupernormals configuration reserves
// only a single all-ones-fraction pattern for NaN (the rest of the
// exponent-max row is finite supernormal range), leaving no second pattern
// for the signaling/quiet split, so signaling is ignored there.
func nanPattern(cfg Config, signaling bool) Cfloat {
	b := bitblock.New(cfg.N)
	fbits := cfg.FBits()
	for i := 0; i < cfg.ES; i++ {
		b.Set(fbits+i, true)
	}
	if cfg.HasSupernormals {
		for i := 0; i < fbits; i++ {
			b.Set(i, true)
		}
		return Cfloat{cfg: cfg, bits: b}
	}
	if signaling {
		b.Set(0, true)
	} else {
		b.Set(fbits-1, true)
	}
	return Cfloat{cfg: cfg, bits: b}
}

func minFinitePattern(cfg Config, sign bool) Cfloat {
	b := bitblock.New(cfg.N)
	b.Set(cfg.N-1, sign)
	if cfg.HasSubnormals {
		b.Set(0, true)
		return Cfloat{cfg: cfg, bits: b}
	}
	b.Set(cfg.FBits(), true)
	return Cfloat{cfg: cfg, bits: b}
}

func maxFinitePattern(cfg Config, sign bool) Cfloat {
	b := bitblock.New(cfg.N)
	b.Set(cfg.N-1, sign)
	fbits := cfg.FBits()
	topExp := cfg.MaxExpField()
	if !cfg.HasSupernormals {
		topExp--
	}
	for i := 0; i < cfg.ES; i++ {
		if (int32(topExp)>>uint(i))&1 != 0 {
			b.Set(fbits+i, true)
		}
	}
	for i := 0; i < fbits; i++ {
		if !(cfg.HasSupernormals && topExp == cfg.MaxExpField() && i == 0) {
			b.Set(i, true)
		}
	}
	return Cfloat{cfg: cfg, bits: b}
}

// rawFromFields assembles a raw encoding directly from its three fields,
// for callers (like the diagnostic text parser) that already have them
// decomposed rather than as a normalized triple.
func rawFromFields(cfg Config, sign bool, expField int32, frac []bool) bitblock.Block {
	b := bitblock.New(cfg.N)
	b.Set(cfg.N-1, sign)
	fbits := cfg.FBits()
	for i := 0; i < cfg.ES; i++ {
		if (expField>>uint(i))&1 != 0 {
			b.Set(fbits+i, true)
		}
	}
	for i, v := range frac {
		if v {
			b.Set(i, true)
		}
	}
	return b
}

func normalPattern(cfg Config, sign bool, expField int32, frac bitblock.Block) Cfloat {
	b := bitblock.New(cfg.N)
	b.Set(cfg.N-1, sign)
	fbits := cfg.FBits()
	for i := 0; i < cfg.ES; i++ {
		if (expField>>uint(i))&1 != 0 {
			b.Set(fbits+i, true)
		}
	}
	bitblock.CopyInto(frac, 0, &b)
	return Cfloat{cfg: cfg, bits: b}
}

// IsZero reports whether c is a (signed) zero.
func (c Cfloat) IsZero() bool {
	fbits := c.cfg.FBits()
	if c.expField() != 0 {
		return false
	}
	for i := 0; i < fbits; i++ {
		if c.bits.Test(i) {
			return false
		}
	}
	return true
}

// Sign reports c's sign bit.
func (c Cfloat) Sign() bool { return c.bits.Test(c.cfg.N - 1) }

func (c Cfloat) expField() int32 {
	fbits := c.cfg.FBits()
	var e int32
	for i := 0; i < c.cfg.ES; i++ {
		if c.bits.Test(fbits + i) {
			e |= int32(1) << uint(i)
		}
	}
	return e
}

func (c Cfloat) fracField() bitblock.Block {
	fbits := c.cfg.FBits()
	f := bitblock.New(fbits)
	for i := 0; i < fbits; i++ {
		f.Set(i, c.bits.Test(i))
	}
	return f
}

func isAllOnes(b bitblock.Block) bool {
	for i := 0; i < b.Width(); i++ {
		if !b.Test(i) {
			return false
		}
	}
	return true
}

// IsNaN reports whether c is the format's not-a-number encoding, quiet or
// signaling.
func (c Cfloat) IsNaN() bool {
	if c.expField() != c.cfg.MaxExpField() {
		return false
	}
	frac := c.fracField()
	if !c.cfg.HasSupernormals {
		return !frac.IsZero()
	}
	return isAllOnes(frac)
}

// IsSignalingNaN reports whether c is a signaling NaN: the top fraction
// bit clear with the field otherwise non-zero. Always false for a
// HasSupernormals configuration, which has no signaling encoding.
func (c Cfloat) IsSignalingNaN() bool {
	if !c.IsNaN() || c.cfg.HasSupernormals {
		return false
	}
	return !c.bits.Test(c.cfg.FBits() - 1)
}

// IsInf reports whether c is a signed infinity. Never true for a
// HasSupernormals configuration, which has no infinity encoding. An
// IsSaturating configuration still reads the exponent-all-ones,
// fraction-zero pattern as infinity, but FromTriple never produces it.
func (c Cfloat) IsInf() bool {
	if c.cfg.HasSupernormals {
		return false
	}
	return c.expField() == c.cfg.MaxExpField() && c.fracField().IsZero()
}

// decode expands c into the library's normalized triple.
func (c Cfloat) decode() value.Triple {
	sign := c.Sign()
	expField := c.expField()
	fbits := c.cfg.FBits()
	bias := c.cfg.Bias()
	maxExp := c.cfg.MaxExpField()

	if expField == 0 {
		frac := c.fracField()
		if frac.IsZero() {
			return value.Zero(sign)
		}
		if !c.cfg.HasSubnormals {
			return value.Zero(sign)
		}
		// Uint64() requires the fraction field to fit in 64 bits, the same
		// N <= 64 scope limit documented for the rest of the library.
		fracVal := frac.Uint64()
		msb := -1
		for i := fbits - 1; i >= 0; i-- {
			if fracVal&(uint64(1)<<uint(i)) != 0 {
				msb = i
				break
			}
		}
		shift := fbits - 1 - msb
		normalized := fracVal << uint(shift+1)
		sig := bitblock.FromUint64(fbits+1, normalized)
		scale := int32(1) - bias - int32(shift+1)
		return value.Triple{Sign: sign, Scale: scale, Significand: sig, FBits: fbits, Ctx: value.REP}
	}

	if expField == maxExp {
		frac := c.fracField()
		if !c.cfg.HasSupernormals {
			if frac.IsZero() {
				return value.Inf(sign)
			}
			if c.IsSignalingNaN() {
				return value.SignalingNaN()
			}
			return value.NaN()
		}
		if isAllOnes(frac) {
			return value.NaN()
		}
	}

	frac := c.fracField()
	sig := bitblock.New(fbits + 1)
	sig.Set(fbits, true)
	bitblock.CopyInto(frac, 0, &sig)
	return value.Triple{Sign: sign, Scale: expField - bias, Significand: sig, FBits: fbits, Ctx: value.REP}
}

// encode packs a normalized triple into a cfloat of configuration cfg.
func (cfg Config) encode(tr value.Triple) Cfloat {
	if tr.IsNaN {
		return nanPattern(cfg, tr.Signaling)
	}
	if tr.IsInf {
		if cfg.HasSupernormals || cfg.IsSaturating {
			return maxFinitePattern(cfg, tr.Sign)
		}
		return infPattern(cfg, tr.Sign)
	}
	if tr.IsZero {
		return zeroPattern(cfg, tr.Sign)
	}

	fbits := cfg.FBits()
	bias := cfg.Bias()
	expField32 := tr.Scale + bias
	maxExp := cfg.MaxExpField()
	normalMaxExpField := maxExp
	if !cfg.HasSupernormals {
		normalMaxExpField--
	}

	if expField32 > normalMaxExpField {
		if cfg.IsSaturating {
			return maxFinitePattern(cfg, tr.Sign)
		}
		if cfg.HasSupernormals {
			return nanPattern(cfg, false)
		}
		return infPattern(cfg, tr.Sign)
	}

	if expField32 < 1 {
		if !cfg.HasSubnormals {
			return zeroPattern(cfg, tr.Sign)
		}
		return cfg.encodeSubnormal(tr, expField32)
	}

	n := tr.FBits - fbits
	if n <= 0 {
		padded := bitblock.New(fbits + 1)
		bitblock.CopyInto(tr.Significand, -n, &padded)
		return normalPattern(cfg, tr.Sign, expField32, bitblock.Truncate(padded, fbits))
	}
	kept, carry := round.Round(tr.Significand, n)
	if carry {
		expField32++
		if expField32 > normalMaxExpField {
			if cfg.IsSaturating {
				return maxFinitePattern(cfg, tr.Sign)
			}
			if cfg.HasSupernormals {
				return nanPattern(cfg, false)
			}
			return infPattern(cfg, tr.Sign)
		}
	}
	return normalPattern(cfg, tr.Sign, expField32, bitblock.Truncate(kept, fbits))
}

func (cfg Config) encodeSubnormal(tr value.Triple, expField32 int32) Cfloat {
	fbits := cfg.FBits()
	n := (1 - int(expField32)) + (tr.FBits - fbits)
	if n < 0 {
		n = 0
	}
	if n >= tr.Significand.Width() {
		return zeroPattern(cfg, tr.Sign)
	}
	kept, carry := round.Round(tr.Significand, n)
	if carry && kept.Width() == fbits {
		return normalPattern(cfg, tr.Sign, 1, bitblock.New(fbits))
	}
	fracOut := bitblock.New(fbits)
	if carry {
		// Rounding carried out of a field narrower than fbits: the result
		// is the single fraction bit just above the kept width.
		fracOut.Set(kept.Width(), true)
	} else {
		bitblock.CopyInto(kept, 0, &fracOut)
	}
	return Cfloat{cfg: cfg, bits: subnormalBits(cfg, tr.Sign, fracOut)}
}

func subnormalBits(cfg Config, sign bool, frac bitblock.Block) bitblock.Block {
	b := bitblock.New(cfg.N)
	b.Set(cfg.N-1, sign)
	bitblock.CopyInto(frac, 0, &b)
	return b
}

// FromTriple encodes a normalized triple as a cfloat of configuration cfg.
func (cfg Config) FromTriple(tr value.Triple) Cfloat { return cfg.encode(tr) }
