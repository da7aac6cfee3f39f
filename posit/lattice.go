package posit

import "github.com/arbfloat/arbfloat/bitblock"

// Inc returns the next posit above p in the total bit-lattice ordering,
// wrapping from MaxPos back to NaR.
func (p Posit) Inc() Posit {
	bits, _ := p.bits.Add(bitblock.FromUint64(p.cfg.N, 1))
	return Posit{cfg: p.cfg, bits: bits}
}

// Dec returns the next posit below p in the total bit-lattice ordering,
// wrapping from NaR back to MaxPos.
func (p Posit) Dec() Posit {
	bits, _ := p.bits.Sub(bitblock.FromUint64(p.cfg.N, 1))
	return Posit{cfg: p.cfg, bits: bits}
}

// Enumerate returns every representable value of cfg, in ascending order
// (NaR, then MaxNeg up through MinNeg, then Zero, then MinPos up through
// MaxPos). Intended for small configurations used in tests and
// diagnostics; a 32-bit or wider configuration has far too many values to
// materialize this way.
func Enumerate(cfg Config) []Posit {
	total := uint64(1) << uint(cfg.N)
	out := make([]Posit, 0, total)
	start := uint64(1) << uint(cfg.N-1)
	for i := uint64(0); i < total; i++ {
		raw := (start + i) % total
		out = append(out, Posit{cfg: cfg, bits: bitblock.FromUint64(cfg.N, raw)})
	}
	return out
}
