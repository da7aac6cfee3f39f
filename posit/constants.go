package posit

import "github.com/arbfloat/arbfloat/bitblock"

// MaxPos returns the largest finite positive value cfg can represent: sign
// clear, every other bit set.
func MaxPos(cfg Config) Posit {
	bits := bitblock.New(cfg.N)
	for i := 0; i < cfg.N-1; i++ {
		bits.Set(i, true)
	}
	return Posit{cfg: cfg, bits: bits}
}

// MinPos returns the smallest finite positive value cfg can represent:
// sign and all but the lowest bit clear.
func MinPos(cfg Config) Posit {
	bits := bitblock.New(cfg.N)
	bits.Set(0, true)
	return Posit{cfg: cfg, bits: bits}
}

// MaxNeg returns the most negative finite value cfg can represent, the
// two's-complement negation of MaxPos.
func MaxNeg(cfg Config) Posit {
	return Posit{cfg: cfg, bits: MaxPos(cfg).bits.TwosComplement()}
}

// MinNeg returns the finite negative value of smallest magnitude cfg can
// represent, the two's-complement negation of MinPos.
func MinNeg(cfg Config) Posit {
	return Posit{cfg: cfg, bits: MinPos(cfg).bits.TwosComplement()}
}
