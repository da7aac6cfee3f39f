// Package cfloat implements a generalized, parameterized IEEE-754-style
// floating point format: total width N and exponent width ES are runtime
// parameters (not the single hard-coded half-precision layout the library's
// teacher package specialized), and three policy flags independently
// control what the all-zero and all-ones exponent fields mean: whether
// subnormals are supported below the normal range, whether "supernormal"
// values extend finite range into the slot IEEE reserves for Inf/NaN, and
// whether overflow saturates to the largest finite value instead of
// producing an infinity.
package cfloat

import "fmt"

// Config names one (N, ES, ...) cfloat configuration.
type Config struct {
	N               int
	ES              int
	HasSubnormals   bool
	HasSupernormals bool
	IsSaturating    bool
}

// FBits is the number of fraction bits: everything left over once the
// sign bit and exponent field are accounted for.
func (c Config) FBits() int { return c.N - 1 - c.ES }

// Bias is the IEEE-style exponent bias, 2^(ES-1) - 1.
func (c Config) Bias() int32 { return int32(1)<<uint(c.ES-1) - 1 }

// MaxExpField is the largest value the raw exponent field can hold,
// 2^ES - 1 — the field IEEE reserves for Inf/NaN and this package may
// reassign to HasSupernormals.
func (c Config) MaxExpField() int32 { return int32(1)<<uint(c.ES) - 1 }

// Validate reports whether the configuration can hold a sign bit, at
// least one exponent bit and one fraction bit.
func (c Config) Validate() error {
	if c.N < 3 {
		return fmt.Errorf("cfloat: N must be >= 3, got %d", c.N)
	}
	if c.ES < 1 {
		return fmt.Errorf("cfloat: ES must be >= 1, got %d", c.ES)
	}
	if c.FBits() < 1 {
		return fmt.Errorf("cfloat: ES=%d leaves no fraction bits in an %d-bit cfloat", c.ES, c.N)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("cfloat<%d,%d,%t,%t,%t>", c.N, c.ES, c.HasSubnormals, c.HasSupernormals, c.IsSaturating)
}

// Canned configurations matching common machine-learning and hardware
// number formats, grounded on the teacher's own Float16 layout plus the
// other widths the cfloat design generalizes it to.
var (
	// IEEEBinary16 reproduces the teacher's own 16-bit half-precision
	// layout: subnormal support, no supernormals, no saturation (overflow
	// produces signed infinity as IEEE-754 does).
	IEEEBinary16 = Config{N: 16, ES: 5, HasSubnormals: true}
	// IEEEBinary32 is single precision.
	IEEEBinary32 = Config{N: 32, ES: 8, HasSubnormals: true}
	// Bfloat16 trades mantissa bits for float32's exponent range.
	Bfloat16 = Config{N: 16, ES: 8, HasSubnormals: true}
	// FP8E4M3 is the narrow, saturating 8-bit format used in ML inference:
	// no infinities, overflow saturates to its largest finite magnitude.
	FP8E4M3 = Config{N: 8, ES: 4, HasSubnormals: true, IsSaturating: true}
	// FP8E5M2 trades mantissa for a wider exponent range, still saturating.
	FP8E5M2 = Config{N: 8, ES: 5, HasSubnormals: true, IsSaturating: true}
)
