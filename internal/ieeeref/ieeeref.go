// Package ieeeref is an independent half-precision oracle used to cross-
// check cfloat's generalized IEEE-754 codec against a second, narrowly
// specialized implementation: x448/float16's hard-coded binary16 type.
// Where cfloat.IEEEBinary16 and this package disagree on a bit pattern's
// classification or round-trip value, one of them has a bug.
package ieeeref

import (
	"math"

	x448 "github.com/x448/float16"
)

// Classification mirrors the sign/regime-free bitfield layout the
// library's teacher package used for its own hard-coded binary16 type,
// generalized here only far enough to classify an arbitrary uint16
// pattern without redoing cfloat's own decode.
const (
	signMask     = 0x8000
	exponentMask = 0x7C00
	mantissaMask = 0x03FF
	exponentBias = 15
	exponentMax  = 31
)

// Classify reports the IEEE-754 binary16 category of a raw bit pattern:
// "zero", "subnormal", "normal", "inf" or "nan".
func Classify(bits uint16) string {
	exp := (bits & exponentMask) >> 10
	mant := bits & mantissaMask
	switch {
	case exp == 0 && mant == 0:
		return "zero"
	case exp == 0:
		return "subnormal"
	case exp == exponentMax && mant == 0:
		return "inf"
	case exp == exponentMax:
		return "nan"
	default:
		return "normal"
	}
}

// Encode converts f to its IEEE-754 binary16 bit pattern via x448/float16,
// the independent reference this package exists to check cfloat against.
func Encode(f float64) uint16 {
	return uint16(x448.Fromfloat32(float32(f)))
}

// Decode converts a raw binary16 bit pattern back to float64 via
// x448/float16.
func Decode(bits uint16) float64 {
	return float64(x448.Float16(bits).Float32())
}

// RoundTrips reports whether encoding f and decoding it back through the
// reference implementation reproduces f within the precision binary16 can
// carry — exact for values representable without rounding, approximate
// otherwise.
func RoundTrips(f float64, tolerance float64) bool {
	if math.IsNaN(f) {
		return math.IsNaN(Decode(Encode(f)))
	}
	got := Decode(Encode(f))
	return math.Abs(got-f) <= tolerance
}
