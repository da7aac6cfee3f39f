package cfloat

import "github.com/arbfloat/arbfloat/internal/value"

// FromFloat64 rounds f to the nearest representable value of cfg.
func FromFloat64(cfg Config, f float64) Cfloat { return cfg.FromTriple(value.FromFloat64(f)) }

// ToFloat64 widens c to a float64, exactly where cfg's range and precision
// allow and by rounding otherwise. Inf and NaN pass through as their
// float64 counterparts.
func ToFloat64(c Cfloat) float64 { return c.decode().ToFloat64() }

// FromInt64 rounds v to the nearest representable value of cfg.
func FromInt64(cfg Config, v int64) Cfloat { return cfg.FromTriple(value.FromInt64(v)) }

// ToInt64 truncates c toward zero, saturating at the int64 range and
// mapping NaN and infinities to 0 and the saturated bound respectively.
func ToInt64(c Cfloat) int64 { return c.decode().ToInt64() }
