package posit

import "github.com/arbfloat/arbfloat/internal/value"

// FromFloat64 rounds f to the nearest representable value of cfg.
func FromFloat64(cfg Config, f float64) Posit { return cfg.FromTriple(value.FromFloat64(f)) }

// ToFloat64 widens p to a float64, exactly where cfg's range and precision
// allow and by rounding otherwise.
func ToFloat64(p Posit) float64 { return p.decode().ToFloat64() }

// FromInt64 rounds v to the nearest representable value of cfg.
func FromInt64(cfg Config, v int64) Posit { return cfg.FromTriple(value.FromInt64(v)) }

// ToInt64 truncates p toward zero, saturating at the int64 range and
// mapping NaR to 0.
func ToInt64(p Posit) int64 { return p.decode().ToInt64() }

// Reciprocal returns 1/p as a named operation distinct from Div, matching
// how dedicated posit implementations expose it alongside the four basic
// operators rather than leaving it purely derived.
func Reciprocal(cfg Config, p Posit) Posit {
	return cfg.Div(FromInt64(cfg, 1), p)
}
