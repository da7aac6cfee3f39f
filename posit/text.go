package posit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arbfloat/arbfloat/bitblock"
	"github.com/arbfloat/arbfloat/internal/value"
)

// String renders p in the library's diagnostic format, "<N>.<ES>x<hex>p"
// (NaR prints as "nar"), mirroring the posit community's own notation for
// a configuration's raw encoding. Uses Bits().Uint64(), so cfg.N must be
// <= 64, the same scope limit as the rest of the library.
func (p Posit) String() string {
	if p.IsNaR() {
		return "nar"
	}
	digits := (p.cfg.N + 3) / 4
	return fmt.Sprintf("%d.%dx%0*xp", p.cfg.N, p.cfg.ES, digits, p.bits.Uint64())
}

// Text returns the decimal rendering of p's value, via its decoded triple.
func (p Posit) Text() string {
	if p.IsNaR() {
		return "nar"
	}
	return strconv.FormatFloat(p.decode().ToFloat64(), 'g', -1, 64)
}

// Parse reads a Posit of configuration cfg from s, accepting either the
// "nar" sentinel, the "<N>.<ES>x<hex>p" diagnostic format (N and ES must
// match cfg) or a plain decimal literal.
func Parse(cfg Config, s string) (Posit, error) {
	s = strings.TrimSpace(s)
	if s == "nar" {
		return NaR(cfg), nil
	}
	if strings.Contains(s, "x") && strings.HasSuffix(s, "p") {
		return parseDiagnostic(cfg, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Posit{}, fmt.Errorf("posit: cannot parse %q: %w", s, err)
	}
	return cfg.FromTriple(value.FromFloat64(f)), nil
}

func parseDiagnostic(cfg Config, s string) (Posit, error) {
	body := strings.TrimSuffix(s, "p")
	dot := strings.IndexByte(body, '.')
	x := strings.IndexByte(body, 'x')
	if dot < 0 || x < 0 || x < dot {
		return Posit{}, fmt.Errorf("posit: malformed diagnostic literal %q", s)
	}
	n, err := strconv.Atoi(body[:dot])
	if err != nil {
		return Posit{}, fmt.Errorf("posit: malformed width in %q: %w", s, err)
	}
	es, err := strconv.Atoi(body[dot+1 : x])
	if err != nil {
		return Posit{}, fmt.Errorf("posit: malformed es field in %q: %w", s, err)
	}
	if n != cfg.N || es != cfg.ES {
		return Posit{}, fmt.Errorf("posit: literal %q does not match configuration %s", s, cfg)
	}
	raw, err := strconv.ParseUint(body[x+1:], 16, 64)
	if err != nil {
		return Posit{}, fmt.Errorf("posit: malformed hex payload in %q: %w", s, err)
	}
	bits := bitblock.FromUint64(cfg.N, raw)
	return Posit{cfg: cfg, bits: bits}, nil
}
