package cfloat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arbfloat/arbfloat/internal/value"
)

// String renders c's decimal value, or "nan"/"snan"/"inf"/"-inf" for
// specials.
func (c Cfloat) String() string {
	if c.IsNaN() {
		if c.IsSignalingNaN() {
			return "snan"
		}
		return "nan"
	}
	if c.IsInf() {
		if c.Sign() {
			return "-inf"
		}
		return "inf"
	}
	return strconv.FormatFloat(c.decode().ToFloat64(), 'g', -1, 64)
}

// BinaryString renders c's raw encoding as "0b<sign>.<exponent>.<fraction>",
// a diagnostic format useful for inspecting exactly how a value is
// classified (normal, subnormal, supernormal or special).
func (c Cfloat) BinaryString() string {
	fbits := c.cfg.FBits()
	var sb strings.Builder
	sb.WriteString("0b")
	if c.Sign() {
		sb.WriteByte('1')
	} else {
		sb.WriteByte('0')
	}
	sb.WriteByte('.')
	for i := c.cfg.ES - 1; i >= 0; i-- {
		if c.bits.Test(fbits + i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte('.')
	for i := fbits - 1; i >= 0; i-- {
		if c.bits.Test(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Parse reads a Cfloat of configuration cfg from s: "nan", "snan", "inf",
// "-inf", the "0b<sign>.<exponent>.<fraction>" diagnostic format, or a
// plain decimal literal.
func Parse(cfg Config, s string) (Cfloat, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "nan":
		return nanPattern(cfg, false), nil
	case "snan":
		return nanPattern(cfg, true), nil
	case "inf":
		return infPattern(cfg, false), nil
	case "-inf":
		return infPattern(cfg, true), nil
	}
	if strings.HasPrefix(s, "0b") {
		return parseBinary(cfg, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Cfloat{}, fmt.Errorf("cfloat: cannot parse %q: %w", s, err)
	}
	return cfg.FromTriple(value.FromFloat64(f)), nil
}

func parseBinary(cfg Config, s string) (Cfloat, error) {
	parts := strings.Split(strings.TrimPrefix(s, "0b"), ".")
	if len(parts) != 3 {
		return Cfloat{}, fmt.Errorf("cfloat: malformed diagnostic literal %q", s)
	}
	if len(parts[1]) != cfg.ES || len(parts[2]) != cfg.FBits() {
		return Cfloat{}, fmt.Errorf("cfloat: literal %q does not match configuration %s", s, cfg)
	}
	sign := parts[0] == "1"
	expField, err := strconv.ParseInt(parts[1], 2, 32)
	if err != nil {
		return Cfloat{}, fmt.Errorf("cfloat: malformed exponent in %q: %w", s, err)
	}
	fbits := cfg.FBits()
	frac := make([]bool, fbits)
	for i, r := range parts[2] {
		frac[fbits-1-i] = r == '1'
	}
	b := rawFromFields(cfg, sign, int32(expField), frac)
	return Cfloat{cfg: cfg, bits: b}, nil
}
