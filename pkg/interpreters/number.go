package interpreters

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/arthur-debert/guess/pkg/recognizer"
	"github.com/arthur-debert/guess/pkg/types"
)

// maxExactFloat is 2^53, the last integer a float64 holds exactly
const maxExactFloat = 1 << 53

// NumberValue is a parsed number: an arbitrary-size integer or a float
type NumberValue struct {
	Int   *big.Int
	Float float64
}

// IsInt reports whether the value is integral
func (v NumberValue) IsInt() bool {
	return v.Int != nil
}

// Float64 returns the value as a float, possibly losing precision
func (v NumberValue) Float64() float64 {
	if v.Int != nil {
		f, _ := new(big.Float).SetInt(v.Int).Float64()
		return f
	}
	return v.Float
}

func (v NumberValue) String() string {
	if v.Int != nil {
		return v.Int.String()
	}
	return strconv.FormatFloat(v.Float, 'g', -1, 64)
}

// ParseNumber reads a number from recognized input and names its source
func ParseNumber(h recognizer.Hints) (NumberValue, string, bool) {
	s := h.Normalized

	if h.Scientific {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return NumberValue{}, "", false
		}
		if f == math.Trunc(f) && math.Abs(f) < maxExactFloat {
			return NumberValue{Int: big.NewInt(int64(f))}, "scientific", true
		}
		return NumberValue{Float: f}, "scientific", true
	}

	switch h.Prefix {
	case recognizer.PrefixHex:
		return parsePrefixed(s, 16, "hex")
	case recognizer.PrefixBinary:
		return parsePrefixed(s, 2, "binary")
	case recognizer.PrefixOctal:
		return parsePrefixed(s, 8, "octal")
	case recognizer.PrefixLeadingZero:
		n, ok := new(big.Int).SetString(s[1:], 8)
		if !ok {
			return NumberValue{}, "", false
		}
		return NumberValue{Int: n}, "octal", true
	}

	if h.Integer {
		n, ok := new(big.Int).SetString(strings.TrimPrefix(s, "+"), 10)
		if !ok {
			return NumberValue{}, "", false
		}
		return NumberValue{Int: n}, "decimal", true
	}

	if recognizer.IsDecimalFloat(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) {
			return NumberValue{}, "", false
		}
		return NumberValue{Float: f}, "decimal", true
	}

	if recognizer.IsGroupedNumber(s) {
		return parseGrouped(s)
	}

	return NumberValue{}, "", false
}

// parseGrouped reads the comma-grouped decimal notation the decimal
// variant renders, so "1,234.5" reads back as 1234.5
func parseGrouped(s string) (NumberValue, string, bool) {
	plain := strings.TrimPrefix(strings.ReplaceAll(s, ",", ""), "+")
	if !strings.Contains(plain, ".") {
		n, ok := new(big.Int).SetString(plain, 10)
		if !ok {
			return NumberValue{}, "", false
		}
		return NumberValue{Int: n}, "decimal", true
	}
	f, err := strconv.ParseFloat(plain, 64)
	if err != nil || math.IsInf(f, 0) {
		return NumberValue{}, "", false
	}
	return NumberValue{Float: f}, "decimal", true
}

func parsePrefixed(s string, base int, source string) (NumberValue, string, bool) {
	neg := strings.HasPrefix(s, "-")
	body := strings.TrimLeft(s, "+-")
	n, ok := new(big.Int).SetString(body[2:], base)
	if !ok {
		return NumberValue{}, "", false
	}
	if neg {
		n.Neg(n)
	}
	return NumberValue{Int: n}, source, true
}

// Number builds the number interpreter
func Number(s Settings) Interpreter {
	return Interpreter{
		Domain: types.DomainNumber,
		CanInterpret: func(_ string, h recognizer.Hints) bool {
			_, _, ok := ParseNumber(h)
			return ok
		},
		Interpret: single(types.DomainNumber, func(_ string, h recognizer.Hints) (types.Interpretation, bool) {
			v, source, ok := ParseNumber(h)
			if !ok {
				return types.Interpretation{}, false
			}
			return types.Interpretation{
				Domain:    types.DomainNumber,
				Source:    source,
				Value:     v,
				Canonical: v.String(),
				Variants:  NumberVariants(v, s, h.Scientific),
			}, true
		}),
		Prefer: []string{"human", "decimal"},
	}
}

// NumberVariants renders v in every applicable notation
func NumberVariants(v NumberValue, s Settings, scientificInput bool) []types.Variant {
	var out variants
	mag := math.Abs(v.Float64())

	if v.IsInt() {
		out.add("decimal", humanize.BigComma(new(big.Int).Set(v.Int)))
		out.add("hex", basePrefixed(v.Int, 16, "0x"))
		out.add("binary", basePrefixed(v.Int, 2, "0b"))
		out.add("octal", basePrefixed(v.Int, 8, "0o"))
	} else {
		out.add("decimal", humanize.Commaf(v.Float))
	}

	if scientificInput || mag >= s.ScientificMin {
		out.add("scientific", scientific(v))
	}

	if mag >= s.HumanMin && mag <= s.HumanMax {
		if word, ok := HumanNumber(v.Float64(), s.HumanThousands); ok {
			out.add("human", word)
		}
	}
	return out
}

func basePrefixed(n *big.Int, base int, prefix string) string {
	sign := ""
	if n.Sign() < 0 {
		sign = "-"
	}
	digits := strings.ToUpper(new(big.Int).Abs(n).Text(base))
	return sign + prefix + digits
}

func scientific(v NumberValue) string {
	if v.IsInt() {
		return new(big.Float).SetInt(v.Int).Text('e', 2)
	}
	return strconv.FormatFloat(v.Float, 'e', 2, 64)
}

var magnitudeWords = []struct {
	scale float64
	word  string
}{
	{1e15, "quadrillion"},
	{1e12, "trillion"},
	{1e9, "billion"},
	{1e6, "million"},
	{1e3, "thousand"},
}

// HumanNumber spells f with a magnitude word, e.g. "1.5 billion". Values
// below one million have no word unless thousands is set.
func HumanNumber(f float64, thousands bool) (string, bool) {
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	words := magnitudeWords
	if !thousands {
		words = words[:len(words)-1]
	}
	for i, m := range words {
		if f < m.scale {
			continue
		}
		q := math.Round(f/m.scale*100) / 100
		// 999,999,999 rounds to "1000 million"; promote it
		if q >= 1000 && i > 0 {
			m = words[i-1]
			q = math.Round(f/m.scale*100) / 100
		}
		return sign + strconv.FormatFloat(q, 'f', -1, 64) + " " + m.word, true
	}
	return "", false
}
