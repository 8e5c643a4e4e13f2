package interpreters

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/arthur-debert/guess/pkg/recognizer"
	"github.com/arthur-debert/guess/pkg/types"
)

const (
	msSecond int64 = 1000
	msMinute       = 60 * msSecond
	msHour         = 60 * msMinute
	msDay          = 24 * msHour
	msWeek         = 7 * msDay
)

var durationUnitMillis = map[string]int64{
	"w":  msWeek,
	"d":  msDay,
	"h":  msHour,
	"m":  msMinute,
	"s":  msSecond,
	"ms": 1,
}

// durationParts is the display cascade, largest unit first
var durationParts = []struct {
	ms      int64
	name    string
	compact string
}{
	{msWeek, "week", "w"},
	{msDay, "day", "d"},
	{msHour, "hour", "h"},
	{msMinute, "minute", "m"},
	{msSecond, "second", "s"},
	{1, "millisecond", "ms"},
}

// ParseDuration reads signed total milliseconds from a bare integer
// (seconds) or from concatenated unit tokens.
func ParseDuration(h recognizer.Hints) (int64, string, bool) {
	if h.Integer {
		n, err := strconv.ParseInt(h.Normalized, 10, 64)
		if err != nil || n > math.MaxInt64/msSecond || n < math.MinInt64/msSecond {
			return 0, "", false
		}
		return n * msSecond, "seconds", true
	}

	if !h.DurationUnits {
		return 0, "", false
	}

	neg := strings.HasPrefix(h.Folded, "-")
	var total int64
	for _, tok := range recognizer.DurationTokens(h.Folded) {
		n, err := strconv.ParseInt(tok[0], 10, 64)
		if err != nil {
			return 0, "", false
		}
		unit := durationUnitMillis[tok[1]]
		if n > (math.MaxInt64-total)/unit {
			return 0, "", false
		}
		total += n * unit
	}
	if neg {
		total = -total
	}
	return total, "units", true
}

// Duration builds the duration interpreter
func Duration() Interpreter {
	return Interpreter{
		Domain: types.DomainDuration,
		CanInterpret: func(_ string, h recognizer.Hints) bool {
			_, _, ok := ParseDuration(h)
			return ok
		},
		Interpret: single(types.DomainDuration, func(_ string, h recognizer.Hints) (types.Interpretation, bool) {
			ms, source, ok := ParseDuration(h)
			if !ok {
				return types.Interpretation{}, false
			}
			return types.Interpretation{
				Domain:    types.DomainDuration,
				Source:    source,
				Value:     ms,
				Canonical: strconv.FormatInt(ms, 10) + "ms",
				Variants:  DurationVariants(ms),
			}, true
		}),
		Prefer: []string{"human"},
	}
}

// DurationVariants renders ms as words, compact units and whole seconds
func DurationVariants(ms int64) []types.Variant {
	var out variants
	out.add("human", HumanDuration(ms))
	out.add("compact", CompactDuration(ms))

	secs := ms / msSecond
	out.add("seconds", humanize.Comma(secs)+" "+pluralWord(secs, "second"))
	return out
}

// HumanDuration spells ms as "1 hour, 30 minutes"
func HumanDuration(ms int64) string {
	var parts []string
	for _, p := range splitDuration(ms) {
		parts = append(parts, plural(int(p.n), p.name))
	}
	if len(parts) == 0 {
		return "0 seconds"
	}
	s := strings.Join(parts, ", ")
	if ms < 0 {
		return "minus " + s
	}
	return s
}

// CompactDuration renders ms as "1h30m"
func CompactDuration(ms int64) string {
	var b strings.Builder
	if ms < 0 {
		b.WriteString("-")
	}
	parts := splitDuration(ms)
	if len(parts) == 0 {
		return "0s"
	}
	for _, p := range parts {
		b.WriteString(strconv.FormatInt(p.n, 10))
		b.WriteString(p.compact)
	}
	return b.String()
}

type durationPart struct {
	n       int64
	name    string
	compact string
}

func splitDuration(ms int64) []durationPart {
	// unsigned magnitude so MinInt64 does not overflow
	rest := uint64(ms)
	if ms < 0 {
		rest = uint64(-(ms + 1)) + 1
	}

	var out []durationPart
	for _, p := range durationParts {
		n := rest / uint64(p.ms)
		rest %= uint64(p.ms)
		if n > 0 {
			out = append(out, durationPart{n: int64(n), name: p.name, compact: p.compact})
		}
	}
	return out
}

func pluralWord(n int64, word string) string {
	if n == 1 || n == -1 {
		return word
	}
	return word + "s"
}
