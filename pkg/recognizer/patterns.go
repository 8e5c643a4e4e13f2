package recognizer

import "regexp"

// Anchored patterns. Unit and name patterns run against the case-folded
// input; the rest run against the normalized input.
var (
	reBasePrefix = regexp.MustCompile(`^[+-]?0([xXbBoO])[0-9A-Za-z]+$`)
	reLeadZero   = regexp.MustCompile(`^0[0-7]{2,3}$`)
	reScientific = regexp.MustCompile(`^[+-]?\d+(?:\.\d+)?[eE][+-]?\d+$`)
	reInteger    = regexp.MustCompile(`^([+-]?)(\d+)$`)
	reDecimal    = regexp.MustCompile(`^[+-]?(?:\d+\.\d*|\.\d+)$`)
	reGrouped    = regexp.MustCompile(`^[+-]?\d{1,3}(?:,\d{3})+(?:\.\d+)?$`)

	reDuration      = regexp.MustCompile(`^-?(?:\d+(?:ms|w|d|h|m|s))+$`)
	reDurationToken = regexp.MustCompile(`(\d+)(ms|w|d|h|m|s)`)

	reByteSize = regexp.MustCompile(`^(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?|\.\d+) ?(bytes|byte|kib|mib|gib|tib|pib|kb|mb|gb|tb|pb|b)$`)

	reDateDash  = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}(?: \d{1,2}:\d{2}(?::\d{2})?)?$`)
	reDateSlash = regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}(?: \d{1,2}:\d{2}(?::\d{2})?)?$`)
	reISO8601   = regexp.MustCompile(`(?i)^\d{4}-\d{2}-\d{2}t\d{2}:\d{2}(?::\d{2}(?:\.\d+)?)?(?:z|[+-]\d{2}:?\d{2})?$`)

	reHexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	reRGBCall  = regexp.MustCompile(`(?i)^rgb\(.*\)$`)
	reHSLCall  = regexp.MustCompile(`(?i)^hsl\(.*\)$`)
	reTriple   = regexp.MustCompile(`^\d{1,3}(?:\s*,\s*|\s+)\d{1,3}(?:\s*,\s*|\s+)\d{1,3}$`)

	reSymbolicPerm = regexp.MustCompile(`^[r-][w-][x-][r-][w-][x-][r-][w-][x-]$`)
)

// byteUnits maps folded unit spellings to their display form
var byteUnits = map[string]string{
	"b":     "B",
	"byte":  "B",
	"bytes": "B",
	"kb":    "KB",
	"mb":    "MB",
	"gb":    "GB",
	"tb":    "TB",
	"pb":    "PB",
	"kib":   "KiB",
	"mib":   "MiB",
	"gib":   "GiB",
	"tib":   "TiB",
	"pib":   "PiB",
}

// DurationTokens splits a folded duration string such as "1h30m" into
// (amount, unit) pairs.
func DurationTokens(folded string) [][2]string {
	matches := reDurationToken.FindAllStringSubmatch(folded, -1)
	out := make([][2]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, [2]string{m[1], m[2]})
	}
	return out
}

// IsDecimalFloat reports whether s is a plain decimal with a fractional part
func IsDecimalFloat(s string) bool {
	return reDecimal.MatchString(s)
}

// IsGroupedNumber reports whether s is a comma-grouped decimal such as
// "1,234" or "-1,234.5678"
func IsGroupedNumber(s string) bool {
	return reGrouped.MatchString(s)
}
