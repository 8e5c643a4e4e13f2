package interpreters

import (
	"strconv"
	"strings"
	"time"

	"github.com/arthur-debert/guess/pkg/recognizer"
	"github.com/arthur-debert/guess/pkg/types"
)

// Hard window for epoch readings: 1900-01-01 to 2100-01-01 UTC
const (
	minUnixSeconds int64 = -2208988800
	maxUnixSeconds int64 = 4102444800
)

const (
	localLayout = "2006-01-02 15:04:05 MST (-07:00)"
	utcLayout   = "2006-01-02 15:04:05 UTC"
	isoLayout   = "2006-01-02T15:04:05.000Z07:00"
)

// Layouts carrying their own zone
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04Z0700",
}

// Layouts read in the caller's location
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2006/1/2",
}

// TimestampReading is one way an input can name an instant
type TimestampReading struct {
	Time   time.Time
	Source string
}

// ParseTimestamp reads the input as an instant. Epoch integers are
// seconds at 10 digits and milliseconds at 11 to 13; a seconds reading
// of 11 or more digits always falls outside the epoch window, so no input
// has two readings.
func ParseTimestamp(h recognizer.Hints, loc *time.Location) (TimestampReading, bool) {
	s := h.Normalized

	switch {
	case h.Integer:
		return epochReading(s, h)
	case h.ISO8601:
		if t, ok := parseLayouts(strings.ToUpper(s), loc); ok {
			return TimestampReading{Time: t, Source: "ISO 8601"}, true
		}
	case h.Date:
		if t, ok := parseLayouts(s, loc); ok {
			return TimestampReading{Time: t, Source: "date"}, true
		}
	}
	return TimestampReading{}, false
}

func epochReading(s string, h recognizer.Hints) (TimestampReading, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return TimestampReading{}, false
	}

	switch {
	case h.Digits == 10, h.Negative && h.Digits >= 3 && h.Digits <= 10:
		if n >= minUnixSeconds && n <= maxUnixSeconds {
			return TimestampReading{Time: time.Unix(n, 0).UTC(), Source: "unix seconds"}, true
		}
	case h.Digits >= 11 && h.Digits <= 13:
		if sec := n / 1000; sec >= minUnixSeconds && sec <= maxUnixSeconds {
			return TimestampReading{Time: time.UnixMilli(n).UTC(), Source: "unix milliseconds"}, true
		}
	}
	return TimestampReading{}, false
}

func parseLayouts(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Timestamp builds the timestamp interpreter
func Timestamp(env Env) Interpreter {
	loc := env.location()
	return Interpreter{
		Domain: types.DomainTimestamp,
		CanInterpret: func(_ string, h recognizer.Hints) bool {
			_, ok := ParseTimestamp(h, loc)
			return ok
		},
		Interpret: single(types.DomainTimestamp, func(_ string, h recognizer.Hints) (types.Interpretation, bool) {
			r, ok := ParseTimestamp(h, loc)
			if !ok {
				return types.Interpretation{}, false
			}
			return types.Interpretation{
				Domain:    types.DomainTimestamp,
				Source:    r.Source,
				Value:     r.Time,
				Canonical: r.Time.UTC().Format(time.RFC3339Nano),
				Variants:  TimestampVariants(r.Time, env),
			}, true
		}),
		Prefer: []string{"local", "UTC"},
	}
}

// TimestampVariants renders t in every supported notation
func TimestampVariants(t time.Time, env Env) []types.Variant {
	var out variants

	local := t.In(env.location())
	if _, offset := local.Zone(); offset != 0 {
		out.add("local", local.Format(localLayout))
	}
	out.add("UTC", t.UTC().Format(utcLayout))
	out.add("unix seconds", strconv.FormatInt(t.Unix(), 10))
	out.add("unix milliseconds", strconv.FormatInt(t.UnixMilli(), 10))
	out.add("relative", Relative(t, env.Now))
	out.add("ISO 8601", t.UTC().Format(isoLayout))
	return out
}
