package interpreters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/guess/pkg/recognizer"
	"github.com/arthur-debert/guess/pkg/types"
)

func TestTimestampEpochSeconds(t *testing.T) {
	got := interpretOne(t, types.DomainTimestamp, "1722628800")

	assert.Equal(t, "unix seconds", got.Source)
	assert.Equal(t, "2024-08-02T20:00:00Z", got.Canonical)
	assert.Equal(t, []types.Variant{
		{Label: "local", Value: "2024-08-02 22:00:00 CEST (+02:00)"},
		{Label: "UTC", Value: "2024-08-02 20:00:00 UTC"},
		{Label: "unix seconds", Value: "1722628800"},
		{Label: "unix milliseconds", Value: "1722628800000"},
		{Label: "relative", Value: "1 year, 2 months ago"},
		{Label: "ISO 8601", Value: "2024-08-02T20:00:00.000Z"},
	}, got.Variants)
}

func TestTimestampMilliseconds(t *testing.T) {
	got := interpretOne(t, types.DomainTimestamp, "1722628800123")
	assert.Equal(t, "unix milliseconds", got.Source)

	m := variantMap(got)
	assert.Equal(t, "2024-08-02T20:00:00.123Z", m["ISO 8601"])
	assert.Equal(t, "1722628800", m["unix seconds"])
}

func TestTimestampOmitsLocalInUTC(t *testing.T) {
	env := Env{Now: testNow, Location: time.UTC}
	vs := TimestampVariants(time.Unix(1722628800, 0), env)
	for _, v := range vs {
		assert.NotEqual(t, "local", v.Label)
	}
	assert.Equal(t, "UTC", vs[0].Label)
}

func TestTimestampWindows(t *testing.T) {
	tests := []struct {
		input  string
		source string
	}{
		{"1722628800", "unix seconds"},
		{"1722628800000", "unix milliseconds"},
		{"17226288000", "unix milliseconds"},
		{"172262880000", "unix milliseconds"},
		{"-86400", "unix seconds"},
		{"-2208988800", "unix seconds"},
		{"-17226288000", "unix milliseconds"},
		{"-3000000000", ""},
		{"9999999999", ""},
		{"99999999999999", ""},
		{"999999999999999999", ""},
		{"255", ""},
		{"2024-08-02T20:00:00+02:00", "ISO 8601"},
		{"2024-08-02", "date"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, ok := ParseTimestamp(recognizer.Recognize(tt.input), cest)
			assert.Equal(t, tt.source != "", ok)
			assert.Equal(t, tt.source, r.Source)
		})
	}
}

func TestTimestampEpochHasOneReading(t *testing.T) {
	for _, raw := range []string{"17226288000", "172262880000", "1722628800000"} {
		t.Run(raw, func(t *testing.T) {
			got := interpretAs(t, types.DomainTimestamp, raw)
			require.Len(t, got, 1)
			assert.Equal(t, "unix milliseconds", got[0].Source)
		})
	}
}

func TestTimestampStrings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2024-08-02T20:00:00Z", "2024-08-02T20:00:00Z"},
		{"2024-08-02t20:00:00z", "2024-08-02T20:00:00Z"},
		{"2024-08-02T22:00:00+02:00", "2024-08-02T20:00:00Z"},
		{"2024-08-02T22:00:00+0200", "2024-08-02T20:00:00Z"},
		{"2024-08-02T20:00:00.5Z", "2024-08-02T20:00:00.5Z"},
		{"2024-08-02T22:00", "2024-08-02T20:00:00Z"},
		{"2024-08-02 22:00:00", "2024-08-02T20:00:00Z"},
		{"2024/08/02 22:00", "2024-08-02T20:00:00Z"},
		{"2024-08-02", "2024-08-01T22:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := interpretOne(t, types.DomainTimestamp, tt.input)
			assert.Equal(t, tt.want, got.Canonical)
		})
	}
}

func TestTimestampRejectsInvalidDate(t *testing.T) {
	h := recognizer.Recognize("2024-13-45")
	require.True(t, h.Date)
	_, ok := ParseTimestamp(h, cest)
	assert.False(t, ok)
}

func TestRelative(t *testing.T) {
	now := time.Date(2024, 8, 2, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same instant", now, "now"},
		{"sub-second", now.Add(-500 * time.Millisecond), "now"},
		{"days ago", now.AddDate(0, 0, -3), "3 days ago"},
		{"days ahead", now.AddDate(0, 0, 3), "in 3 days"},
		{"whole years", now.AddDate(-2, 0, 0), "2 years ago"},
		{"year and months", now.AddDate(-1, -2, 0), "1 year, 2 months ago"},
		{"skipped zero unit", now.AddDate(-1, 0, -5), "1 year ago"},
		{"hours and minutes", now.Add(90 * time.Minute), "in 1 hour, 30 minutes"},
		{"single second", now.Add(-time.Second), "1 second ago"},
		{"month end", time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), "1 year, 6 months ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Relative(tt.t, now))
		})
	}
}
