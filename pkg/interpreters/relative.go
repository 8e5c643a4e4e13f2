package interpreters

import (
	"strconv"
	"strings"
	"time"
)

// Relative describes t as seen from now, e.g. "1 year, 2 months ago" or
// "in 3 days". At most two adjacent units are shown.
func Relative(t, now time.Time) string {
	if t.Equal(now) {
		return "now"
	}

	future := t.After(now)
	from, to := t, now
	if future {
		from, to = now, t
	}

	y, mo, d, h, mi, s := calendarDiff(from, to)
	units := []struct {
		n    int
		name string
	}{
		{y, "year"},
		{mo, "month"},
		{d, "day"},
		{h, "hour"},
		{mi, "minute"},
		{s, "second"},
	}

	var parts []string
	for i, u := range units {
		if u.n == 0 {
			continue
		}
		parts = append(parts, plural(u.n, u.name))
		if i+1 < len(units) && units[i+1].n != 0 {
			parts = append(parts, plural(units[i+1].n, units[i+1].name))
		}
		break
	}
	if len(parts) == 0 {
		return "now"
	}

	phrase := strings.Join(parts, ", ")
	if future {
		return "in " + phrase
	}
	return phrase + " ago"
}

// calendarDiff splits the span from a to b (a before b) into calendar
// units. Whole years and months are stepped with AddDate; the remainder is
// exact elapsed time.
func calendarDiff(a, b time.Time) (years, months, days, hours, minutes, seconds int) {
	a, b = a.UTC(), b.UTC()

	years = b.Year() - a.Year()
	if years > 0 && a.AddDate(years, 0, 0).After(b) {
		years--
	}
	cursor := a.AddDate(years, 0, 0)
	for months < 11 && !cursor.AddDate(0, months+1, 0).After(b) {
		months++
	}
	cursor = cursor.AddDate(0, months, 0)

	rest := b.Sub(cursor)
	days = int(rest / (24 * time.Hour))
	rest -= time.Duration(days) * 24 * time.Hour
	hours = int(rest / time.Hour)
	rest -= time.Duration(hours) * time.Hour
	minutes = int(rest / time.Minute)
	rest -= time.Duration(minutes) * time.Minute
	seconds = int(rest / time.Second)
	return
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
