package stats

import "time"

// DateLayout is the canonical date format used across logs and measurements.
// ISO dates sort correctly as plain strings, so ranges compare lexicographically.
const DateLayout = "2006-01-02"

// AddDays returns the date n calendar days after the given one (n may be
// negative). Malformed dates are returned unchanged; input normalization is
// the host layer's job.
func AddDays(date string, n int) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(DateLayout)
}

// DateRange returns the inclusive [start, end] of a trailing window of the
// given length in calendar days, ending on the reference date.
func DateRange(days int, referenceDate string) (start, end string) {
	end = referenceDate
	start = AddDays(referenceDate, -(days - 1))
	return start, end
}

// InRange reports whether date falls in the inclusive [start, end] window.
func InRange(date, start, end string) bool {
	return date >= start && date <= end
}

// WeekBounds returns the Monday-Sunday week containing the reference date:
// the most recent Monday on or before it, and that Monday plus six days.
func WeekBounds(referenceDate string) (weekStart, weekEnd string) {
	t, err := time.Parse(DateLayout, referenceDate)
	if err != nil {
		return referenceDate, referenceDate
	}
	// Weekday is Sunday=0; shift so Monday is day 0 of the week
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -daysSinceMonday)
	return monday.Format(DateLayout), monday.AddDate(0, 0, 6).Format(DateLayout)
}
