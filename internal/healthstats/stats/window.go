package stats

import (
	"github.com/2beens/healthstats/internal/healthstats"
)

// Snapshot is an immutable view of all logs and weekly measurements the
// engine works on. Every engine function takes a snapshot plus a reference
// date and returns new values; it is safe to call repeatedly against
// overlapping or superseding snapshots.
type Snapshot struct {
	Logs         []healthstats.DayLog
	Measurements []healthstats.WeeklyMeasurement
}

// LogsInRange returns the logs whose date falls in [start, end], input order
// preserved.
func LogsInRange(logs []healthstats.DayLog, start, end string) []healthstats.DayLog {
	var out []healthstats.DayLog
	for _, l := range logs {
		if InRange(l.Date, start, end) {
			out = append(out, l)
		}
	}
	return out
}

// MeasurementsInRange returns the weekly measurements whose week start falls
// in [start, end], input order preserved.
func MeasurementsInRange(measurements []healthstats.WeeklyMeasurement, start, end string) []healthstats.WeeklyMeasurement {
	var out []healthstats.WeeklyMeasurement
	for _, m := range measurements {
		if InRange(m.WeekStart, start, end) {
			out = append(out, m)
		}
	}
	return out
}

// WindowAdherence is the mean of per-day nutrition percents over the given
// logs, 0 when there are none.
func WindowAdherence(logs []healthstats.DayLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, l := range logs {
		sum += l.Adherence.NutritionPercent
	}
	return Round2(float64(sum) / float64(len(logs)))
}
