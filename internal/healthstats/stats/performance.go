package stats

import (
	"github.com/2beens/healthstats/internal/healthstats"
)

// PerformanceIndex compares the best training load per core lift between the
// trailing 7-day window and the 7 days before it. Load of a set entry is
// sets*reps*weightKg; the best over a window counts. A lift contributes its
// relative change only when both windows have a nonzero best; a lift with no
// comparable data contributes 0 (no evidence of change, not an error). The
// index is the mean over the four core lifts, rounded to 3 decimals.
func PerformanceIndex(s Snapshot, referenceDate string) float64 {
	curStart, curEnd := DateRange(7, referenceDate)
	prevStart, prevEnd := DateRange(7, AddDays(curStart, -1))

	curLogs := LogsInRange(s.Logs, curStart, curEnd)
	prevLogs := LogsInRange(s.Logs, prevStart, prevEnd)

	var sum float64
	for _, lift := range healthstats.CoreLifts {
		cur := bestLoad(curLogs, lift)
		prev := bestLoad(prevLogs, lift)
		if cur > 0 && prev > 0 {
			sum += (cur - prev) / prev
		}
	}

	return Round3(sum / float64(len(healthstats.CoreLifts)))
}

// bestLoad is the maximum sets*reps*weightKg recorded for the exercise across
// the given logs.
func bestLoad(logs []healthstats.DayLog, exerciseID string) float64 {
	best := 0.0
	for _, l := range logs {
		for _, set := range l.Workout {
			if set.ResolvedExerciseID() != exerciseID {
				continue
			}
			load := float64(set.Sets) * float64(set.Reps) * set.WeightKg
			if load > best {
				best = load
			}
		}
	}
	return best
}
