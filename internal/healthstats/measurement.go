package healthstats

import (
	"sort"
	"time"
)

// WeeklyMeasurement holds operator-entered weekly averages, at most one per
// ISO week. WeekStart is the Monday of that week.
type WeeklyMeasurement struct {
	ID          int       `json:"id"`
	WeekStart   string    `json:"weekStart"` // YYYY-MM-DD, a Monday
	WeightKg    *float64  `json:"weightKg,omitempty"`
	WaistCm     *float64  `json:"waistCm,omitempty"`
	LumbarPain  *float64  `json:"lumbarPain,omitempty"`
	Steps       *int      `json:"steps,omitempty"`
	SleepHours  *float64  `json:"sleepHours,omitempty"`
	ChestCm     *float64  `json:"chestCm,omitempty"`
	ShouldersCm *float64  `json:"shouldersCm,omitempty"`
	ArmCm       *float64  `json:"armCm,omitempty"`
	HipsCm      *float64  `json:"hipsCm,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NormalizeWeeklyMeasurements deduplicates by week start, the later entry in
// the input winning, and sorts the result descending by week start. Imported
// or stored data goes through this before reaching the engine.
func NormalizeWeeklyMeasurements(in []WeeklyMeasurement) []WeeklyMeasurement {
	byWeek := make(map[string]WeeklyMeasurement, len(in))
	for _, m := range in {
		byWeek[m.WeekStart] = m
	}

	out := make([]WeeklyMeasurement, 0, len(byWeek))
	for _, m := range byWeek {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].WeekStart > out[j].WeekStart
	})

	return out
}
