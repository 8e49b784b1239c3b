package stats

import (
	"math"
	"sort"

	"github.com/2beens/healthstats/internal/healthstats"
)

// Source tags which tier supplied a resolved metric value.
type Source string

const (
	SourceWeekly Source = "weekly"
	SourceDaily  Source = "daily"
	SourceNone   Source = "none"
)

// Resolved is a metric value together with the tier that supplied it.
// Value is nil when neither tier had data; absence is distinct from zero.
type Resolved struct {
	Value  *float64 `json:"value"`
	Source Source   `json:"source"`
}

// WeeklyField selects one metric from a weekly measurement, nil when unset.
type WeeklyField func(healthstats.WeeklyMeasurement) *float64

// DailyField selects one metric from a day log, nil when unset.
type DailyField func(healthstats.DayLog) *float64

// Field selectors for the metrics the reports resolve.

func WeeklyWeight(m healthstats.WeeklyMeasurement) *float64 { return m.WeightKg }
func WeeklyWaist(m healthstats.WeeklyMeasurement) *float64  { return m.WaistCm }
func WeeklyPain(m healthstats.WeeklyMeasurement) *float64   { return m.LumbarPain }

func DailyWeight(l healthstats.DayLog) *float64 { return l.WeightKg }
func DailyWaist(l healthstats.DayLog) *float64  { return l.WaistCm }

func DailyPain(l healthstats.DayLog) *float64 {
	if l.LumbarPain == nil {
		return nil
	}
	p := float64(*l.LumbarPain)
	return &p
}

// Latest resolves the most recent value of a metric: weekly measurements are
// preferred (newest week start first), day logs are the fallback (newest date
// first).
func Latest(
	weekly []healthstats.WeeklyMeasurement,
	daily []healthstats.DayLog,
	weeklyField WeeklyField,
	dailyField DailyField,
) Resolved {
	weeklySorted := make([]healthstats.WeeklyMeasurement, len(weekly))
	copy(weeklySorted, weekly)
	sort.Slice(weeklySorted, func(i, j int) bool {
		return weeklySorted[i].WeekStart > weeklySorted[j].WeekStart
	})
	for _, m := range weeklySorted {
		if v := weeklyField(m); v != nil {
			return Resolved{Value: v, Source: SourceWeekly}
		}
	}

	dailySorted := make([]healthstats.DayLog, len(daily))
	copy(dailySorted, daily)
	sort.Slice(dailySorted, func(i, j int) bool {
		return dailySorted[i].Date > dailySorted[j].Date
	})
	for _, l := range dailySorted {
		if v := dailyField(l); v != nil {
			return Resolved{Value: v, Source: SourceDaily}
		}
	}

	return Resolved{Source: SourceNone}
}

// Average resolves the mean of a metric with an all-or-nothing source switch:
// when any weekly measurement has the field, the mean runs over exactly the
// weekly rows that have it and day logs are ignored for that metric;
// otherwise the mean runs over the day logs that have it. Weekly and daily
// values are never blended.
func Average(
	weekly []healthstats.WeeklyMeasurement,
	daily []healthstats.DayLog,
	weeklyField WeeklyField,
	dailyField DailyField,
) Resolved {
	var sum float64
	count := 0
	for _, m := range weekly {
		if v := weeklyField(m); v != nil {
			sum += *v
			count++
		}
	}
	if count > 0 {
		avg := Round2(sum / float64(count))
		return Resolved{Value: &avg, Source: SourceWeekly}
	}

	for _, l := range daily {
		if v := dailyField(l); v != nil {
			sum += *v
			count++
		}
	}
	if count > 0 {
		avg := Round2(sum / float64(count))
		return Resolved{Value: &avg, Source: SourceDaily}
	}

	return Resolved{Source: SourceNone}
}

// Trend returns current minus previous when both are present, nil otherwise.
func Trend(current, previous Resolved) *float64 {
	if current.Value == nil || previous.Value == nil {
		return nil
	}
	d := Round2(*current.Value - *previous.Value)
	return &d
}

// Round2 rounds to 2 decimal places, the precision of averages and trend
// deltas.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to 3 decimal places, the precision of the performance index.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
