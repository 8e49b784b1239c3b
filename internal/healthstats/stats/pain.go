package stats

import (
	"sort"
)

const (
	painSpikeLevel = 7
	painStreakDays = 3
	painWindowDays = 14
)

// PainSpike reports sustained high lumbar pain in the trailing 14-day window:
// either a weekly measurement averaging pain at 7 or above, or a run of 3
// consecutive calendar days with daily pain at 7 or above. The daily run
// resets across any gap, including a day with no log entry.
func PainSpike(s Snapshot, referenceDate string) bool {
	start, end := DateRange(painWindowDays, referenceDate)

	for _, m := range MeasurementsInRange(s.Measurements, start, end) {
		if m.LumbarPain != nil && *m.LumbarPain >= painSpikeLevel {
			return true
		}
	}

	logs := LogsInRange(s.Logs, start, end)
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date < logs[j].Date
	})

	run := 0
	prevHighDate := ""
	for _, l := range logs {
		if l.LumbarPain == nil || *l.LumbarPain < painSpikeLevel {
			run = 0
			prevHighDate = ""
			continue
		}
		if prevHighDate != "" && l.Date == AddDays(prevHighDate, 1) {
			run++
		} else {
			run = 1
		}
		prevHighDate = l.Date
		if run >= painStreakDays {
			return true
		}
	}

	return false
}
