package export

import (
	"fmt"
	"time"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/healthstats/stats"
)

// WeekFormat tags the weekly export payload schema.
const WeekFormat = "healthstats-week/1"

type WeekMeta struct {
	ExportedAt string `json:"exportedAt"` // RFC3339
	Format     string `json:"format"`
	AppVersion string `json:"appVersion"`
}

// WeekPayload is the self-contained JSON export of one Monday-Sunday week:
// the week's logs and measurements plus the full catalog, presets and
// settings, so the file restores on its own.
type WeekPayload struct {
	WeekStart     string                          `json:"weekStart"`
	WeekEnd       string                          `json:"weekEnd"`
	Logs          []healthstats.DayLog            `json:"logs"`
	Measurements  []healthstats.WeeklyMeasurement `json:"measurements"`
	Presets       []healthstats.MealPreset        `json:"presets"`
	ExerciseTypes []healthstats.ExerciseType      `json:"exerciseTypes"`
	Settings      healthstats.Settings            `json:"settings"`
	Meta          WeekMeta                        `json:"meta"`
}

// WeekData is everything the payload pulls from storage. The builder does
// the week filtering itself, callers pass data as stored.
type WeekData struct {
	Logs          []healthstats.DayLog
	Measurements  []healthstats.WeeklyMeasurement
	Presets       []healthstats.MealPreset
	ExerciseTypes []healthstats.ExerciseType
	Settings      healthstats.Settings
}

// BuildWeekPayload assembles the export payload for the week containing the
// reference date. Logs and measurements outside that week are dropped.
func BuildWeekPayload(referenceDate, appVersion string, data WeekData, now time.Time) WeekPayload {
	weekStart, weekEnd := stats.WeekBounds(referenceDate)
	return WeekPayload{
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
		Logs:          stats.LogsInRange(data.Logs, weekStart, weekEnd),
		Measurements:  stats.MeasurementsInRange(data.Measurements, weekStart, weekEnd),
		Presets:       data.Presets,
		ExerciseTypes: data.ExerciseTypes,
		Settings:      data.Settings,
		Meta: WeekMeta{
			ExportedAt: now.UTC().Format(time.RFC3339),
			Format:     WeekFormat,
			AppVersion: appVersion,
		},
	}
}

// FileName is the canonical object name for the payload, used by the drive
// backup uploads.
func (p WeekPayload) FileName() string {
	return fmt.Sprintf("healthstats-week-%s.json", p.WeekStart)
}
