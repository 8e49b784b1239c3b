package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/healthstats/catalog"
	"github.com/2beens/healthstats/internal/healthstats/daylogs"
	"github.com/2beens/healthstats/internal/healthstats/export"
	"github.com/2beens/healthstats/internal/healthstats/measurements"
	"github.com/2beens/healthstats/internal/healthstats/stats"
	"github.com/2beens/healthstats/internal/telemetry/tracing"
)

const (
	kpiCacheExpireSeconds = 5 * 60

	// the decision chain compares the trailing 14 days against the 14
	// before them, so one snapshot load covers every window
	snapshotLookbackDays = 28
)

//go:generate mockgen -source=$GOFILE -destination=reports_mocks_test.go -package=reports_test

type dayLogsRepo interface {
	ListRange(ctx context.Context, params daylogs.ListParams) ([]healthstats.DayLog, error)
}

type measurementsRepo interface {
	ListRange(ctx context.Context, params measurements.ListParams) ([]healthstats.WeeklyMeasurement, error)
}

type catalogRepo interface {
	GetExerciseTypes(ctx context.Context, params catalog.GetExerciseTypesParams) ([]healthstats.ExerciseType, error)
	GetMealPresets(ctx context.Context, slot string) ([]healthstats.MealPreset, error)
	GetSettings(ctx context.Context) (healthstats.Settings, error)
}

type decisionsRecorder interface {
	Record(ctx context.Context, date string, result stats.DecisionResult) (*healthstats.DecisionEvent, error)
}

type Service struct {
	dayLogs      dayLogsRepo
	measurements measurementsRepo
	catalog      catalogRepo
	decisions    decisionsRecorder
	cache        *freecache.Cache
	appVersion   string
}

func NewService(
	dayLogs dayLogsRepo,
	measurementsRepo measurementsRepo,
	catalogRepo catalogRepo,
	decisions decisionsRecorder,
	appVersion string,
) *Service {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	return &Service{
		dayLogs:      dayLogs,
		measurements: measurementsRepo,
		catalog:      catalogRepo,
		decisions:    decisions,
		cache:        freecache.NewCache(cacheSize),
		appVersion:   appVersion,
	}
}

// Clear drops all cached KPI summaries. The write handlers call it so a
// report never reflects pre-write data.
func (s *Service) Clear() {
	s.cache.Clear()
}

// Summary returns the KPI report for the reference date, served from cache
// when a fresh enough one exists.
func (s *Service) Summary(ctx context.Context, date string) (_ stats.Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	cacheKey := fmt.Sprintf("kpi::%s", date)
	if summaryBytes, err := s.cache.Get([]byte(cacheKey)); err == nil {
		var summary stats.Summary
		if err = json.Unmarshal(summaryBytes, &summary); err == nil {
			log.Tracef("kpi summary for %s served from cache", date)
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return summary, nil
		}
		log.Errorf("failed to unmarshal cached kpi summary for %s: %s", date, err)
	}

	snapshot, err := s.loadSnapshot(ctx, date)
	if err != nil {
		return stats.Summary{}, fmt.Errorf("load snapshot: %w", err)
	}

	summary := stats.BuildSummary(snapshot, date)

	summaryBytes, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal kpi summary for cache: %s", err)
		return summary, nil
	}
	if err := s.cache.Set([]byte(cacheKey), summaryBytes, kpiCacheExpireSeconds); err != nil {
		log.Errorf("failed to write kpi summary cache for %s: %s", date, err)
	}

	return summary, nil
}

// RecordDecision reruns the decision chain on live data and persists the
// outcome as a check-in event. The summary cache is deliberately bypassed.
func (s *Service) RecordDecision(ctx context.Context, date string) (_ *healthstats.DecisionEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.record_decision")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	snapshot, err := s.loadSnapshot(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	result := stats.Decide(snapshot, date)
	return s.decisions.Record(ctx, date, result)
}

// ExportCSV renders the day logs in [from, to] as a CSV blob, oldest day
// first.
func (s *Service) ExportCSV(ctx context.Context, from, to string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.export_csv")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := s.dayLogs.ListRange(ctx, daylogs.ListParams{From: from, To: to})
	if err != nil {
		return "", fmt.Errorf("list day logs: %w", err)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date < logs[j].Date
	})

	return export.DayLogsCSV(logs), nil
}

// ExportWeek assembles the self-contained JSON payload for the week
// containing the reference date.
func (s *Service) ExportWeek(ctx context.Context, date string) (_ export.WeekPayload, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.reports.export_week")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	weekStart, weekEnd := stats.WeekBounds(date)

	logs, err := s.dayLogs.ListRange(ctx, daylogs.ListParams{From: weekStart, To: weekEnd})
	if err != nil {
		return export.WeekPayload{}, fmt.Errorf("list day logs: %w", err)
	}
	weeklies, err := s.measurements.ListRange(ctx, measurements.ListParams{From: weekStart, To: weekEnd})
	if err != nil {
		return export.WeekPayload{}, fmt.Errorf("list measurements: %w", err)
	}
	presets, err := s.catalog.GetMealPresets(ctx, "")
	if err != nil {
		return export.WeekPayload{}, fmt.Errorf("get meal presets: %w", err)
	}
	exerciseTypes, err := s.catalog.GetExerciseTypes(ctx, catalog.GetExerciseTypesParams{})
	if err != nil {
		return export.WeekPayload{}, fmt.Errorf("get exercise types: %w", err)
	}
	settings, err := s.catalog.GetSettings(ctx)
	if err != nil {
		return export.WeekPayload{}, fmt.Errorf("get settings: %w", err)
	}

	return export.BuildWeekPayload(date, s.appVersion, export.WeekData{
		Logs:          logs,
		Measurements:  healthstats.NormalizeWeeklyMeasurements(weeklies),
		Presets:       presets,
		ExerciseTypes: exerciseTypes,
		Settings:      settings,
	}, time.Now()), nil
}

func (s *Service) loadSnapshot(ctx context.Context, date string) (stats.Snapshot, error) {
	from := stats.AddDays(date, -(snapshotLookbackDays - 1))

	logs, err := s.dayLogs.ListRange(ctx, daylogs.ListParams{From: from, To: date})
	if err != nil {
		return stats.Snapshot{}, fmt.Errorf("list day logs: %w", err)
	}
	weeklies, err := s.measurements.ListRange(ctx, measurements.ListParams{From: from, To: date})
	if err != nil {
		return stats.Snapshot{}, fmt.Errorf("list measurements: %w", err)
	}

	return stats.Snapshot{
		Logs:         logs,
		Measurements: healthstats.NormalizeWeeklyMeasurements(weeklies),
	}, nil
}
