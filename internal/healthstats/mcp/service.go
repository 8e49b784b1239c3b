package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/healthstats/daylogs"
	"github.com/2beens/healthstats/internal/healthstats/decisions"
	"github.com/2beens/healthstats/internal/healthstats/stats"
)

// DayLogsRepo provides day log lists (for dependency injection and testing).
type DayLogsRepo interface {
	ListRange(ctx context.Context, params daylogs.ListParams) ([]healthstats.DayLog, error)
}

// kpiReporter provides the KPI summary (for dependency injection and testing).
type kpiReporter interface {
	Summary(ctx context.Context, date string) (stats.Summary, error)
}

// decisionsLister provides the decision history (for dependency injection and testing).
type decisionsLister interface {
	List(ctx context.Context, params decisions.ListParams) ([]healthstats.DecisionEvent, error)
}

// contextService provides healthstats context data (schema, day logs, KPI summary,
// decision history). Used by Handler for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	ListDayLogs(ctx context.Context, params daylogs.ListParams) ([]healthstats.DayLog, error)
	GetKPISummary(ctx context.Context, date string) (stats.Summary, error)
	ListDecisions(ctx context.Context, params decisions.ListParams) ([]healthstats.DecisionEvent, error)
}

// ContextService holds dependencies and implements the healthstats context business logic.
type ContextService struct {
	schema    SchemaRepo
	dayLogs   DayLogsRepo
	reports   kpiReporter
	decisions decisionsLister
}

// NewContextService builds a ContextService with the given dependencies.
func NewContextService(
	schemaRepo SchemaRepo,
	dayLogsRepo DayLogsRepo,
	reports kpiReporter,
	decisionsLister decisionsLister,
) *ContextService {
	return &ContextService{
		schema:    schemaRepo,
		dayLogs:   dayLogsRepo,
		reports:   reports,
		decisions: decisionsLister,
	}
}

// GetSchema returns the DB schema (table names, columns, types) for healthstats
// tables: day_log, meal_item, workout_set, weekly_measurement, exercise_type,
// meal_preset, settings, decision_event.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetHealthstatsColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatHealthstatsSchema(cols), nil
}

func formatHealthstatsSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# HealthStats DB Schema\n\nNo healthstats tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# HealthStats DB Schema\n\n")
	b.WriteString("Tables: day_log, meal_item, workout_set, weekly_measurement, exercise_type, meal_preset, settings, decision_event (schema: public).\n\n")

	for _, tableName := range tableOrder {
		tableCols := byTable[tableName]
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range tableCols {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// ListDayLogs returns day logs for the given params (date range).
func (s *ContextService) ListDayLogs(ctx context.Context, params daylogs.ListParams) ([]healthstats.DayLog, error) {
	return s.dayLogs.ListRange(ctx, params)
}

// GetKPISummary returns the 7/14 day KPI windows for the given reference date.
func (s *ContextService) GetKPISummary(ctx context.Context, date string) (stats.Summary, error) {
	return s.reports.Summary(ctx, date)
}

// ListDecisions returns recorded biweekly check-in decisions, optionally range-filtered.
func (s *ContextService) ListDecisions(ctx context.Context, params decisions.ListParams) ([]healthstats.DecisionEvent, error) {
	return s.decisions.List(ctx, params)
}
