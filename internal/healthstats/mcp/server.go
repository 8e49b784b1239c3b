package mcp

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/healthstats/internal/healthstats/daylogs"
	"github.com/2beens/healthstats/internal/healthstats/decisions"
	"github.com/2beens/healthstats/internal/healthstats/reports"
)

// NewServer builds an MCP server with healthstats tools: schema, day logs,
// KPI summary, decision history.
// Ran over stdio by cmd/healthstats_mcp.
func NewServer(
	pool *pgxpool.Pool,
	dayLogsRepo *daylogs.Repo,
	reportsService *reports.Service,
	decisionsService *decisions.Service,
) *mcp.Server {
	svc := NewContextService(NewPoolSchemaRepo(pool), dayLogsRepo, reportsService, decisionsService)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "healthstats-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_healthstats_context",
		Description: "Returns the DB schema for healthstats tables (day_log, meal_item, workout_set, weekly_measurement, exercise_type, meal_preset, settings, decision_event): table names, columns, types, nullable, default. Use when developing the healthstats app and you need the actual backend schema.",
	}, h.GetHealthstatsContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_day_logs_for_time_range",
		Description: "Returns day logs (meals, workout sets, daily metrics, adherence) within the given date range. Args: from_date, to_date (YYYY-MM-DD). Use when you need to see what was logged in a period.",
	}, h.GetDayLogsForTimeRangeTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_kpi_summary",
		Description: "Returns the 7 and 14 day KPI windows (avg weight, waist trend, lumbar pain, adherence, performance index) plus the decision the engine would take now. Optional arg: date (YYYY-MM-DD, defaults to today). Use when you want the current trend or check-in preview.",
	}, h.GetKPISummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_decision_history",
		Description: "Returns recorded biweekly check-in decisions (deload, down150kcal, up125kcal, none) with rationale and inputs. Optional filters: from_date, to_date (YYYY-MM-DD). Use when reviewing past diet or training adjustments.",
	}, h.GetDecisionHistoryTool())

	return s
}
