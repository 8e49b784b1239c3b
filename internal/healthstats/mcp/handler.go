package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/healthstats/internal/healthstats/daylogs"
	"github.com/2beens/healthstats/internal/healthstats/decisions"
	"github.com/2beens/healthstats/internal/healthstats/stats"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

// NewHandler builds a handler with the given service.
func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// GetHealthstatsContextTool returns the MCP tool handler for get_healthstats_context.
func (h *Handler) GetHealthstatsContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error fetching schema: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// DayLogsTimeRangeInput is the input for get_day_logs_for_time_range.
type DayLogsTimeRangeInput struct {
	FromDate string `json:"from_date" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date" jsonschema:"End date (YYYY-MM-DD)"`
}

// GetDayLogsForTimeRangeTool returns the MCP tool handler for get_day_logs_for_time_range.
func (h *Handler) GetDayLogsForTimeRangeTool() func(context.Context, *mcp.CallToolRequest, DayLogsTimeRangeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DayLogsTimeRangeInput) (*mcp.CallToolResult, any, error) {
		if _, err := time.Parse(stats.DateLayout, in.FromDate); err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Invalid from_date: use YYYY-MM-DD"}},
				IsError: true,
			}, nil, nil
		}
		if _, err := time.Parse(stats.DateLayout, in.ToDate); err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Invalid to_date: use YYYY-MM-DD"}},
				IsError: true,
			}, nil, nil
		}

		dayLogs, err := h.service.ListDayLogs(ctx, daylogs.ListParams{
			From: in.FromDate,
			To:   in.ToDate,
		})
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error listing day logs: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		raw, err := json.MarshalIndent(dayLogs, "", "  ")
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		}, nil, nil
	}
}

// KPISummaryInput is the input for get_kpi_summary.
type KPISummaryInput struct {
	Date string `json:"date,omitempty" jsonschema:"Reference date (YYYY-MM-DD); today when empty"`
}

// GetKPISummaryTool returns the MCP tool handler for get_kpi_summary.
func (h *Handler) GetKPISummaryTool() func(context.Context, *mcp.CallToolRequest, KPISummaryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in KPISummaryInput) (*mcp.CallToolResult, any, error) {
		date := in.Date
		if date == "" {
			date = time.Now().UTC().Format(stats.DateLayout)
		} else if _, err := time.Parse(stats.DateLayout, date); err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Invalid date: use YYYY-MM-DD"}},
				IsError: true,
			}, nil, nil
		}

		summary, err := h.service.GetKPISummary(ctx, date)
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error building KPI summary: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		raw, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		}, nil, nil
	}
}

// DecisionHistoryInput is the input for get_decision_history.
type DecisionHistoryInput struct {
	FromDate string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD)"`
}

// GetDecisionHistoryTool returns the MCP tool handler for get_decision_history.
func (h *Handler) GetDecisionHistoryTool() func(context.Context, *mcp.CallToolRequest, DecisionHistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DecisionHistoryInput) (*mcp.CallToolResult, any, error) {
		for _, date := range []string{in.FromDate, in.ToDate} {
			if date == "" {
				continue
			}
			if _, err := time.Parse(stats.DateLayout, date); err != nil {
				return &mcp.CallToolResult{
					Content: []mcp.Content{&mcp.TextContent{Text: "Invalid date range: use YYYY-MM-DD"}},
					IsError: true,
				}, nil, nil
			}
		}

		events, err := h.service.ListDecisions(ctx, decisions.ListParams{
			From: in.FromDate,
			To:   in.ToDate,
		})
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error listing decisions: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		raw, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "Error encoding response: " + err.Error()}},
				IsError: true,
			}, nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
		}, nil, nil
	}
}
