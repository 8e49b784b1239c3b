package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/healthstats/export"
	"github.com/2beens/healthstats/internal/healthstats/stats"
	"github.com/2beens/healthstats/internal/telemetry/tracing"
	"github.com/2beens/healthstats/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=reports_test

type reportsService interface {
	Summary(ctx context.Context, date string) (stats.Summary, error)
	RecordDecision(ctx context.Context, date string) (*healthstats.DecisionEvent, error)
	ExportCSV(ctx context.Context, from, to string) (string, error)
	ExportWeek(ctx context.Context, date string) (export.WeekPayload, error)
}

// KPIResponse is the summary plus, when the client asked for the check-in to
// be recorded, the persisted decision event.
type KPIResponse struct {
	stats.Summary
	RecordedDecision *healthstats.DecisionEvent `json:"recordedDecision,omitempty"`
}

type Handler struct {
	service reportsService
}

func NewHandler(service reportsService) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleKPI serves the KPI summary for the given date, today when absent.
// With record=true the decision for that date is persisted as well.
func (handler *Handler) HandleKPI(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.kpi")
	defer span.End()

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format(stats.DateLayout)
	} else if _, err := time.Parse(stats.DateLayout, date); err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	summary, err := handler.service.Summary(ctx, date)
	if err != nil {
		log.Errorf("get kpi summary for %s: %s", date, err)
		http.Error(w, "failed to get kpi summary", http.StatusInternalServerError)
		return
	}

	response := KPIResponse{Summary: summary}

	if r.URL.Query().Get("record") == "true" {
		event, err := handler.service.RecordDecision(ctx, date)
		if err != nil {
			log.Errorf("record decision for %s: %s", date, err)
			http.Error(w, "failed to record decision", http.StatusInternalServerError)
			return
		}
		log.Debugf("decision recorded for %s: %s", date, event.Decision)
		response.RecordedDecision = event
	}

	responseJson, err := json.Marshal(response)
	if err != nil {
		log.Errorf("failed to marshal kpi summary: %s", err)
		http.Error(w, "failed to get kpi summary", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, responseJson, http.StatusOK)
}

func (handler *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.export_csv")
	defer span.End()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	for _, date := range []string{from, to} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(stats.DateLayout, date); err != nil {
			http.Error(w, "error, invalid date range", http.StatusBadRequest)
			return
		}
	}

	csvBlob, err := handler.service.ExportCSV(ctx, from, to)
	if err != nil {
		log.Errorf("export csv [%s - %s]: %s", from, to, err)
		http.Error(w, "failed to export csv", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.CSV, []byte(csvBlob), http.StatusOK)
}

func (handler *Handler) HandleExportWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.reports.export_week")
	defer span.End()

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format(stats.DateLayout)
	} else if _, err := time.Parse(stats.DateLayout, date); err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	payload, err := handler.service.ExportWeek(ctx, date)
	if err != nil {
		log.Errorf("export week for %s: %s", date, err)
		http.Error(w, "failed to export week", http.StatusInternalServerError)
		return
	}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal week export: %s", err)
		http.Error(w, "failed to export week", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", payload.FileName()))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, payloadJson, http.StatusOK)
}
