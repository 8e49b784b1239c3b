package measurements

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/healthstats/stats"
	"github.com/2beens/healthstats/internal/telemetry/metrics"
	"github.com/2beens/healthstats/internal/telemetry/tracing"
	"github.com/2beens/healthstats/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=measurements_mocks_test.go -package=measurements_test

type measurementsRepo interface {
	Upsert(ctx context.Context, m healthstats.WeeklyMeasurement) (*healthstats.WeeklyMeasurement, error)
	ListRange(ctx context.Context, params ListParams) ([]healthstats.WeeklyMeasurement, error)
}

// kpiCache is cleared on every write so KPI reports never serve stale data.
type kpiCache interface {
	Clear()
}

type ListResponse struct {
	Measurements []healthstats.WeeklyMeasurement `json:"measurements"`
	Total        int                             `json:"total"`
}

type Handler struct {
	repo     measurementsRepo
	kpiCache kpiCache
	metrics  *metrics.Manager
}

func NewHandler(
	repo measurementsRepo,
	kpiCache kpiCache,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		repo:     repo,
		kpiCache: kpiCache,
		metrics:  metrics,
	}
}

// HandleUpsert stores the weekly measurement, replacing any measurement
// already stored for the same week. The week start is snapped to the Monday
// of the week it falls in, so clients may send any day of the week.
func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.upsert")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var measurement healthstats.WeeklyMeasurement
	if err := json.NewDecoder(r.Body).Decode(&measurement); err != nil {
		log.Tracef("save measurement, unmarshal json params: %s", err)
		http.Error(w, "save measurement failed", http.StatusBadRequest)
		return
	}

	if _, err := time.Parse(stats.DateLayout, measurement.WeekStart); err != nil {
		http.Error(w, "error, invalid week start", http.StatusBadRequest)
		return
	}
	measurement.WeekStart, _ = stats.WeekBounds(measurement.WeekStart)

	savedMeasurement, err := handler.repo.Upsert(ctx, measurement)
	if err != nil {
		log.Errorf("failed to save measurement [week %s]: %s", measurement.WeekStart, err)
		http.Error(w, "error, failed to save measurement", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterMeasurementsSaved.Inc()
	handler.kpiCache.Clear()

	savedMeasurementJson, err := json.Marshal(savedMeasurement)
	if err != nil {
		log.Errorf("failed to marshal saved measurement: %s", err)
		http.Error(w, "error, failed to save measurement", http.StatusInternalServerError)
		return
	}

	log.Debugf("weekly measurement saved: week of %s", savedMeasurement.WeekStart)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedMeasurementJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.list")
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

	measurements, err := handler.repo.ListRange(ctx, ListParams{From: from, To: to})
	if err != nil {
		log.Errorf("list measurements error: %s", err)
		http.Error(w, "failed to get measurements", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Measurements: measurements,
		Total:        len(measurements),
	})
	if err != nil {
		log.Errorf("failed to marshal measurements: %s", err)
		http.Error(w, "failed to marshal measurements", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}
