package daylogs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/healthstats/stats"
	"github.com/2beens/healthstats/internal/telemetry/metrics"
	"github.com/2beens/healthstats/internal/telemetry/tracing"
	"github.com/2beens/healthstats/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=daylogs_mocks_test.go -package=daylogs_test

type dayLogsRepo interface {
	Upsert(ctx context.Context, dayLog healthstats.DayLog) (*healthstats.DayLog, error)
	UpsertWorkoutSet(ctx context.Context, date string, set healthstats.WorkoutSet) (*healthstats.DayLog, error)
	GetByDate(ctx context.Context, date string) (*healthstats.DayLog, error)
	ListRange(ctx context.Context, params ListParams) ([]healthstats.DayLog, error)
	Delete(ctx context.Context, date string) error
}

// kpiCache is cleared on every write so KPI reports never serve stale data.
type kpiCache interface {
	Clear()
}

type ListResponse struct {
	DayLogs []healthstats.DayLog `json:"dayLogs"`
	Total   int                  `json:"total"`
}

type DeleteDayLogResponse struct {
	DeletedDate string `json:"deletedDate"`
}

type Handler struct {
	repo     dayLogsRepo
	kpiCache kpiCache
	metrics  *metrics.Manager
}

func NewHandler(
	repo dayLogsRepo,
	kpiCache kpiCache,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		repo:     repo,
		kpiCache: kpiCache,
		metrics:  metrics,
	}
}

// HandleUpsert stores the full day log sent by the client. Meals and workout
// replace the stored entries; adherence is recomputed here and any value
// sent by the client is discarded.
func (handler *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.daylogs.upsert")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var dayLog healthstats.DayLog
	if err := json.NewDecoder(r.Body).Decode(&dayLog); err != nil {
		log.Tracef("save day log, unmarshal json params: %s", err)
		http.Error(w, "save day log failed", http.StatusBadRequest)
		return
	}

	if _, err := time.Parse(stats.DateLayout, dayLog.Date); err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}
	if dayLog.DayType == "" {
		dayLog.DayType = healthstats.TrainingDayNoGym
	}

	dayLog.Adherence = stats.DayAdherence(dayLog)

	savedLog, err := handler.repo.Upsert(ctx, dayLog)
	if err != nil {
		if errors.Is(err, ErrUnknownExerciseType) {
			http.Error(w, "error, unknown exercise type", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to save day log [%s]: %s", dayLog.Date, err)
		http.Error(w, "error, failed to save day log", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterDayLogsSaved.Inc()
	handler.kpiCache.Clear()

	savedLogJson, err := json.Marshal(savedLog)
	if err != nil {
		log.Errorf("failed to marshal saved day log: %s", err)
		http.Error(w, "error, failed to save day log", http.StatusInternalServerError)
		return
	}

	log.Debugf("day log saved: %s [adherence %d]", savedLog.Date, savedLog.Adherence.NutritionPercent)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, savedLogJson, http.StatusCreated)
}

// HandleUpsertSet stores a single workout entry for the day in the path,
// replacing the day's existing entry for the same exercise. The legacy
// `exercise` name field is accepted in place of `exerciseId`.
func (handler *Handler) HandleUpsertSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.daylogs.upsertset")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if _, err := time.Parse(stats.DateLayout, date); err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	var set healthstats.WorkoutSet
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Tracef("save workout set, unmarshal json params: %s", err)
		http.Error(w, "save workout set failed", http.StatusBadRequest)
		return
	}

	if set.ResolvedExerciseID() == "" {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}
	if set.Sets <= 0 || set.Reps <= 0 {
		http.Error(w, "error, sets and reps must be positive", http.StatusBadRequest)
		return
	}

	updatedLog, err := handler.repo.UpsertWorkoutSet(ctx, date, set)
	if err != nil {
		if errors.Is(err, ErrUnknownExerciseType) {
			http.Error(w, "error, unknown exercise type", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to save workout set [%s] [%s]: %s", date, set.ResolvedExerciseID(), err)
		http.Error(w, "error, failed to save workout set", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterDayLogsSaved.Inc()
	handler.kpiCache.Clear()

	updatedLogJson, err := json.Marshal(updatedLog)
	if err != nil {
		log.Errorf("failed to marshal updated day log: %s", err)
		http.Error(w, "error, failed to save workout set", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, updatedLogJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.daylogs.get")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if _, err := time.Parse(stats.DateLayout, date); err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	dayLog, err := handler.repo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, ErrDayLogNotFound) {
			http.Error(w, "day log not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get day log %s: %s", date, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	dayLogJson, err := json.Marshal(dayLog)
	if err != nil {
		log.Errorf("failed to marshal day log: %s", err)
		http.Error(w, "failed to marshal day log", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dayLogJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.daylogs.list")
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

	dayLogs, err := handler.repo.ListRange(ctx, ListParams{From: from, To: to})
	if err != nil {
		log.Errorf("list day logs error: %s", err)
		http.Error(w, "failed to get day logs", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		DayLogs: dayLogs,
		Total:   len(dayLogs),
	})
	if err != nil {
		log.Errorf("marshal day logs error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.daylogs.delete")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if _, err := time.Parse(stats.DateLayout, date); err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, date); err != nil {
		if errors.Is(err, ErrDayLogNotFound) {
			log.Debugf("day log %s not found", date)
			http.Error(w, "day log not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete day log %s: %s", date, err)
		http.Error(w, "day log not deleted", http.StatusInternalServerError)
		return
	}

	handler.kpiCache.Clear()

	deleteRespJson, err := json.Marshal(DeleteDayLogResponse{
		DeletedDate: date,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
