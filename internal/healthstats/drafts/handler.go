package drafts

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
	"github.com/2beens/healthstats/internal/telemetry/tracing"
	"github.com/2beens/healthstats/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=drafts_mocks_test.go -package=drafts_test

type draftScheduler interface {
	Save(ctx context.Context, date string, dayLog healthstats.DayLog) error
	Get(ctx context.Context, date string) (*healthstats.DayLog, error)
	Cancel(ctx context.Context, date string) error
	Flush(ctx context.Context, date string) error
	State(date string) State
}

type DraftResponse struct {
	Date  string `json:"date"`
	State State  `json:"state"`
}

type Handler struct {
	scheduler draftScheduler
}

func NewHandler(scheduler draftScheduler) *Handler {
	return &Handler{
		scheduler: scheduler,
	}
}

// HandleSave accepts a partial day log and schedules it for persistence.
// Repeated saves for the same date keep pushing the flush further out, so a
// client can stream edits without hammering the database.
func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.save")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	date := vars["date"]
	if _, err := time.Parse(stats.DateLayout, date); err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	var dayLog healthstats.DayLog
	if err := json.NewDecoder(r.Body).Decode(&dayLog); err != nil {
		log.Tracef("save draft, unmarshal json params: %s", err)
		http.Error(w, "save draft failed", http.StatusBadRequest)
		return
	}

	// the date in the path wins over whatever the body carries
	dayLog.Date = date

	if err := handler.scheduler.Save(ctx, date, dayLog); err != nil {
		log.Errorf("failed to save draft [%s]: %s", date, err)
		http.Error(w, "error, failed to save draft", http.StatusInternalServerError)
		return
	}

	draftRespJson, err := json.Marshal(DraftResponse{
		Date:  date,
		State: handler.scheduler.State(date),
	})
	if err != nil {
		log.Errorf("failed to marshal draft response: %s", err)
		http.Error(w, "error, failed to save draft", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, draftRespJson, http.StatusAccepted)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.get")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if _, err := time.Parse(stats.DateLayout, date); err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	dayLog, err := handler.scheduler.Get(ctx, date)
	if err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			http.Error(w, "draft not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get draft %s: %s", date, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	dayLogJson, err := json.Marshal(dayLog)
	if err != nil {
		log.Errorf("failed to marshal draft: %s", err)
		http.Error(w, "failed to marshal draft", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dayLogJson, http.StatusOK)
}

func (handler *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.cancel")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if _, err := time.Parse(stats.DateLayout, date); err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	if err := handler.scheduler.Cancel(ctx, date); err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			log.Debugf("draft %s not found", date)
			http.Error(w, "draft not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to cancel draft %s: %s", date, err)
		http.Error(w, "draft not cancelled", http.StatusInternalServerError)
		return
	}

	draftRespJson, err := json.Marshal(DraftResponse{
		Date:  date,
		State: StateCancelled,
	})
	if err != nil {
		log.Errorf("failed to marshal draft response: %s", err)
		http.Error(w, "failed to marshal draft response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, draftRespJson, http.StatusOK)
}

// HandleFlush persists the draft immediately instead of waiting out the
// debounce interval.
func (handler *Handler) HandleFlush(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.drafts.flush")
	defer span.End()

	vars := mux.Vars(r)
	date := vars["date"]
	if _, err := time.Parse(stats.DateLayout, date); err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	if err := handler.scheduler.Flush(ctx, date); err != nil {
		if errors.Is(err, ErrDraftNotFound) {
			http.Error(w, "draft not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to flush draft %s: %s", date, err)
		http.Error(w, "draft not flushed", http.StatusInternalServerError)
		return
	}

	draftRespJson, err := json.Marshal(DraftResponse{
		Date:  date,
		State: StateFlushed,
	})
	if err != nil {
		log.Errorf("failed to marshal draft response: %s", err)
		http.Error(w, "failed to marshal draft response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, draftRespJson, http.StatusOK)
}
