package decisions

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/healthstats/stats"
	"github.com/2beens/healthstats/internal/telemetry/tracing"
	"github.com/2beens/healthstats/pkg"
)

type ListResponse struct {
	Decisions []healthstats.DecisionEvent `json:"decisions"`
	Total     int                         `json:"total"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.decisions.list")
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

	events, err := handler.service.List(ctx, ListParams{From: from, To: to})
	if err != nil {
		log.Errorf("list decision events: %s", err)
		http.Error(w, "failed to get decision events", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Decisions: events,
		Total:     len(events),
	})
	if err != nil {
		log.Errorf("failed to marshal decision events: %s", err)
		http.Error(w, "failed to marshal decision events", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}
