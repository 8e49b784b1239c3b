package decisions

import (
	"context"
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/healthstats/stats"
	"github.com/2beens/healthstats/internal/telemetry/metrics"
	"github.com/2beens/healthstats/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=decisions_mocks_test.go -package=decisions_test

type decisionsRepo interface {
	Add(ctx context.Context, event healthstats.DecisionEvent) (*healthstats.DecisionEvent, error)
	ListRange(ctx context.Context, params ListParams) ([]healthstats.DecisionEvent, error)
}

type Service struct {
	repo    decisionsRepo
	metrics *metrics.Manager
}

func NewService(repo decisionsRepo, metrics *metrics.Manager) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
	}
}

// Record persists the engine outcome for the given check-in date. The
// fractional adherence signal is rounded to the nearest whole percent.
func (s *Service) Record(ctx context.Context, date string, result stats.DecisionResult) (_ *healthstats.DecisionEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.decisions.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	event, err := s.repo.Add(ctx, healthstats.DecisionEvent{
		Date:        date,
		Decision:    string(result.Decision),
		Rationale:   result.Rationale,
		Adherence14: int(math.Round(result.Adherence14)),
		PerfIndex:   result.PerfIndex,
		PainSpike:   result.PainSpike,
	})
	if err != nil {
		return nil, fmt.Errorf("record decision event: %w", err)
	}

	s.metrics.CounterDecisionsRecorded.
		With(prometheus.Labels{"decision": event.Decision}).
		Inc()

	return event, nil
}

func (s *Service) List(ctx context.Context, params ListParams) (_ []healthstats.DecisionEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.decisions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	events, err := s.repo.ListRange(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list decision events: %w", err)
	}
	return events, nil
}
