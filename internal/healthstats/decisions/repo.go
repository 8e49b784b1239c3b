package decisions

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/healthstats/stats"
	"github.com/2beens/healthstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// ListParams bound a decision history listing by check-in date. Empty means
// unbounded on that side.
type ListParams struct {
	From string
	To   string
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, event healthstats.DecisionEvent) (_ *healthstats.DecisionEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.decisions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("decision", event.Decision))

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO decision_event
			(day, decision, rationale, adherence_14, perf_index, pain_spike, created_at)
		VALUES ($1::date, $2, $3, $4, $5, $6, $7)
		RETURNING id;`,
		event.Date,
		event.Decision,
		event.Rationale,
		event.Adherence14,
		event.PerfIndex,
		event.PainSpike,
		event.CreatedAt,
	).Scan(&event.ID)
	if err != nil {
		return nil, fmt.Errorf("add decision event: %w", err)
	}

	return &event, nil
}

// ListRange returns the decision events with check-in date in [from, to],
// newest first.
func (r *Repo) ListRange(ctx context.Context, params ListParams) (_ []healthstats.DecisionEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.decisions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", params.From))
	span.SetAttributes(attribute.String("to", params.To))

	rows, err := r.db.Query(ctx, `
		SELECT id, day, decision, rationale, adherence_14, perf_index, pain_spike, created_at
		FROM decision_event
		WHERE ($1::text = '' OR day >= $1::date)
		  AND ($2::text = '' OR day <= $2::date)
		ORDER BY day DESC, id DESC;`,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	var events []healthstats.DecisionEvent
	for rows.Next() {
		var (
			event healthstats.DecisionEvent
			day   time.Time
		)
		if err := rows.Scan(
			&event.ID, &day,
			&event.Decision, &event.Rationale,
			&event.Adherence14, &event.PerfIndex, &event.PainSpike,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		event.Date = day.Format(stats.DateLayout)
		events = append(events, event)
	}

	if events == nil {
		events = make([]healthstats.DecisionEvent, 0)
	}

	return events, nil
}
