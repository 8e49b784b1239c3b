package measurements

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/healthstats/stats"
	"github.com/2beens/healthstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrMeasurementNotFound = errors.New("measurement not found")

// ListParams bound a measurement listing by week start. Empty means
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

// Upsert stores the weekly measurement, fully replacing the stored row for
// the same week. The later write wins.
func (r *Repo) Upsert(ctx context.Context, m healthstats.WeeklyMeasurement) (_ *healthstats.WeeklyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("week_start", m.WeekStart))

	var id int
	err = r.db.QueryRow(ctx, `
		INSERT INTO weekly_measurement
			(week_start, weight_kg, waist_cm, lumbar_pain, steps, sleep_hours, chest_cm, shoulders_cm, arm_cm, hips_cm, created_at)
			VALUES ($1::date, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (week_start) DO UPDATE SET
			weight_kg = EXCLUDED.weight_kg,
			waist_cm = EXCLUDED.waist_cm,
			lumbar_pain = EXCLUDED.lumbar_pain,
			steps = EXCLUDED.steps,
			sleep_hours = EXCLUDED.sleep_hours,
			chest_cm = EXCLUDED.chest_cm,
			shoulders_cm = EXCLUDED.shoulders_cm,
			arm_cm = EXCLUDED.arm_cm,
			hips_cm = EXCLUDED.hips_cm,
			created_at = EXCLUDED.created_at
		RETURNING id;`,
		m.WeekStart,
		m.WeightKg, m.WaistCm, m.LumbarPain, m.Steps, m.SleepHours,
		m.ChestCm, m.ShouldersCm, m.ArmCm, m.HipsCm,
		time.Now(),
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("upsert measurement: %w", err)
	}

	span.SetAttributes(attribute.Int("measurement.id", id))

	return r.GetByWeekStart(ctx, m.WeekStart)
}

func (r *Repo) GetByWeekStart(ctx context.Context, weekStart string) (_ *healthstats.WeeklyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("week_start", weekStart))

	rows, err := r.db.Query(ctx, `
		SELECT id, week_start, weight_kg, waist_cm, lumbar_pain, steps, sleep_hours, chest_cm, shoulders_cm, arm_cm, hips_cm, created_at
		FROM weekly_measurement
		WHERE week_start = $1::date;`,
		weekStart,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	measurements, err := r.rows2measurements(rows)
	if err != nil {
		return nil, err
	}
	if len(measurements) != 1 {
		return nil, ErrMeasurementNotFound
	}

	return &measurements[0], nil
}

// ListRange returns the measurements with week start in [from, to], newest
// week first.
func (r *Repo) ListRange(ctx context.Context, params ListParams) (_ []healthstats.WeeklyMeasurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", params.From))
	span.SetAttributes(attribute.String("to", params.To))

	rows, err := r.db.Query(ctx, `
		SELECT id, week_start, weight_kg, waist_cm, lumbar_pain, steps, sleep_hours, chest_cm, shoulders_cm, arm_cm, hips_cm, created_at
		FROM weekly_measurement
		WHERE ($1::text = '' OR week_start >= $1::date)
		  AND ($2::text = '' OR week_start <= $2::date)
		ORDER BY week_start DESC;`,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	measurements, err := r.rows2measurements(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2measurements: %w", err)
	}
	return measurements, nil
}

func (r *Repo) rows2measurements(rows pgx.Rows) ([]healthstats.WeeklyMeasurement, error) {
	var measurements []healthstats.WeeklyMeasurement
	for rows.Next() {
		var (
			m         healthstats.WeeklyMeasurement
			weekStart time.Time
		)
		if err := rows.Scan(
			&m.ID, &weekStart,
			&m.WeightKg, &m.WaistCm, &m.LumbarPain, &m.Steps, &m.SleepHours,
			&m.ChestCm, &m.ShouldersCm, &m.ArmCm, &m.HipsCm,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		m.WeekStart = weekStart.Format(stats.DateLayout)
		measurements = append(measurements, m)
	}

	if measurements == nil {
		measurements = make([]healthstats.WeeklyMeasurement, 0)
	}

	return measurements, nil
}
