package daylogs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/healthstats/stats"
	"github.com/2beens/healthstats/internal/telemetry/tracing"
	"github.com/2beens/healthstats/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrDayLogNotFound      = errors.New("day log not found")
	ErrUnknownExerciseType = errors.New("unknown exercise type")
)

// ListParams bound a day log listing. Empty From/To means unbounded on that
// side; dates are YYYY-MM-DD.
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

// Upsert writes the full day log: the day row is inserted or updated by
// date, meals and workout entries replace the stored ones wholesale. The
// log's adherence must already be computed by the caller.
func (r *Repo) Upsert(ctx context.Context, dayLog healthstats.DayLog) (_ *healthstats.DayLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylogs.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", dayLog.Date))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err == nil {
			return
		}
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
		}
	}()

	var dayID int
	err = tx.QueryRow(ctx, `
		INSERT INTO day_log
			(day, day_type, weight_kg, waist_cm, sleep_hours, steps, lumbar_pain, nutrition_percent, kpi_flags, created_at)
			VALUES ($1::date, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (day) DO UPDATE SET
			day_type = EXCLUDED.day_type,
			weight_kg = EXCLUDED.weight_kg,
			waist_cm = EXCLUDED.waist_cm,
			sleep_hours = EXCLUDED.sleep_hours,
			steps = EXCLUDED.steps,
			lumbar_pain = EXCLUDED.lumbar_pain,
			nutrition_percent = EXCLUDED.nutrition_percent,
			kpi_flags = EXCLUDED.kpi_flags
		RETURNING id;`,
		dayLog.Date, dayLog.DayType,
		dayLog.WeightKg, dayLog.WaistCm, dayLog.SleepHours, dayLog.Steps, dayLog.LumbarPain,
		dayLog.Adherence.NutritionPercent, kpiFlags(dayLog.Adherence),
		time.Now(),
	).Scan(&dayID)
	if err != nil {
		return nil, fmt.Errorf("upsert day row: %w", err)
	}

	span.SetAttributes(attribute.Int("day.id", dayID))

	if _, err = tx.Exec(ctx, `DELETE FROM meal_item WHERE day_id = $1`, dayID); err != nil {
		return nil, fmt.Errorf("clear meals: %w", err)
	}
	for i, m := range dayLog.Meals {
		if _, err = tx.Exec(ctx, `
			INSERT INTO meal_item (day_id, slot, name, protein, fat, carbs, kcal, source, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			dayID, m.Slot, m.Name, m.P, m.F, m.C, m.Kcal, m.Source, i,
		); err != nil {
			return nil, fmt.Errorf("insert meal %d: %w", i, err)
		}
	}

	if _, err = tx.Exec(ctx, `DELETE FROM workout_set WHERE day_id = $1`, dayID); err != nil {
		return nil, fmt.Errorf("clear workout: %w", err)
	}
	for i, set := range dayLog.Workout {
		if _, err = tx.Exec(ctx, `
			INSERT INTO workout_set (day_id, exercise_id, sets, reps, weight_kg, rir)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (day_id, exercise_id) DO UPDATE SET
				sets = EXCLUDED.sets,
				reps = EXCLUDED.reps,
				weight_kg = EXCLUDED.weight_kg,
				rir = EXCLUDED.rir;`,
			dayID, set.ResolvedExerciseID(), set.Sets, set.Reps, set.WeightKg, set.RIR,
		); err != nil {
			if pkg.IsForeignKeyViolationError(err) {
				return nil, ErrUnknownExerciseType
			}
			return nil, fmt.Errorf("insert workout set %d: %w", i, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return r.GetByDate(ctx, dayLog.Date)
}

// UpsertWorkoutSet writes one workout entry for the day, creating the day
// log row when it does not exist yet and replacing the existing entry for
// the same exercise.
func (r *Repo) UpsertWorkoutSet(ctx context.Context, date string, set healthstats.WorkoutSet) (_ *healthstats.DayLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylogs.upsertset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))
	span.SetAttributes(attribute.String("exercise", set.ResolvedExerciseID()))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err == nil {
			return
		}
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
		}
	}()

	if _, err = tx.Exec(ctx, `
		INSERT INTO day_log (day, day_type, created_at)
		VALUES ($1::date, $2, $3)
		ON CONFLICT (day) DO NOTHING;`,
		date, healthstats.TrainingDayGym, time.Now(),
	); err != nil {
		return nil, fmt.Errorf("ensure day row: %w", err)
	}

	var dayID int
	if err = tx.QueryRow(ctx,
		`SELECT id FROM day_log WHERE day = $1::date`, date,
	).Scan(&dayID); err != nil {
		return nil, fmt.Errorf("get day id: %w", err)
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO workout_set (day_id, exercise_id, sets, reps, weight_kg, rir)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (day_id, exercise_id) DO UPDATE SET
			sets = EXCLUDED.sets,
			reps = EXCLUDED.reps,
			weight_kg = EXCLUDED.weight_kg,
			rir = EXCLUDED.rir;`,
		dayID, set.ResolvedExerciseID(), set.Sets, set.Reps, set.WeightKg, set.RIR,
	); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrUnknownExerciseType
		}
		return nil, fmt.Errorf("upsert workout set: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return r.GetByDate(ctx, date)
}

func (r *Repo) GetByDate(ctx context.Context, date string) (_ *healthstats.DayLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylogs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	rows, err := r.db.Query(ctx, `
		SELECT id, day, day_type, weight_kg, waist_cm, sleep_hours, steps, lumbar_pain, nutrition_percent, kpi_flags, created_at
		FROM day_log
		WHERE day = $1::date;`,
		date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	logs, err := r.rows2dayLogs(rows)
	if err != nil {
		return nil, err
	}
	if len(logs) != 1 {
		return nil, ErrDayLogNotFound
	}

	if err := r.attachEntries(ctx, logs); err != nil {
		return nil, err
	}

	return &logs[0], nil
}

// ListRange returns the day logs of [from, to], newest first. Both bounds
// optional.
func (r *Repo) ListRange(ctx context.Context, params ListParams) (_ []healthstats.DayLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylogs.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", params.From))
	span.SetAttributes(attribute.String("to", params.To))

	rows, err := r.db.Query(ctx, `
		SELECT id, day, day_type, weight_kg, waist_cm, sleep_hours, steps, lumbar_pain, nutrition_percent, kpi_flags, created_at
		FROM day_log
		WHERE ($1::text = '' OR day >= $1::date)
		  AND ($2::text = '' OR day <= $2::date)
		ORDER BY day DESC;`,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	logs, err := r.rows2dayLogs(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2dayLogs: %w", err)
	}

	if err := r.attachEntries(ctx, logs); err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *Repo) Delete(ctx context.Context, date string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.daylogs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	tag, err := r.db.Exec(ctx, `DELETE FROM day_log WHERE day = $1::date`, date)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDayLogNotFound
	}
	return nil
}

// attachEntries loads meals and workout sets for all given logs in two
// queries and distributes them by day id.
func (r *Repo) attachEntries(ctx context.Context, logs []healthstats.DayLog) error {
	if len(logs) == 0 {
		return nil
	}

	dayIDs := make([]int, len(logs))
	logByID := make(map[int]*healthstats.DayLog, len(logs))
	for i := range logs {
		dayIDs[i] = logs[i].ID
		logByID[logs[i].ID] = &logs[i]
	}

	mealRows, err := r.db.Query(ctx, `
		SELECT id, day_id, slot, name, protein, fat, carbs, kcal, source
		FROM meal_item
		WHERE day_id = ANY($1)
		ORDER BY day_id, position, id;`,
		dayIDs,
	)
	if err != nil {
		return fmt.Errorf("query meals: %w", err)
	}
	defer mealRows.Close()

	for mealRows.Next() {
		var m healthstats.MealItem
		if err := mealRows.Scan(&m.ID, &m.DayID, &m.Slot, &m.Name, &m.P, &m.F, &m.C, &m.Kcal, &m.Source); err != nil {
			return fmt.Errorf("scan meal: %w", err)
		}
		if l, ok := logByID[m.DayID]; ok {
			l.Meals = append(l.Meals, m)
		}
	}
	if err := mealRows.Err(); err != nil {
		return fmt.Errorf("meal rows: %w", err)
	}

	setRows, err := r.db.Query(ctx, `
		SELECT id, day_id, exercise_id, sets, reps, weight_kg, rir
		FROM workout_set
		WHERE day_id = ANY($1)
		ORDER BY day_id, id;`,
		dayIDs,
	)
	if err != nil {
		return fmt.Errorf("query workout sets: %w", err)
	}
	defer setRows.Close()

	for setRows.Next() {
		var set healthstats.WorkoutSet
		if err := setRows.Scan(&set.ID, &set.DayID, &set.ExerciseID, &set.Sets, &set.Reps, &set.WeightKg, &set.RIR); err != nil {
			return fmt.Errorf("scan workout set: %w", err)
		}
		if l, ok := logByID[set.DayID]; ok {
			l.Workout = append(l.Workout, set)
		}
	}
	if err := setRows.Err(); err != nil {
		return fmt.Errorf("workout set rows: %w", err)
	}

	return nil
}

func (r *Repo) rows2dayLogs(rows pgx.Rows) ([]healthstats.DayLog, error) {
	var logs []healthstats.DayLog
	for rows.Next() {
		var (
			l     healthstats.DayLog
			day   time.Time
			flags []string
		)
		if err := rows.Scan(
			&l.ID, &day, &l.DayType,
			&l.WeightKg, &l.WaistCm, &l.SleepHours, &l.Steps, &l.LumbarPain,
			&l.Adherence.NutritionPercent, &flags,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}
		l.Date = day.Format(stats.DateLayout)
		if len(flags) > 0 {
			l.Adherence.KPIFlags = flags
		}
		logs = append(logs, l)
	}

	if logs == nil {
		logs = make([]healthstats.DayLog, 0)
	}

	return logs, nil
}

// kpiFlags never returns nil, the column is a non-null text array.
func kpiFlags(a healthstats.Adherence) []string {
	if a.KPIFlags == nil {
		return []string{}
	}
	return a.KPIFlags
}
