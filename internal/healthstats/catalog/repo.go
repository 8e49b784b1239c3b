package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/telemetry/tracing"
	"github.com/2beens/healthstats/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseTypeNotFound = errors.New("exercise type not found")
	ErrExerciseTypeExists   = errors.New("exercise type already exists")
	ErrCoreLiftReserved     = errors.New("core lift ids are reserved")
)

type GetExerciseTypesParams struct {
	MuscleGroup string
	ExerciseID  string
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetExerciseTypes(ctx context.Context, params GetExerciseTypesParams) (_ []healthstats.ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.types.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.MuscleGroup != "" {
		span.SetAttributes(attribute.String("params.muscleGroup", params.MuscleGroup))
	}
	if params.ExerciseID != "" {
		span.SetAttributes(attribute.String("params.exerciseId", params.ExerciseID))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, name, muscle_group, is_core, description, created_at
			FROM exercise_type
			WHERE ($1::text = '' OR muscle_group = $1) AND ($2::text = '' OR id = $2)
			ORDER BY id
		`,
		params.MuscleGroup,
		params.ExerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise types [query]: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise types [rows error]: %w", err)
	}

	var exerciseTypes []healthstats.ExerciseType
	for rows.Next() {
		var exerciseType healthstats.ExerciseType
		err := rows.Scan(
			&exerciseType.ID,
			&exerciseType.Name,
			&exerciseType.MuscleGroup,
			&exerciseType.IsCore,
			&exerciseType.Description,
			&exerciseType.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("exercise types [rows scan]: %w", err)
		}
		exerciseTypes = append(exerciseTypes, exerciseType)
	}

	return exerciseTypes, nil
}

// AddExerciseType stores a new catalog entry. The four core lift ids are
// seeded with the schema and cannot be redefined.
func (r *Repo) AddExerciseType(ctx context.Context, exerciseType healthstats.ExerciseType) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.types.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if healthstats.IsCoreLift(exerciseType.ID) {
		return ErrCoreLiftReserved
	}

	if exerciseType.CreatedAt.IsZero() {
		exerciseType.CreatedAt = time.Now()
	}

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO exercise_type
			    (id, name, muscle_group, is_core, description, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`,
		exerciseType.ID,
		exerciseType.Name,
		exerciseType.MuscleGroup,
		exerciseType.IsCore,
		exerciseType.Description,
		exerciseType.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrExerciseTypeExists
		}
		return err
	}

	return nil
}
