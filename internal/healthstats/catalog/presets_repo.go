package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrPresetNotFound = errors.New("meal preset not found")

func (r *Repo) GetMealPresets(ctx context.Context, slot string) (_ []healthstats.MealPreset, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.presets.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if slot != "" {
		span.SetAttributes(attribute.String("params.slot", slot))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, name, slot, protein, fat, carbs, kcal
			FROM meal_preset
			WHERE ($1::text = '' OR slot = $1)
			ORDER BY name
		`,
		slot,
	)
	if err != nil {
		return nil, fmt.Errorf("meal presets [query]: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("meal presets [rows error]: %w", err)
	}

	var presets []healthstats.MealPreset
	for rows.Next() {
		var preset healthstats.MealPreset
		err := rows.Scan(
			&preset.ID,
			&preset.Name,
			&preset.Slot,
			&preset.P,
			&preset.F,
			&preset.C,
			&preset.Kcal,
		)
		if err != nil {
			return nil, fmt.Errorf("meal presets [rows scan]: %w", err)
		}
		presets = append(presets, preset)
	}

	return presets, nil
}

// AddMealPreset stores the preset and returns its id. A preset with the same
// name is replaced, so re-saving a tweaked preset just works.
func (r *Repo) AddMealPreset(ctx context.Context, preset healthstats.MealPreset) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.presets.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("preset.name", preset.Name))

	var id int
	err = r.db.QueryRow(
		ctx,
		`
			INSERT INTO meal_preset
			    (name, slot, protein, fat, carbs, kcal)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (name) DO UPDATE SET
				slot = EXCLUDED.slot,
				protein = EXCLUDED.protein,
				fat = EXCLUDED.fat,
				carbs = EXCLUDED.carbs,
				kcal = EXCLUDED.kcal
			RETURNING id
		`,
		preset.Name,
		preset.Slot,
		preset.P,
		preset.F,
		preset.C,
		preset.Kcal,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("add meal preset: %w", err)
	}

	return id, nil
}
