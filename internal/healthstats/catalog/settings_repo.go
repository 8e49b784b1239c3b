package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/healthstats/internal/healthstats"
	"github.com/2beens/healthstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
)

// GetSettings returns the stored settings, or the defaults if the operator
// never saved any.
func (r *Repo) GetSettings(ctx context.Context) (_ healthstats.Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.settings.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var settings healthstats.Settings
	err = r.db.QueryRow(
		ctx,
		`
			SELECT steps_goal, sleep_goal_hours, notify_decision
			FROM settings
			WHERE id = 1
		`,
	).Scan(
		&settings.StepsGoal,
		&settings.SleepGoalHours,
		&settings.NotifyDecision,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return healthstats.DefaultSettings, nil
	}
	if err != nil {
		return healthstats.Settings{}, fmt.Errorf("get settings: %w", err)
	}

	return settings, nil
}

func (r *Repo) UpdateSettings(ctx context.Context, settings healthstats.Settings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.settings.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO settings
			    (id, steps_goal, sleep_goal_hours, notify_decision)
			VALUES (1, $1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET
				steps_goal = EXCLUDED.steps_goal,
				sleep_goal_hours = EXCLUDED.sleep_goal_hours,
				notify_decision = EXCLUDED.notify_decision
		`,
		settings.StepsGoal,
		settings.SleepGoalHours,
		settings.NotifyDecision,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	return nil
}
