package healthstats

import "time"

// ExerciseType is a catalog entry for one exercise.
type ExerciseType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscleGroup"`
	IsCore      bool      `json:"isCore"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// The four core lifts tracked by the performance index.
// The set is fixed and closed.
const (
	CoreLiftSquat    = "squat"
	CoreLiftBench    = "bench"
	CoreLiftDeadlift = "deadlift"
	CoreLiftRow      = "row"
)

// CoreLifts lists the core lift ids in display order.
var CoreLifts = []string{CoreLiftSquat, CoreLiftBench, CoreLiftDeadlift, CoreLiftRow}

// CoreLiftLabels maps core lift ids to their stable display names.
var CoreLiftLabels = map[string]string{
	CoreLiftSquat:    "Back Squat",
	CoreLiftBench:    "Bench Press",
	CoreLiftDeadlift: "Deadlift",
	CoreLiftRow:      "Barbell Row",
}

// IsCoreLift reports whether the exercise id is one of the four core lifts.
func IsCoreLift(exerciseID string) bool {
	_, ok := CoreLiftLabels[exerciseID]
	return ok
}

// MealPreset is a reusable meal with known macros. Meal items created from a
// preset carry the preset source tag.
type MealPreset struct {
	ID   int      `json:"id"`
	Name string   `json:"name"`
	Slot MealSlot `json:"slot"`
	P    float64  `json:"p"`
	F    float64  `json:"f"`
	C    float64  `json:"c"`
	Kcal float64  `json:"kcal"`
}

// Settings holds the operator's display and goal preferences. The engine's
// macro target table is fixed in code and not part of these settings.
type Settings struct {
	StepsGoal      int     `json:"stepsGoal"`
	SleepGoalHours float64 `json:"sleepGoalHours"`
	NotifyDecision bool    `json:"notifyDecision"`
}

// DefaultSettings is served until the operator stores their own.
var DefaultSettings = Settings{
	StepsGoal:      8000,
	SleepGoalHours: 8,
	NotifyDecision: true,
}
