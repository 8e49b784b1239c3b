package healthstats

import "time"

type TrainingDayType string

const (
	TrainingDayGym   TrainingDayType = "gym"
	TrainingDayNoGym TrainingDayType = "nogym"
)

// MealSlot is one of the three fixed meal slots of a day.
// Slot ids are kept as the original app sends them.
type MealSlot string

const (
	MealSlotBreakfast MealSlot = "desayuno"
	MealSlotLunch     MealSlot = "comida"
	MealSlotDinner    MealSlot = "cena"
)

// MealSlots lists all meal slots in day order.
var MealSlots = []MealSlot{MealSlotBreakfast, MealSlotLunch, MealSlotDinner}

type MealSource string

const (
	MealSourcePreset MealSource = "preset"
	MealSourceManual MealSource = "manual"
)

// DayLog is one calendar day of nutrition and training entries.
// Date is immutable once the log is created. Optional metrics are nil when
// not reported, never zero.
type DayLog struct {
	ID         int             `json:"id"`
	Date       string          `json:"date"` // YYYY-MM-DD
	DayType    TrainingDayType `json:"dayType"`
	WeightKg   *float64        `json:"weightKg,omitempty"`
	WaistCm    *float64        `json:"waistCm,omitempty"`
	SleepHours *float64        `json:"sleepHours,omitempty"`
	Steps      *int            `json:"steps,omitempty"`
	LumbarPain *int            `json:"lumbarPain,omitempty"` // 0-10
	Meals      []MealItem      `json:"meals"`
	Workout    []WorkoutSet    `json:"workout"`
	Adherence  Adherence       `json:"adherence"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// Adherence is derived from meals and day type on every write, never hand-edited.
type Adherence struct {
	NutritionPercent int      `json:"nutritionPercent"`
	KPIFlags         []string `json:"kpiFlags"`
}

type MealItem struct {
	ID     int        `json:"id"`
	DayID  int        `json:"dayId"`
	Slot   MealSlot   `json:"slot"`
	Name   string     `json:"name"`
	P      float64    `json:"p"`
	F      float64    `json:"f"`
	C      float64    `json:"c"`
	Kcal   float64    `json:"kcal"`
	Source MealSource `json:"source"`
}

// WorkoutSet is one exercise entry of a day's workout session.
type WorkoutSet struct {
	ID         int    `json:"id"`
	DayID      int    `json:"dayId"`
	ExerciseID string `json:"exerciseId"`
	// Exercise is the legacy name for ExerciseID, still sent by older clients.
	Exercise string   `json:"exercise,omitempty"`
	Sets     int      `json:"sets"`
	Reps     int      `json:"reps"`
	WeightKg float64  `json:"weightKg"`
	RIR      *float64 `json:"rir,omitempty"`
}

// ResolvedExerciseID returns ExerciseID, falling back to the legacy Exercise field.
func (ws WorkoutSet) ResolvedExerciseID() string {
	if ws.ExerciseID != "" {
		return ws.ExerciseID
	}
	return ws.Exercise
}

// UpsertWorkoutSet adds the set to the log's workout, or updates the existing
// entry in place when one for the same exercise is already there. A day holds
// at most one workout set per exercise.
func (dl *DayLog) UpsertWorkoutSet(set WorkoutSet) {
	exID := set.ResolvedExerciseID()
	for i := range dl.Workout {
		if dl.Workout[i].ResolvedExerciseID() == exID {
			set.ID = dl.Workout[i].ID
			set.DayID = dl.Workout[i].DayID
			dl.Workout[i] = set
			return
		}
	}
	dl.Workout = append(dl.Workout, set)
}

// MealsInSlot returns the log's meal items for the given slot, in stored order.
func (dl DayLog) MealsInSlot(slot MealSlot) []MealItem {
	var items []MealItem
	for _, m := range dl.Meals {
		if m.Slot == slot {
			items = append(items, m)
		}
	}
	return items
}
