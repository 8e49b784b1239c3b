package stats

import (
	"math"

	"github.com/2beens/healthstats/internal/healthstats"
)

// Totals are the summed macros of one day's meals.
type Totals struct {
	P    float64 `json:"p"`
	F    float64 `json:"f"`
	C    float64 `json:"c"`
	Kcal float64 `json:"kcal"`
}

// DailyTotals sums p, f, c and kcal across all meal items of the log. Values
// are summed as-is; input validation happens upstream.
func DailyTotals(log healthstats.DayLog) Totals {
	var t Totals
	for _, m := range log.Meals {
		t.P += m.P
		t.F += m.F
		t.C += m.C
		t.Kcal += m.Kcal
	}
	return t
}

// MacroTargets are the daily macro goals for one training day type.
type MacroTargets struct {
	P    float64
	F    float64
	C    float64
	Kcal float64
}

// Macro targets per training day type. The table is fixed; day type selects
// the row.
var macroTargets = map[healthstats.TrainingDayType]MacroTargets{
	healthstats.TrainingDayGym:   {P: 150, F: 70, C: 250, Kcal: 2300},
	healthstats.TrainingDayNoGym: {P: 150, F: 80, C: 180, Kcal: 2000},
}

// TargetsFor returns the macro targets for the day type, the rest day row
// for unknown types.
func TargetsFor(dayType healthstats.TrainingDayType) MacroTargets {
	if t, ok := macroTargets[dayType]; ok {
		return t
	}
	return macroTargets[healthstats.TrainingDayNoGym]
}

// Adherence score weights: meal completeness vs macro closeness, and the
// per-macro closeness weights within the macro part.
const (
	mealScoreWeight  = 0.35
	macroScoreWeight = 0.65

	proteinWeight = 0.45
	fatWeight     = 0.20
	carbsWeight   = 0.20
	kcalWeight    = 0.15
)

// DayAdherence scores how closely the day's logged nutrition matches its
// targets, 0-100. Meal completeness counts the fraction of the three meal
// slots with at least one item and flags the missing ones; macro closeness
// compares the day's totals against the day type targets.
func DayAdherence(log healthstats.DayLog) healthstats.Adherence {
	slotsFilled := 0
	var flags []string
	for _, slot := range healthstats.MealSlots {
		if len(log.MealsInSlot(slot)) > 0 {
			slotsFilled++
		} else {
			flags = append(flags, "missing_"+string(slot))
		}
	}
	mealScore := float64(slotsFilled) / float64(len(healthstats.MealSlots))

	totals := DailyTotals(log)
	targets := TargetsFor(log.DayType)
	macroScore := proteinWeight*closeness(totals.P, targets.P) +
		fatWeight*closeness(totals.F, targets.F) +
		carbsWeight*closeness(totals.C, targets.C) +
		kcalWeight*closeness(totals.Kcal, targets.Kcal)

	score := math.Round(100 * (mealScoreWeight*mealScore + macroScoreWeight*macroScore))

	return healthstats.Adherence{
		NutritionPercent: int(clamp(score, 0, 100)),
		KPIFlags:         flags,
	}
}

// closeness is 1 at the target and falls linearly to 0 once the actual value
// drifts a full target's worth away.
func closeness(actual, target float64) float64 {
	if target == 0 {
		return 0
	}
	return clamp(1-math.Abs(actual-target)/target, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
