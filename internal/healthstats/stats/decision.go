package stats

// Decision is the biweekly coaching outcome.
type Decision string

const (
	DecisionDeload  Decision = "deload"
	DecisionDown150 Decision = "down150kcal"
	DecisionUp125   Decision = "up125kcal"
	DecisionNone    Decision = "none"
)

// Fixed rationale texts shown with each decision.
const (
	RationaleDeload = "Sustained high lumbar pain detected: deload week recommended, " +
		"reduce training volume by 30-40% for one week."
	RationaleDown150 = "Waist and weight flat with solid adherence: reduce intake by " +
		"150 kcal/day, or add 2000 steps/day instead."
	RationaleUp125 = "Weight dropping fast or performance declining: add 100-125 kcal " +
		"on training days."
	RationaleNone = "No adjustment this cycle: keep current intake and training."
)

const (
	decisionWindowDays    = 14
	adherenceFloorPct     = 80
	weeklyWeightDropKg    = 0.6
	perfIndexDeclineLimit = -0.05
)

// DecisionResult is the engine outcome plus the signals that produced it.
type DecisionResult struct {
	Decision  Decision `json:"decision"`
	Rationale string   `json:"rationale"`

	Adherence14 float64 `json:"adherence14"`
	PerfIndex   float64 `json:"perfIndex"`
	PainSpike   bool    `json:"painSpike"`
}

// Decide runs the prioritized rule chain over the trailing 14-day window,
// first match wins:
//
//  1. deload on a pain spike, regardless of any other metric
//  2. down150kcal when waist and weight both failed to improve against the
//     prior 14-day window and adherence held at 80% or better
//  3. up125kcal on a weekly weight drop over 0.6 kg or a performance index
//     below -0.05
//  4. none otherwise
//
// A comparison with a missing side counts as insufficient evidence: the
// "not improved" predicates stay false.
func Decide(s Snapshot, referenceDate string) DecisionResult {
	start14, end := DateRange(decisionWindowDays, referenceDate)
	prevStart14, prevEnd14 := DateRange(decisionWindowDays, AddDays(start14, -1))

	curLogs := LogsInRange(s.Logs, start14, end)
	curMeasurements := MeasurementsInRange(s.Measurements, start14, end)
	prevLogs := LogsInRange(s.Logs, prevStart14, prevEnd14)
	prevMeasurements := MeasurementsInRange(s.Measurements, prevStart14, prevEnd14)

	result := DecisionResult{
		Adherence14: WindowAdherence(curLogs),
		PerfIndex:   PerformanceIndex(s, referenceDate),
		PainSpike:   PainSpike(s, referenceDate),
	}

	if result.PainSpike {
		result.Decision = DecisionDeload
		result.Rationale = RationaleDeload
		return result
	}

	waistCur := Latest(curMeasurements, curLogs, WeeklyWaist, DailyWaist)
	waistPrev := Latest(prevMeasurements, prevLogs, WeeklyWaist, DailyWaist)
	weightCur := Average(curMeasurements, curLogs, WeeklyWeight, DailyWeight)
	weightPrev := Average(prevMeasurements, prevLogs, WeeklyWeight, DailyWeight)

	waistNotImproved := notImproved(waistCur, waistPrev)
	weightNotImproved := notImproved(weightCur, weightPrev)

	if waistNotImproved && weightNotImproved && result.Adherence14 >= adherenceFloorPct {
		result.Decision = DecisionDown150
		result.Rationale = RationaleDown150
		return result
	}

	if weeklyWeightDrop(s, referenceDate) || result.PerfIndex < perfIndexDeclineLimit {
		result.Decision = DecisionUp125
		result.Rationale = RationaleUp125
		return result
	}

	result.Decision = DecisionNone
	result.Rationale = RationaleNone
	return result
}

// notImproved holds when the current value is at or above the previous one.
// Either side missing means insufficient evidence, not failure.
func notImproved(current, previous Resolved) bool {
	if current.Value == nil || previous.Value == nil {
		return false
	}
	return *current.Value >= *previous.Value
}

// weeklyWeightDrop compares average weight of the trailing 7-day window
// against the 7 days before it.
func weeklyWeightDrop(s Snapshot, referenceDate string) bool {
	curStart, curEnd := DateRange(7, referenceDate)
	prevStart, prevEnd := DateRange(7, AddDays(curStart, -1))

	cur := Average(
		MeasurementsInRange(s.Measurements, curStart, curEnd),
		LogsInRange(s.Logs, curStart, curEnd),
		WeeklyWeight, DailyWeight,
	)
	prev := Average(
		MeasurementsInRange(s.Measurements, prevStart, prevEnd),
		LogsInRange(s.Logs, prevStart, prevEnd),
		WeeklyWeight, DailyWeight,
	)

	if cur.Value == nil || prev.Value == nil {
		return false
	}
	return *prev.Value-*cur.Value > weeklyWeightDropKg
}
