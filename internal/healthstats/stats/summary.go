package stats

// WindowReport is the KPI view of one trailing window. The decision fields
// are filled on the 14-day report only.
type WindowReport struct {
	Days          int      `json:"days"`
	AvgWeightKg   *float64 `json:"avgWeightKg"`
	WeightSource  Source   `json:"weightSource"`
	LatestWaistCm *float64 `json:"latestWaistCm"`
	WaistSource   Source   `json:"waistSource"`
	WaistTrendCm  *float64 `json:"waistTrendCm"`
	AvgLumbarPain float64  `json:"avgLumbarPain"`
	PainSource    Source   `json:"painSource"`
	AdherencePct  float64  `json:"adherencePct"`

	PerfIndex *float64 `json:"perfIndex,omitempty"`
	Decision  Decision `json:"decision,omitempty"`
	Rationale string   `json:"rationale,omitempty"`
}

// DataPointCounts are raw weight/waist data point counts for the current and
// previous 7-day windows. Display only, no decision logic reads them.
type DataPointCounts struct {
	Weight7     int `json:"weight7"`
	Waist7      int `json:"waist7"`
	Weight7Prev int `json:"weight7Prev"`
	Waist7Prev  int `json:"waist7Prev"`
}

// Summary is the full KPI report for a reference date: two independent
// trailing windows plus display-only data point counts.
type Summary struct {
	ReferenceDate string          `json:"referenceDate"`
	KPI7          WindowReport    `json:"kpis7"`
	KPI14         WindowReport    `json:"kpis14"`
	DataPoints    DataPointCounts `json:"dataPoints"`
}

// BuildSummary assembles the 7-day and 14-day KPI reports and runs the
// decision chain for the 14-day one.
func BuildSummary(s Snapshot, referenceDate string) Summary {
	summary := Summary{
		ReferenceDate: referenceDate,
		KPI7:          windowReport(s, referenceDate, 7),
		KPI14:         windowReport(s, referenceDate, 14),
		DataPoints:    dataPointCounts(s, referenceDate),
	}

	decision := Decide(s, referenceDate)
	perfIndex := decision.PerfIndex
	summary.KPI14.PerfIndex = &perfIndex
	summary.KPI14.Decision = decision.Decision
	summary.KPI14.Rationale = decision.Rationale

	return summary
}

func windowReport(s Snapshot, referenceDate string, days int) WindowReport {
	start, end := DateRange(days, referenceDate)
	prevStart, prevEnd := DateRange(days, AddDays(start, -1))

	curLogs := LogsInRange(s.Logs, start, end)
	curMeasurements := MeasurementsInRange(s.Measurements, start, end)
	prevLogs := LogsInRange(s.Logs, prevStart, prevEnd)
	prevMeasurements := MeasurementsInRange(s.Measurements, prevStart, prevEnd)

	weight := Average(curMeasurements, curLogs, WeeklyWeight, DailyWeight)
	waist := Latest(curMeasurements, curLogs, WeeklyWaist, DailyWaist)
	waistPrev := Latest(prevMeasurements, prevLogs, WeeklyWaist, DailyWaist)
	pain := Average(curMeasurements, curLogs, WeeklyPain, DailyPain)

	report := WindowReport{
		Days:          days,
		AvgWeightKg:   weight.Value,
		WeightSource:  weight.Source,
		LatestWaistCm: waist.Value,
		WaistSource:   waist.Source,
		WaistTrendCm:  Trend(waist, waistPrev),
		PainSource:    pain.Source,
		AdherencePct:  WindowAdherence(curLogs),
	}
	if pain.Value != nil {
		report.AvgLumbarPain = *pain.Value
	}

	return report
}

func dataPointCounts(s Snapshot, referenceDate string) DataPointCounts {
	curStart, curEnd := DateRange(7, referenceDate)
	prevStart, prevEnd := DateRange(7, AddDays(curStart, -1))

	weightCur, waistCur := countWindowPoints(s, curStart, curEnd)
	weightPrev, waistPrev := countWindowPoints(s, prevStart, prevEnd)

	return DataPointCounts{
		Weight7:     weightCur,
		Waist7:      waistCur,
		Weight7Prev: weightPrev,
		Waist7Prev:  waistPrev,
	}
}

func countWindowPoints(s Snapshot, start, end string) (weightPoints, waistPoints int) {
	for _, l := range LogsInRange(s.Logs, start, end) {
		if l.WeightKg != nil {
			weightPoints++
		}
		if l.WaistCm != nil {
			waistPoints++
		}
	}
	for _, m := range MeasurementsInRange(s.Measurements, start, end) {
		if m.WeightKg != nil {
			weightPoints++
		}
		if m.WaistCm != nil {
			waistPoints++
		}
	}
	return weightPoints, waistPoints
}
