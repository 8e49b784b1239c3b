package healthstats

import "time"

// DecisionEvent is a persisted engine outcome, recorded when the operator
// accepts a biweekly check-in. Decision and the signal fields are copied
// from the engine result as computed at that moment.
type DecisionEvent struct {
	ID          int       `json:"id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Decision    string    `json:"decision"`
	Rationale   string    `json:"rationale"`
	Adherence14 int       `json:"adherence14"`
	PerfIndex   float64   `json:"perfIndex"`
	PainSpike   bool      `json:"painSpike"`
	CreatedAt   time.Time `json:"createdAt"`
}
