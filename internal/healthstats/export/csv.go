package export

import (
	"strconv"
	"strings"

	"github.com/2beens/healthstats/internal/healthstats"
)

// CSVHeader is the fixed column set of the day log CSV export. Day columns
// repeat on every row of a day; meal and workout columns are zipped
// positionally and blank where one side runs out.
const CSVHeader = "date,type,weight_kg,waist_cm,sleep_h,steps,lumbar_pain,adherence," +
	"meal_slot,meal_name,meal_p,meal_f,meal_c,meal_kcal,meal_source," +
	"exercise,sets,reps,set_weight_kg,rir"

// DayLogsCSV renders the logs as one CSV document, input order preserved.
// Each log produces max(meals, workout entries, 1) rows. Lines are joined
// with \n and the document does not end with a newline.
func DayLogsCSV(logs []healthstats.DayLog) string {
	var sb strings.Builder
	sb.WriteString(CSVHeader)

	for _, l := range logs {
		rows := len(l.Meals)
		if len(l.Workout) > rows {
			rows = len(l.Workout)
		}
		if rows == 0 {
			rows = 1
		}

		dayCols := []string{
			l.Date,
			string(l.DayType),
			floatCol(l.WeightKg),
			floatCol(l.WaistCm),
			floatCol(l.SleepHours),
			intCol(l.Steps),
			intCol(l.LumbarPain),
			strconv.Itoa(l.Adherence.NutritionPercent),
		}

		for i := 0; i < rows; i++ {
			cols := make([]string, 0, 20)
			cols = append(cols, dayCols...)

			if i < len(l.Meals) {
				m := l.Meals[i]
				cols = append(cols,
					string(m.Slot),
					m.Name,
					formatFloat(m.P),
					formatFloat(m.F),
					formatFloat(m.C),
					formatFloat(m.Kcal),
					string(m.Source),
				)
			} else {
				cols = append(cols, "", "", "", "", "", "", "")
			}

			if i < len(l.Workout) {
				set := l.Workout[i]
				cols = append(cols,
					set.ResolvedExerciseID(),
					strconv.Itoa(set.Sets),
					strconv.Itoa(set.Reps),
					formatFloat(set.WeightKg),
					floatCol(set.RIR),
				)
			} else {
				cols = append(cols, "", "", "", "", "")
			}

			sb.WriteByte('\n')
			for j, c := range cols {
				if j > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(escapeCSV(c))
			}
		}
	}

	return sb.String()
}

// escapeCSV wraps values containing a comma, quote or newline in double
// quotes, doubling internal quotes.
func escapeCSV(v string) string {
	if !strings.ContainsAny(v, ",\"\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func floatCol(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func intCol(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
