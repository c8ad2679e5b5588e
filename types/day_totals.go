package types

import "math"

// DayTotals is the element-wise sum of every CalculatedImpact logged for one
// (user, date), plus the derived green points. The backend keeps it as an
// additive running counter; FoldDay exists so the counter can be verified
// against a full replay of the day's activity logs.
type DayTotals struct {
	Co2eKg           float64 `json:"co2eKg"`
	AvoidedCo2eKg    float64 `json:"avoidedCo2eKg"`
	Kwh              float64 `json:"kwh"`
	WaterLiters      float64 `json:"waterLiters"`
	WaterSavedLiters float64 `json:"waterSavedLiters"`
	WasteKg          float64 `json:"wasteKg"`
	WasteDiverted    float64 `json:"wasteDiverted"`
	GreenPoints      int     `json:"greenPoints"`
}

// ApplyImpact adds one activity's impact to the running totals. Addition
// only - no activity can retroactively change another's contribution, so
// folding from zero in any order gives the same result.
func ApplyImpact(totals DayTotals, impact CalculatedImpact) DayTotals {
	totals.Co2eKg += impact.Co2eKg
	totals.AvoidedCo2eKg += impact.Avoided()
	totals.Kwh += impact.Kwh
	totals.WaterLiters += impact.WaterL
	totals.WaterSavedLiters += impact.WaterSavedL
	totals.WasteKg += impact.WasteKg
	totals.WasteDiverted += impact.WasteDiverted
	return totals
}

// FoldDay replays a day's impacts from zero. Equivalent to repeated
// ApplyImpact; used for verification and for rebuilding a corrupted counter.
func FoldDay(impacts []CalculatedImpact) DayTotals {
	var totals DayTotals
	for _, impact := range impacts {
		totals = ApplyImpact(totals, impact)
	}
	return totals
}

// DailyScore maps a day's emissions, avoidance and goal completion onto a
// 0-100 sustainability score. Base 50, emissions subtract up to 30 points,
// avoidance adds up to 30, goal completion adds up to 20; the sum is clamped
// to [0, 100] and rounded. The caps are independent, so the raw sum can leave
// the range before clamping.
func DailyScore(co2eKg, avoidedCo2eKg float64, goalsCompleted, totalGoals int) int {
	score := 50.0
	score -= math.Min(30, co2eKg*10)
	score += math.Min(30, avoidedCo2eKg*10)
	if totalGoals > 0 {
		score += float64(goalsCompleted) / float64(totalGoals) * 20
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}
