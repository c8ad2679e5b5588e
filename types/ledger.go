package types

import (
	"sort"
	"time"
)

const dayFormat = "2006-01-02"

// SessionSnapshot is the slice of a day session the ledger needs: its date
// key, running totals and score. Controllers map persistence rows into this
// so the fold itself stays pure.
type SessionSnapshot struct {
	Date       string
	Totals     DayTotals
	DailyScore int
}

// ActivitySnapshot carries the per-activity fields used for category
// breakdowns.
type ActivitySnapshot struct {
	ActivityType string
	Co2eKg       float64
}

type CategoryBreakdown struct {
	Category   string  `json:"category"`
	Co2eKg     float64 `json:"co2eKg"`
	Percentage float64 `json:"percentage"`
}

type DailyTrendPoint struct {
	Date          string  `json:"date"`
	Co2eKg        float64 `json:"co2eKg"`
	AvoidedCo2eKg float64 `json:"avoidedCo2eKg"`
	Score         int     `json:"score"`
}

// LedgerPeriod is a derived week/month rollup. It is recomputed on demand
// and never persisted.
type LedgerPeriod struct {
	PeriodType        string              `json:"periodType"`
	StartDate         string              `json:"startDate"`
	EndDate           string              `json:"endDate"`
	Totals            DayTotals           `json:"totals"`
	AverageDailyScore float64             `json:"averageDailyScore"`
	DaysTracked       int                 `json:"daysTracked"`
	TopCategories     []CategoryBreakdown `json:"topCategories"`
	DailyTrend        []DailyTrendPoint   `json:"dailyTrend"`
}

// Aggregate folds day sessions and their activities into a period rollup.
// Empty input returns a well-formed zero-valued ledger dated to now, so
// callers never have to special-case absence of data.
func Aggregate(sessions []SessionSnapshot, activities []ActivitySnapshot, periodType string, now time.Time) LedgerPeriod {
	ledger := LedgerPeriod{
		PeriodType:    periodType,
		StartDate:     now.Format(dayFormat),
		EndDate:       now.Format(dayFormat),
		TopCategories: []CategoryBreakdown{},
		DailyTrend:    []DailyTrendPoint{},
	}
	if len(sessions) == 0 {
		return ledger
	}

	ordered := make([]SessionSnapshot, len(sessions))
	copy(ordered, sessions)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Date < ordered[j].Date })

	ledger.StartDate = ordered[0].Date
	ledger.EndDate = ordered[len(ordered)-1].Date
	ledger.DaysTracked = len(ordered)

	scoreSum := 0
	for _, session := range ordered {
		t := session.Totals
		ledger.Totals.Co2eKg += t.Co2eKg
		ledger.Totals.AvoidedCo2eKg += t.AvoidedCo2eKg
		ledger.Totals.Kwh += t.Kwh
		ledger.Totals.WaterLiters += t.WaterLiters
		ledger.Totals.WaterSavedLiters += t.WaterSavedLiters
		ledger.Totals.WasteKg += t.WasteKg
		ledger.Totals.WasteDiverted += t.WasteDiverted
		ledger.Totals.GreenPoints += t.GreenPoints
		scoreSum += session.DailyScore

		ledger.DailyTrend = append(ledger.DailyTrend, DailyTrendPoint{
			Date:          session.Date,
			Co2eKg:        t.Co2eKg,
			AvoidedCo2eKg: t.AvoidedCo2eKg,
			Score:         session.DailyScore,
		})
	}
	ledger.AverageDailyScore = float64(scoreSum) / float64(len(ordered))
	ledger.TopCategories = categoryBreakdown(activities)

	return ledger
}

func categoryBreakdown(activities []ActivitySnapshot) []CategoryBreakdown {
	byCategory := make(map[string]float64)
	total := 0.0
	for _, activity := range activities {
		byCategory[activity.ActivityType] += activity.Co2eKg
		total += activity.Co2eKg
	}

	breakdown := make([]CategoryBreakdown, 0, len(byCategory))
	for category, co2e := range byCategory {
		entry := CategoryBreakdown{Category: category, Co2eKg: co2e}
		if total > 0 {
			entry.Percentage = co2e / total * 100
		}
		breakdown = append(breakdown, entry)
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Co2eKg != breakdown[j].Co2eKg {
			return breakdown[i].Co2eKg > breakdown[j].Co2eKg
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// CurrentStreak counts the most recent run of consecutive calendar days with
// a session, walking back one day at a time from today. Any gap terminates
// the count.
func CurrentStreak(sessionDates []string, today time.Time) int {
	seen := make(map[string]bool, len(sessionDates))
	for _, date := range sessionDates {
		seen[date] = true
	}

	streak := 0
	expected := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for seen[expected.Format(dayFormat)] {
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
