package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmpty(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	ledger := Aggregate(nil, nil, "week", now)

	assert.Equal(t, "week", ledger.PeriodType)
	assert.Equal(t, "2024-06-15", ledger.StartDate)
	assert.Equal(t, "2024-06-15", ledger.EndDate)
	assert.Zero(t, ledger.DaysTracked)
	assert.Zero(t, ledger.Totals.Co2eKg)
	assert.Zero(t, ledger.AverageDailyScore)
	// Slices must be present and empty, not nil, so the JSON shape is stable
	require.NotNil(t, ledger.TopCategories)
	require.NotNil(t, ledger.DailyTrend)
	assert.Empty(t, ledger.TopCategories)
	assert.Empty(t, ledger.DailyTrend)
}

func TestAggregateSumsAndAverages(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	sessions := []SessionSnapshot{
		{Date: "2024-06-14", Totals: DayTotals{Co2eKg: 2.2, Kwh: 3, WaterLiters: 54, GreenPoints: 80}, DailyScore: 40},
		{Date: "2024-06-12", Totals: DayTotals{Co2eKg: 1.0, AvoidedCo2eKg: 0.5, GreenPoints: 60}, DailyScore: 60},
		{Date: "2024-06-13", Totals: DayTotals{Co2eKg: 0.3, AvoidedCo2eKg: 1.2, GreenPoints: 120}, DailyScore: 80},
	}

	ledger := Aggregate(sessions, nil, "week", now)

	assert.Equal(t, "2024-06-12", ledger.StartDate)
	assert.Equal(t, "2024-06-14", ledger.EndDate)
	assert.Equal(t, 3, ledger.DaysTracked)
	assert.InDelta(t, 3.5, ledger.Totals.Co2eKg, epsilon)
	assert.InDelta(t, 1.7, ledger.Totals.AvoidedCo2eKg, epsilon)
	assert.InDelta(t, 3.0, ledger.Totals.Kwh, epsilon)
	assert.InDelta(t, 54.0, ledger.Totals.WaterLiters, epsilon)
	assert.Equal(t, 260, ledger.Totals.GreenPoints)
	assert.InDelta(t, 60.0, ledger.AverageDailyScore, epsilon)
}

func TestAggregateDailyTrendChronological(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	sessions := []SessionSnapshot{
		{Date: "2024-06-14", DailyScore: 40},
		{Date: "2024-06-12", DailyScore: 60},
		{Date: "2024-06-13", DailyScore: 80},
	}

	ledger := Aggregate(sessions, nil, "week", now)

	require.Len(t, ledger.DailyTrend, 3)
	assert.Equal(t, "2024-06-12", ledger.DailyTrend[0].Date)
	assert.Equal(t, "2024-06-13", ledger.DailyTrend[1].Date)
	assert.Equal(t, "2024-06-14", ledger.DailyTrend[2].Date)
	assert.Equal(t, 80, ledger.DailyTrend[1].Score)
}

func TestAggregateTopCategories(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	sessions := []SessionSnapshot{{Date: "2024-06-14"}}
	activities := []ActivitySnapshot{
		{ActivityType: "electricity", Co2eKg: 2.0},
		{ActivityType: "electricity", Co2eKg: 1.0},
		{ActivityType: "flights", Co2eKg: 6.0},
		{ActivityType: "waste", Co2eKg: 1.0},
	}

	ledger := Aggregate(sessions, activities, "month", now)

	require.Len(t, ledger.TopCategories, 3)
	assert.Equal(t, "flights", ledger.TopCategories[0].Category)
	assert.InDelta(t, 60.0, ledger.TopCategories[0].Percentage, epsilon)
	assert.Equal(t, "electricity", ledger.TopCategories[1].Category)
	assert.InDelta(t, 30.0, ledger.TopCategories[1].Percentage, epsilon)
	assert.Equal(t, "waste", ledger.TopCategories[2].Category)
	assert.InDelta(t, 10.0, ledger.TopCategories[2].Percentage, epsilon)
}

func TestAggregateTopCategoriesTieBreaksByName(t *testing.T) {
	now := time.Now()
	sessions := []SessionSnapshot{{Date: "2024-06-14"}}
	activities := []ActivitySnapshot{
		{ActivityType: "water", Co2eKg: 1.0},
		{ActivityType: "electricity", Co2eKg: 1.0},
	}

	ledger := Aggregate(sessions, activities, "week", now)

	require.Len(t, ledger.TopCategories, 2)
	assert.Equal(t, "electricity", ledger.TopCategories[0].Category)
	assert.Equal(t, "water", ledger.TopCategories[1].Category)
}

func TestAggregateZeroEmissionActivities(t *testing.T) {
	// All-avoidance days have a zero co2e total; percentages stay 0 rather
	// than dividing by zero.
	now := time.Now()
	sessions := []SessionSnapshot{{Date: "2024-06-14"}}
	activities := []ActivitySnapshot{
		{ActivityType: "materials", Co2eKg: 0},
	}

	ledger := Aggregate(sessions, activities, "week", now)

	require.Len(t, ledger.TopCategories, 1)
	assert.Zero(t, ledger.TopCategories[0].Percentage)
}

func TestCurrentStreak(t *testing.T) {
	today := time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

	t.Run("no sessions", func(t *testing.T) {
		assert.Equal(t, 0, CurrentStreak(nil, today))
	})

	t.Run("today only", func(t *testing.T) {
		assert.Equal(t, 1, CurrentStreak([]string{"2024-06-15"}, today))
	})

	t.Run("three consecutive days", func(t *testing.T) {
		dates := []string{"2024-06-15", "2024-06-14", "2024-06-13"}
		assert.Equal(t, 3, CurrentStreak(dates, today))
	})

	t.Run("gap resets the count", func(t *testing.T) {
		dates := []string{"2024-06-15", "2024-06-14", "2024-06-12", "2024-06-11"}
		assert.Equal(t, 2, CurrentStreak(dates, today))
	})

	t.Run("missed today breaks the streak", func(t *testing.T) {
		dates := []string{"2024-06-14", "2024-06-13"}
		assert.Equal(t, 0, CurrentStreak(dates, today))
	})

	t.Run("order does not matter", func(t *testing.T) {
		dates := []string{"2024-06-13", "2024-06-15", "2024-06-14"}
		assert.Equal(t, 3, CurrentStreak(dates, today))
	})

	t.Run("matches exact date keys only", func(t *testing.T) {
		// Keys are compared as text; a timestamp-shaped key for the same day
		// does not count. Storage must hand this function plain YYYY-MM-DD.
		dates := []string{"2024-06-15T00:00:00Z"}
		assert.Equal(t, 0, CurrentStreak(dates, today))
	})

	t.Run("crosses a month boundary", func(t *testing.T) {
		july := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
		dates := []string{"2024-07-01", "2024-06-30", "2024-06-29"}
		assert.Equal(t, 3, CurrentStreak(dates, july))
	})
}
