package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodRange(t *testing.T) {
	now := time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)

	start, end := PeriodRange("week", now)
	assert.Equal(t, "2024-06-09", start)
	assert.Equal(t, "2024-06-15", end)

	start, end = PeriodRange("month", now)
	assert.Equal(t, "2024-05-17", start)
	assert.Equal(t, "2024-06-15", end)

	// Unknown period types fall back to a week
	start, end = PeriodRange("quarter", now)
	assert.Equal(t, "2024-06-09", start)
	assert.Equal(t, "2024-06-15", end)
}

func TestPeriodRangeCrossesYearBoundary(t *testing.T) {
	now := time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC)
	start, end := PeriodRange("week", now)
	assert.Equal(t, "2023-12-28", start)
	assert.Equal(t, "2024-01-03", end)
}
