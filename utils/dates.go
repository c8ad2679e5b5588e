package utils

import "time"

const DayFormat = "2006-01-02"

// Today returns the current date key in local time.
func Today() string {
	return time.Now().Format(DayFormat)
}

// PeriodRange returns the inclusive [start, end] date keys for a rollup
// period ending today. "week" covers the last 7 calendar days, "month" the
// last 30; anything else defaults to a week.
func PeriodRange(periodType string, now time.Time) (string, string) {
	days := 7
	if periodType == "month" {
		days = 30
	}
	start := now.AddDate(0, 0, -(days - 1))
	return start.Format(DayFormat), now.Format(DayFormat)
}
