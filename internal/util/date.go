package util

import (
	"math"
	"time"
)

// MonthKeyFormat is the wire format for year-month keys (e.g. "2025-06").
const MonthKeyFormat = "2006-01"

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// Midnight truncates a timestamp to the start of its calendar day in UTC.
// All day-bucket math in the application goes through this to avoid
// timezone-boundary drift.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CurrentMonthKey returns the year-month key for the current UTC month.
func CurrentMonthKey() string {
	return time.Now().UTC().Format(MonthKeyFormat)
}

// MonthInterval parses a year-month key and returns the half-open interval
// [first day of the month, first day of the next month).
func MonthInterval(monthKey string) (start, end time.Time, err error) {
	start, err = time.Parse(MonthKeyFormat, monthKey)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}

// DaysBetweenCeil returns the duration between two timestamps in whole days,
// rounded up. A ten-day span from Jan 1 to Jan 11 yields 10.
func DaysBetweenCeil(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// DaysUntil returns the number of whole days from today's midnight to the
// deadline's midnight. Zero means the deadline is today; negative means it
// has passed.
func DaysUntil(deadline, today time.Time) int {
	return DaysBetweenCeil(Midnight(today), Midnight(deadline))
}
