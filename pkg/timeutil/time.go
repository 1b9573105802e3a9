package timeutil

import "time"

// DateLayout is the layout used for dates in job files and reports (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// Now returns the current time in UTC
// Always use this instead of time.Now() to ensure timezone consistency
func Now() time.Time {
	return time.Now().UTC()
}

// ParseDate parses a YYYY-MM-DD string and returns midnight UTC of that day
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(t), nil
}

// StartOfDay returns the start of the day (midnight) in UTC
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days of the given month
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonthsClamped moves t forward by n calendar months keeping the day of month.
// When the target month is shorter, the result is clamped to its last day
// (Jan 31 + 1 month = Feb 28/29), unlike time.AddDate which overflows into March.
func AddMonthsClamped(t time.Time, n int) time.Time {
	t = StartOfDay(t)
	year, month, day := t.Date()

	// Normalize through the first of the month so AddDate cannot overflow.
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	if last := DaysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}
