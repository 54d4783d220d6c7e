package utils

import "time"

// DateLayout is the calendar-date wire format used across the connector.
const DateLayout = "2006-01-02"

// DateString truncates a timestamp to its calendar date in ISO format.
func DateString(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly strips the time component, keeping year/month/day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// OpenEndedRange formats a date as an open-ended PostgreSQL date range,
// e.g. "[2024-03-10,)".
func OpenEndedRange(start time.Time) string {
	return "[" + DateString(start) + ",)"
}

// LaterDate returns the later of two calendar dates.
func LaterDate(a, b time.Time) time.Time {
	if DateOnly(b).After(DateOnly(a)) {
		return DateOnly(b)
	}
	return DateOnly(a)
}

// DaysBetween enumerates every calendar day from start to end inclusive.
// Returns nil when start is after end.
func DaysBetween(start, end time.Time) []time.Time {
	start = DateOnly(start)
	end = DateOnly(end)
	if start.After(end) {
		return nil
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
