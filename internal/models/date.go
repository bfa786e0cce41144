package models

import "time"

// DateLayout is the wire and query format for calendar days.
const DateLayout = "2006-01-02"

// Day truncates t to midnight UTC of its calendar day in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a UTC day.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
