package entity

import "time"

// CivilDate returns the calendar date of t as observed in loc, as midnight UTC.
// DATE columns come back from pgx in the same form, so values compare with ==.
func CivilDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses YYYY-MM-DD into a civil date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}
