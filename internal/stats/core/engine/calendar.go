package engine

import "time"

// civilDay numbers calendar days consecutively, so two dates one day apart
// always differ by exactly 1 regardless of DST shifts.
type civilDay int64

const secondsPerDay = 24 * 60 * 60

// dayOf returns the calendar day of t as seen in loc.
func dayOf(t time.Time, loc *time.Location) civilDay {
	t = t.In(loc)
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return civilDay(midnight.Unix() / secondsPerDay)
}

