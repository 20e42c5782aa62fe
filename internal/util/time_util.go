package util

import (
	"time"
)

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay strips time-of-day in UTC so date comparisons are exact
// and independent of when the simulation runs.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonthClamped adds one calendar month, clamping to the last day of
// the target month. Jan 31 -> Feb 28 (29 in leap years), not Mar 3.
// time.AddDate does not clamp, so the day is resolved by hand.
func AddMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	lastOfNext := time.Date(year, month+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastOfNext {
		day = lastOfNext
	}
	return time.Date(year, month+1, day, 0, 0, 0, 0, t.Location())
}
