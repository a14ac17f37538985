package utils

import (
	"time"
)

// DayKeyLayout is the storage format for UTC day-keys on balance records.
const DayKeyLayout = "2006-01-02"

// DayKey returns the UTC calendar day-key for t. Two instants share a day-key
// exactly when they fall on the same UTC calendar date, so the once-per-day gate
// is a string equality check rather than a rolling 24 hour window.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayKeyLayout)
}

// TodayKey returns the day-key for the current instant.
func TodayKey() string {
	return DayKey(time.Now())
}
