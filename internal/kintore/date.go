package kintore

import (
	"math"
	"time"
)

// DayKeyFormat is the civil calendar day key used everywhere: dates are
// compared and grouped lexicographically as YYYY-MM-DD strings, never as
// UTC instants, so day grouping cannot drift around midnight.
const DayKeyFormat = "2006-01-02"

// DayKey returns the civil day key for the given moment, in its location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// ValidDayKey reports whether s is a well-formed YYYY-MM-DD day key.
func ValidDayKey(s string) bool {
	if len(s) != len(DayKeyFormat) {
		return false
	}
	_, err := time.Parse(DayKeyFormat, s)
	return err == nil
}

// DaysUntil returns the number of days from now until the given day key,
// rounded up, floored at zero. A day key of today or earlier gives 0.
func DaysUntil(dayKey string, now time.Time) int {
	target, err := time.ParseInLocation(DayKeyFormat, dayKey, now.Location())
	if err != nil {
		return 0
	}
	days := int(math.Ceil(target.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
