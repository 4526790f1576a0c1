package setlog

import (
	"math"
	"sort"
)

// The three tracked competition lifts charted in the progression view.
var TrackedLifts = []string{"Squat", "Bench", "Deadlift"}

// Point is one personal-record update: the day's best single-rep weight
// on the day the all-time record was broken.
type Point struct {
	Date  string  `json:"date"`
	OneRM float64 `json:"oneRM"`
}

// Progression derives, per tracked lift, the all-time-best single-rep
// progression from the raw log. Only reps==1 entries qualify; multiple
// attempts on one day collapse to the day's max; a point is emitted only
// when a day's max strictly exceeds every earlier day's, so the series
// is sparse and strictly increasing. The three series are independent
// and generally cover different dates.
func Progression(entries []Entry) map[string][]Point {
	tracked := make(map[string]bool, len(TrackedLifts))
	series := make(map[string][]Point, len(TrackedLifts))
	for _, lift := range TrackedLifts {
		tracked[lift] = true
		series[lift] = []Point{}
	}

	// best weight per lift per day
	dayMax := make(map[string]map[string]float64)
	for _, e := range entries {
		if e.Reps != 1 || !tracked[e.LiftID] {
			continue
		}
		if dayMax[e.LiftID] == nil {
			dayMax[e.LiftID] = make(map[string]float64)
		}
		if cur, ok := dayMax[e.LiftID][e.Date]; !ok || e.Weight > cur {
			dayMax[e.LiftID][e.Date] = e.Weight
		}
	}

	for lift, days := range dayMax {
		dates := make([]string, 0, len(days))
		for date := range days {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		best := math.Inf(-1)
		for _, date := range dates {
			if weight := days[date]; weight > best {
				best = weight
				series[lift] = append(series[lift], Point{Date: date, OneRM: weight})
			}
		}
	}

	return series
}
