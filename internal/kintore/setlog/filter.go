package setlog

import (
	"sort"

	"github.com/2beens/kintorelog/internal/kintore/refdata"
)

// Filter narrows the displayed log. The three filters are independent
// and conjunctive; zero values mean "no filter".
type Filter struct {
	Date   string
	Part   string
	LiftID string
}

// Group is one (date, lift) cluster of the filtered log view.
type Group struct {
	Date     string  `json:"date"`
	LiftID   string  `json:"liftId"`
	LiftName string  `json:"liftName"`
	Entries  []Entry `json:"entries"`
	Volume   float64 `json:"volume"`
}

// DayLiftSummary is the per-lift volume breakdown of a single day.
type DayLiftSummary struct {
	LiftID   string  `json:"liftId"`
	LiftName string  `json:"liftName"`
	Entries  []Entry `json:"entries"`
	Volume   float64 `json:"volume"`
}

// List applies the filter to the given entries (which must be in log
// order) and groups the survivors by (date, lift), groups ordered by
// that composite key descending, entries keeping log order within a
// group. Lift names come from the index; an orphaned lift id filters
// like an unknown part and displays as the raw id.
func List(entries []Entry, index map[string]refdata.Lift, f Filter) []Group {
	matched := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Date != "" && e.Date != f.Date {
			continue
		}
		if f.LiftID != "" && e.LiftID != f.LiftID {
			continue
		}
		if f.Part != "" {
			lift, ok := index[e.LiftID]
			if !ok || lift.Part != f.Part {
				continue
			}
		}
		matched = append(matched, e)
	}

	groupByKey := make(map[string]*Group)
	var keys []string
	for _, e := range matched {
		key := e.Date + "|" + e.LiftID
		g, ok := groupByKey[key]
		if !ok {
			g = &Group{
				Date:     e.Date,
				LiftID:   e.LiftID,
				LiftName: liftName(index, e.LiftID),
			}
			groupByKey[key] = g
			keys = append(keys, key)
		}
		g.Entries = append(g.Entries, e)
		g.Volume += e.Volume()
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, *groupByKey[key])
	}
	return groups
}

// DaySummary groups all entries of the given day by lift, in first-seen
// log order, with the total volume per lift. It always looks at the full
// log, not a filtered view.
func DaySummary(entries []Entry, index map[string]refdata.Lift, date string) []DayLiftSummary {
	byLift := make(map[string]*DayLiftSummary)
	var liftOrder []string
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		s, ok := byLift[e.LiftID]
		if !ok {
			s = &DayLiftSummary{
				LiftID:   e.LiftID,
				LiftName: liftName(index, e.LiftID),
			}
			byLift[e.LiftID] = s
			liftOrder = append(liftOrder, e.LiftID)
		}
		s.Entries = append(s.Entries, e)
		s.Volume += e.Volume()
	}

	summaries := make([]DayLiftSummary, 0, len(liftOrder))
	for _, liftID := range liftOrder {
		summaries = append(summaries, *byLift[liftID])
	}
	return summaries
}

func liftName(index map[string]refdata.Lift, id string) string {
	if lift, ok := index[id]; ok {
		return lift.Name
	}
	return id
}
