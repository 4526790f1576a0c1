package setlog

import (
	"fmt"
	"time"
)

// Entry is a single logged set. A user action of "N sets" produces N
// entries sharing date/lift/weight/reps/note, each with Sets fixed to 1.
type Entry struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"` // YYYY-MM-DD civil day
	LiftID string  `json:"liftId"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	Sets   int     `json:"sets"`
	Note   string  `json:"note"`
}

// Volume is the training volume of the entry: weight x reps x sets.
func (e Entry) Volume() float64 {
	return e.Weight * float64(e.Reps) * float64(e.Sets)
}

func newBatch(date, liftID string, weight float64, reps, setCount int, note string, now time.Time) []Entry {
	idBase := fmt.Sprintf("%s-%s-%d", date, liftID, now.UnixMilli())
	batch := make([]Entry, 0, setCount)
	for i := 0; i < setCount; i++ {
		batch = append(batch, Entry{
			ID:     fmt.Sprintf("%s-%d", idBase, i),
			Date:   date,
			LiftID: liftID,
			Weight: weight,
			Reps:   reps,
			Sets:   1,
			Note:   note,
		})
	}
	return batch
}
