package setlog

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/2beens/kintorelog/internal/kintore"
	"github.com/2beens/kintorelog/internal/store"
	"github.com/2beens/kintorelog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var ErrInvalidEntry = errors.New("invalid set entry")

// Log is the append-only workout set log, the sole owner of Entry
// records. It keeps the entries sorted by date descending (most recent
// day first, newest batch first within a day) and rewrites the whole
// entries collection in the store on every mutation. Deletions go
// through a single-level undo buffer: only the most recent deletion can
// be undone, and only once.
type Log struct {
	mutex       sync.RWMutex
	entries     []Entry
	lastDeleted []Entry
	store       store.Store
}

func NewLog(ctx context.Context, st store.Store) *Log {
	l := &Log{
		store: st,
	}

	if blob, err := st.Get(ctx, store.KeyEntries); err == nil {
		var entries []Entry
		if jsonErr := json.Unmarshal(blob, &entries); jsonErr == nil {
			l.entries = entries
		} else {
			log.Errorf("load set entries: corrupt blob, starting empty: %s", jsonErr)
		}
	} else if !errors.Is(err, store.ErrKeyNotFound) {
		log.Errorf("load set entries: %s", err)
	}

	return l
}

// Entries returns a snapshot of the whole log, date descending.
func (l *Log) Entries() []Entry {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// AddBatch logs setCount sets of the same lift in one go. Nothing is
// created when any field fails validation.
func (l *Log) AddBatch(
	ctx context.Context,
	date, liftID string,
	weight float64,
	reps, setCount int,
	note string,
) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "setlog.addbatch")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))
	span.SetAttributes(attribute.String("lift", liftID))
	span.SetAttributes(attribute.Int("sets", setCount))

	if liftID == "" || !kintore.ValidDayKey(date) {
		return nil, ErrInvalidEntry
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, ErrInvalidEntry
	}
	if reps < 0 || setCount < 0 {
		return nil, ErrInvalidEntry
	}

	batch := newBatch(date, liftID, weight, reps, setCount, note, time.Now())

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.entries = append(batch, l.entries...)
	sortEntries(l.entries)
	l.persist(ctx)

	return batch, nil
}

// Delete removes all entries whose id is in ids and remembers them as
// the new undo buffer, replacing whatever was there before.
func (l *Log) Delete(ctx context.Context, ids []string) (deleted int) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "setlog.delete")
	defer span.End()
	span.SetAttributes(attribute.Int("ids", len(ids)))

	if len(ids) == 0 {
		return 0
	}

	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	var removed []Entry
	remaining := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if idSet[e.ID] {
			removed = append(removed, e)
		} else {
			remaining = append(remaining, e)
		}
	}

	l.entries = remaining
	l.lastDeleted = removed
	if len(removed) > 0 {
		l.persist(ctx)
	}
	return len(removed)
}

// Undo reinserts the last deleted batch and clears the buffer. A second
// undo without a deletion in between does nothing.
func (l *Log) Undo(ctx context.Context) (restored int) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "setlog.undo")
	defer span.End()

	l.mutex.Lock()
	defer l.mutex.Unlock()

	if len(l.lastDeleted) == 0 {
		return 0
	}

	restored = len(l.lastDeleted)
	l.entries = append(l.lastDeleted, l.entries...)
	sortEntries(l.entries)
	l.lastDeleted = nil
	l.persist(ctx)
	return restored
}

// sortEntries orders by date descending only; the stable sort keeps
// insertion order within a day, so the freshest (prepended) batch of a
// day stays on top.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
}

// persist rewrites the whole entries collection; failures are logged and
// the in-memory log stays authoritative. Callers must hold the mutex.
func (l *Log) persist(ctx context.Context) {
	entries := l.entries
	if entries == nil {
		entries = []Entry{}
	}
	blob, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal set entries: %s", err)
		return
	}
	if err := l.store.Set(ctx, store.KeyEntries, blob); err != nil {
		log.Errorf("persist set entries: %s", err)
	}
}
