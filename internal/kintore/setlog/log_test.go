package setlog_test

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/2beens/kintorelog/internal/kintore/setlog"
	"github.com/2beens/kintorelog/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestLog(t *testing.T) (*setlog.Log, *store.TestStore) {
	t.Helper()
	ts := store.NewTestStore()
	return setlog.NewLog(context.Background(), ts), ts
}

func TestNewLog_EmptyStore(t *testing.T) {
	l, _ := newTestLog(t)
	assert.Empty(t, l.Entries())
}

func TestNewLog_CorruptBlobStartsEmpty(t *testing.T) {
	ts := store.NewTestStore()
	ts.Seed(store.KeyEntries, []byte(`]broken[`))

	l := setlog.NewLog(context.Background(), ts)
	assert.Empty(t, l.Entries())
}

func TestAddBatch(t *testing.T) {
	l, ts := newTestLog(t)
	ctx := context.Background()

	batch, err := l.AddBatch(ctx, "2025-08-10", "Squat", 120, 5, 3, "felt heavy")
	require.NoError(t, err)
	require.Len(t, batch, 3)

	for _, e := range batch {
		assert.Equal(t, "2025-08-10", e.Date)
		assert.Equal(t, "Squat", e.LiftID)
		assert.Equal(t, float64(120), e.Weight)
		assert.Equal(t, 5, e.Reps)
		assert.Equal(t, 1, e.Sets)
		assert.Equal(t, "felt heavy", e.Note)
		assert.NotEmpty(t, e.ID)
	}
	// ids are unique within the batch
	assert.NotEqual(t, batch[0].ID, batch[1].ID)

	assert.Len(t, l.Entries(), 3)

	// the whole log is rewritten in the store
	blob, err := ts.Get(ctx, store.KeyEntries)
	require.NoError(t, err)
	var persisted []setlog.Entry
	require.NoError(t, json.Unmarshal(blob, &persisted))
	assert.Equal(t, l.Entries(), persisted)
}

func TestAddBatch_SortedDateDescendingNewestBatchFirst(t *testing.T) {
	l, _ := newTestLog(t)
	ctx := context.Background()

	_, err := l.AddBatch(ctx, "2025-08-10", "Squat", 100, 5, 1, "")
	require.NoError(t, err)
	_, err = l.AddBatch(ctx, "2025-08-12", "Bench", 80, 5, 1, "")
	require.NoError(t, err)
	_, err = l.AddBatch(ctx, "2025-08-10", "Deadlift", 140, 5, 1, "")
	require.NoError(t, err)

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Bench", entries[0].LiftID)
	// same-date ties keep the newest batch first
	assert.Equal(t, "Deadlift", entries[1].LiftID)
	assert.Equal(t, "Squat", entries[2].LiftID)
}

func TestAddBatch_Validation(t *testing.T) {
	l, _ := newTestLog(t)
	ctx := context.Background()

	testCases := []struct {
		name     string
		date     string
		liftID   string
		weight   float64
		reps     int
		setCount int
	}{
		{name: "empty date", date: "", liftID: "Squat", weight: 100, reps: 1, setCount: 1},
		{name: "bad date", date: "12.08.2025", liftID: "Squat", weight: 100, reps: 1, setCount: 1},
		{name: "empty lift", date: "2025-08-12", liftID: "", weight: 100, reps: 1, setCount: 1},
		{name: "negative weight", date: "2025-08-12", liftID: "Squat", weight: -1, reps: 1, setCount: 1},
		{name: "negative reps", date: "2025-08-12", liftID: "Squat", weight: 100, reps: -1, setCount: 1},
		{name: "negative sets", date: "2025-08-12", liftID: "Squat", weight: 100, reps: 1, setCount: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := l.AddBatch(ctx, tc.date, tc.liftID, tc.weight, tc.reps, tc.setCount, "")
			assert.ErrorIs(t, err, setlog.ErrInvalidEntry)
			assert.Empty(t, l.Entries())
		})
	}
}

func TestAddBatch_NonFiniteWeight(t *testing.T) {
	l, _ := newTestLog(t)
	ctx := context.Background()

	nan := math.NaN()
	_, err := l.AddBatch(ctx, "2025-08-12", "Squat", nan, 1, 1, "")
	assert.ErrorIs(t, err, setlog.ErrInvalidEntry)

	_, err = l.AddBatch(ctx, "2025-08-12", "Squat", math.Inf(1), 1, 1, "")
	assert.ErrorIs(t, err, setlog.ErrInvalidEntry)

	assert.Empty(t, l.Entries())
}

func TestDeleteAndUndo(t *testing.T) {
	l, _ := newTestLog(t)
	ctx := context.Background()

	batch, err := l.AddBatch(ctx, "2025-08-10", "Squat", 100, 5, 2, "")
	require.NoError(t, err)
	_, err = l.AddBatch(ctx, "2025-08-11", "Bench", 80, 5, 1, "")
	require.NoError(t, err)
	require.Len(t, l.Entries(), 3)

	deleted := l.Delete(ctx, []string{batch[0].ID, batch[1].ID})
	assert.Equal(t, 2, deleted)
	assert.Len(t, l.Entries(), 1)

	restored := l.Undo(ctx)
	assert.Equal(t, 2, restored)

	entries := l.Entries()
	require.Len(t, entries, 3)
	ids := make(map[string]bool)
	for _, e := range entries {
		ids[e.ID] = true
	}
	assert.True(t, ids[batch[0].ID])
	assert.True(t, ids[batch[1].ID])

	// the undo buffer is single-shot
	assert.Equal(t, 0, l.Undo(ctx))
	assert.Len(t, l.Entries(), 3)
}

func TestDelete_ReplacesUndoBuffer(t *testing.T) {
	l, _ := newTestLog(t)
	ctx := context.Background()

	first, err := l.AddBatch(ctx, "2025-08-10", "Squat", 100, 5, 1, "")
	require.NoError(t, err)
	second, err := l.AddBatch(ctx, "2025-08-11", "Bench", 80, 5, 1, "")
	require.NoError(t, err)

	l.Delete(ctx, []string{first[0].ID})
	l.Delete(ctx, []string{second[0].ID})

	// only the most recent deletion is undoable
	assert.Equal(t, 1, l.Undo(ctx))
	entries := l.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, second[0].ID, entries[0].ID)
}

func TestDelete_UnknownIDs(t *testing.T) {
	l, _ := newTestLog(t)
	ctx := context.Background()

	_, err := l.AddBatch(ctx, "2025-08-10", "Squat", 100, 5, 1, "")
	require.NoError(t, err)

	assert.Equal(t, 0, l.Delete(ctx, []string{"no-such-id"}))
	assert.Len(t, l.Entries(), 1)
}

func TestLog_SurvivesStoreFailure(t *testing.T) {
	l, ts := newTestLog(t)
	ts.SetErr = assert.AnError

	batch, err := l.AddBatch(context.Background(), "2025-08-10", "Squat", 100, 5, 1, "")
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Len(t, l.Entries(), 1)
}
