package events

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/2beens/kintorelog/internal/kintore"
	"github.com/2beens/kintorelog/internal/store"
	"github.com/2beens/kintorelog/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrInvalidEvent  = errors.New("invalid event date or title")
	ErrEventNotFound = errors.New("event not found")
)

// Calendar owns the event collection. Events are held sorted ascending
// by date, persisted as one JSON blob.
type Calendar struct {
	mutex  sync.RWMutex
	events []Event
	store  store.Store
}

func NewCalendar(ctx context.Context, st store.Store) *Calendar {
	c := &Calendar{
		store: st,
	}

	blob, err := st.Get(ctx, store.KeyEvents)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			log.Errorf("calendar: load events: %s", err)
		}
		return c
	}

	var events []Event
	if err := json.Unmarshal(blob, &events); err != nil {
		// corrupt blob, start from an empty calendar
		log.Errorf("calendar: unmarshal events blob: %s", err)
		return c
	}

	sortEvents(events)
	c.events = events
	return c
}

// Add appends a new event and returns it with a fresh id.
func (c *Calendar) Add(ctx context.Context, date, title string) (_ *Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calendar.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	if title == "" || !kintore.ValidDayKey(date) {
		return nil, ErrInvalidEvent
	}

	event := Event{
		ID:    uuid.NewString(),
		Date:  date,
		Title: title,
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.events = append(c.events, event)
	sortEvents(c.events)
	c.persist(ctx)

	return &event, nil
}

// Remove deletes an event by id.
func (c *Calendar) Remove(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calendar.remove")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("event.id", id))

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for i, e := range c.events {
		if e.ID == id {
			c.events = append(c.events[:i], c.events[i+1:]...)
			c.persist(ctx)
			return nil
		}
	}
	return ErrEventNotFound
}

// List returns a snapshot of all events, ascending by date.
func (c *Calendar) List() []Event {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	snapshot := make([]Event, len(c.events))
	copy(snapshot, c.events)
	return snapshot
}

// NextUpcoming returns the earliest event on or after now's civil day,
// or nil when no event is ahead.
func (c *Calendar) NextUpcoming(now time.Time) *Event {
	today := kintore.DayKey(now)

	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, e := range c.events {
		if e.Date >= today {
			event := e
			return &event
		}
	}
	return nil
}

// sortEvents orders ascending by date; the stable sort keeps insertion
// order within a day.
func sortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
}

// persist rewrites the whole events collection; failures are logged and
// the in-memory state stays authoritative. Callers must hold the mutex.
func (c *Calendar) persist(ctx context.Context) {
	events := c.events
	if events == nil {
		events = []Event{}
	}

	blob, err := json.Marshal(events)
	if err != nil {
		log.Errorf("calendar: marshal events: %s", err)
		return
	}
	if err := c.store.Set(ctx, store.KeyEvents, blob); err != nil {
		log.Errorf("calendar: persist events: %s", err)
	}
}
