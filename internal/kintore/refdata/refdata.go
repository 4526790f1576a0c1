package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/2beens/kintorelog/internal/store"
	"github.com/2beens/kintorelog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrEmptyName     = errors.New("name is empty")
	ErrProtectedLift = errors.New("lift is protected and cannot be removed")
	ErrLiftNotFound  = errors.New("lift not found")
)

// Lift is a known exercise, assigned to one body part.
// The id is derived from the name at creation and never changes.
type Lift struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Part string `json:"part"`
}

// FallbackPart is reinstated when the last body part is removed, and
// receives the lifts of any removed part.
const FallbackPart = "胸"

// the three tracked competition lifts can never be removed
var protectedLiftIDs = map[string]bool{
	"Squat":    true,
	"Bench":    true,
	"Deadlift": true,
}

func IsProtectedLift(id string) bool {
	return protectedLiftIDs[id]
}

func defaultParts() []string {
	return []string{"胸", "脚", "背中", "肩", "三頭", "二頭"}
}

func defaultLifts() []Lift {
	return []Lift{
		{ID: "Bench", Name: "ベンチプレス", Part: "胸"},
		{ID: "Squat", Name: "スクワット", Part: "脚"},
		{ID: "Deadlift", Name: "デッドリフト", Part: "背中"},
	}
}

// Manager owns the mutable body part and lift lists. Every mutation
// rewrites the affected collection in the store.
type Manager struct {
	mutex sync.RWMutex
	parts []string
	lifts []Lift
	store store.Store
}

func NewManager(ctx context.Context, st store.Store) *Manager {
	m := &Manager{
		store: st,
	}

	m.parts = defaultParts()
	if blob, err := st.Get(ctx, store.KeyParts); err == nil {
		var parts []string
		if jsonErr := json.Unmarshal(blob, &parts); jsonErr == nil {
			m.parts = parts
		} else {
			log.Errorf("load parts: corrupt blob, using defaults: %s", jsonErr)
		}
	} else if !errors.Is(err, store.ErrKeyNotFound) {
		log.Errorf("load parts: %s", err)
	}

	m.lifts = defaultLifts()
	if blob, err := st.Get(ctx, store.KeyLifts); err == nil {
		var lifts []Lift
		if jsonErr := json.Unmarshal(blob, &lifts); jsonErr == nil {
			m.lifts = lifts
		} else {
			log.Errorf("load lifts: corrupt blob, using defaults: %s", jsonErr)
		}
	} else if !errors.Is(err, store.ErrKeyNotFound) {
		log.Errorf("load lifts: %s", err)
	}

	// the parts list must never be empty
	if len(m.parts) == 0 {
		m.parts = []string{FallbackPart}
	}

	return m
}

func (m *Manager) Parts() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	parts := make([]string, len(m.parts))
	copy(parts, m.parts)
	return parts
}

func (m *Manager) Lifts() []Lift {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	lifts := make([]Lift, len(m.lifts))
	copy(lifts, m.lifts)
	return lifts
}

// Index returns the lifts keyed by id.
func (m *Manager) Index() map[string]Lift {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	index := make(map[string]Lift, len(m.lifts))
	for _, l := range m.lifts {
		index[l.ID] = l
	}
	return index
}

// LiftName resolves a lift id to its display name. Entries referencing a
// deleted lift stay in the log, shown by their raw id.
func (m *Manager) LiftName(id string) string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	for _, l := range m.lifts {
		if l.ID == id {
			return l.Name
		}
	}
	return id
}

// AddPart appends a new body part. Adding an already present part is a
// no-op, reported through the added return value.
func (m *Manager) AddPart(ctx context.Context, name string) (added bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "refdata.addpart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("part", name))

	if name == "" {
		return false, ErrEmptyName
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, p := range m.parts {
		if p == name {
			return false, nil
		}
	}

	m.parts = append(m.parts, name)
	m.persistParts(ctx)
	return true, nil
}

// RemovePart removes a body part. Lifts assigned to it move to the first
// remaining part, and the parts list is never left empty.
func (m *Manager) RemovePart(ctx context.Context, name string) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "refdata.removepart")
	defer span.End()
	span.SetAttributes(attribute.String("part", name))

	m.mutex.Lock()
	defer m.mutex.Unlock()

	remaining := make([]string, 0, len(m.parts))
	for _, p := range m.parts {
		if p != name {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(m.parts) {
		return
	}

	fallback := FallbackPart
	if len(remaining) > 0 {
		fallback = remaining[0]
	} else {
		remaining = []string{FallbackPart}
	}
	m.parts = remaining
	m.persistParts(ctx)

	liftsTouched := false
	for i := range m.lifts {
		if m.lifts[i].Part == name {
			m.lifts[i].Part = fallback
			liftsTouched = true
		}
	}
	if liftsTouched {
		m.persistLifts(ctx)
	}
}

// AddLift creates a new lift; the id is the name itself. Adding a lift
// whose id already exists is a no-op.
func (m *Manager) AddLift(ctx context.Context, name, part string) (_ *Lift, added bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "refdata.addlift")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("lift", name))

	if name == "" {
		return nil, false, ErrEmptyName
	}
	if part == "" {
		part = FallbackPart
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, l := range m.lifts {
		if l.ID == name {
			existing := l
			return &existing, false, nil
		}
	}

	lift := Lift{ID: name, Name: name, Part: part}
	m.lifts = append(m.lifts, lift)
	m.persistLifts(ctx)
	return &lift, true, nil
}

// RemoveLift removes a lift by id. The tracked competition lifts are
// refused; log entries referencing the removed lift are left alone.
func (m *Manager) RemoveLift(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "refdata.removelift")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("lift", id))

	if IsProtectedLift(id) {
		return ErrProtectedLift
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	remaining := make([]Lift, 0, len(m.lifts))
	for _, l := range m.lifts {
		if l.ID != id {
			remaining = append(remaining, l)
		}
	}
	if len(remaining) == len(m.lifts) {
		return nil
	}

	m.lifts = remaining
	m.persistLifts(ctx)
	return nil
}

// ReassignLiftPart overwrites the part of an existing lift.
func (m *Manager) ReassignLiftPart(ctx context.Context, id, part string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "refdata.reassignliftpart")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("lift", id))
	span.SetAttributes(attribute.String("part", part))

	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i := range m.lifts {
		if m.lifts[i].ID == id {
			m.lifts[i].Part = part
			m.persistLifts(ctx)
			return nil
		}
	}
	return ErrLiftNotFound
}

// persistParts rewrites the whole parts collection; a failed write is
// logged and the in-memory state stays authoritative.
// Callers must hold the mutex.
func (m *Manager) persistParts(ctx context.Context) {
	blob, err := json.Marshal(m.parts)
	if err != nil {
		log.Errorf("marshal parts: %s", err)
		return
	}
	if err := m.store.Set(ctx, store.KeyParts, blob); err != nil {
		log.Errorf("persist parts: %s", err)
	}
}

func (m *Manager) persistLifts(ctx context.Context) {
	blob, err := json.Marshal(m.lifts)
	if err != nil {
		log.Errorf("marshal lifts: %s", err)
		return
	}
	if err := m.store.Set(ctx, store.KeyLifts, blob); err != nil {
		log.Errorf("persist lifts: %s", err)
	}
}
