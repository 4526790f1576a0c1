package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/kintorelog/internal/kintore"
	"github.com/2beens/kintorelog/internal/telemetry/metrics"
	"github.com/2beens/kintorelog/internal/telemetry/tracing"
	"github.com/2beens/kintorelog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=events_test

type eventCalendar interface {
	Add(ctx context.Context, date, title string) (*Event, error)
	Remove(ctx context.Context, id string) error
	List() []Event
	NextUpcoming(now time.Time) *Event
}

type AddEventRequest struct {
	Date  string `json:"date"`
	Title string `json:"title"`
}

// EventView is an Event decorated with the countdown to its day.
type EventView struct {
	Event
	DaysLeft int `json:"daysLeft"`
}

type ListEventsResponse struct {
	Events []EventView `json:"events"`
	Next   *EventView  `json:"next,omitempty"`
}

type Handler struct {
	calendar       eventCalendar
	location       *time.Location
	metricsManager *metrics.Manager
}

func NewHandler(calendar eventCalendar, location *time.Location, metricsManager *metrics.Manager) *Handler {
	if location == nil {
		location = time.Local
	}
	return &Handler{
		calendar:       calendar,
		location:       location,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.list")
	defer span.End()

	now := time.Now().In(handler.location)

	events := handler.calendar.List()
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, EventView{
			Event:    e,
			DaysLeft: kintore.DaysUntil(e.Date, now),
		})
	}

	resp := ListEventsResponse{Events: views}
	if next := handler.calendar.NextUpcoming(now); next != nil {
		resp.Next = &EventView{
			Event:    *next,
			DaysLeft: kintore.DaysUntil(next.Date, now),
		}
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal events list: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add event, unmarshal json params: %s", err)
		http.Error(w, "add event failed", http.StatusBadRequest)
		return
	}

	event, err := handler.calendar.Add(ctx, req.Date, req.Title)
	if err != nil {
		if errors.Is(err, ErrInvalidEvent) {
			http.Error(w, "error, event date and title are required", http.StatusBadRequest)
			return
		}
		log.Errorf("add event [%s] [%s]: %s", req.Date, req.Title, err)
		http.Error(w, "add event failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterEventsAdded.Inc()
	log.Debugf("new event added: [%s] %s", event.Date, event.Title)

	eventJson, err := json.Marshal(event)
	if err != nil {
		log.Errorf("failed to marshal added event: %s", err)
		http.Error(w, "add event failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, eventJson, http.StatusCreated)
}

func (handler *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.remove")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, event id is required", http.StatusBadRequest)
		return
	}

	if err := handler.calendar.Remove(ctx, id); err != nil {
		if errors.Is(err, ErrEventNotFound) {
			http.Error(w, "error, event not found", http.StatusNotFound)
			return
		}
		log.Errorf("remove event [%s]: %s", id, err)
		http.Error(w, "remove event failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("event removed: %s", id)
	pkg.WriteJSONResponseOK(w, `{"removed":"`+id+`"}`)
}
