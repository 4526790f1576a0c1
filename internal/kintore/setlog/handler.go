package setlog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/kintorelog/internal/kintore"
	"github.com/2beens/kintorelog/internal/kintore/refdata"
	"github.com/2beens/kintorelog/internal/telemetry/metrics"
	"github.com/2beens/kintorelog/internal/telemetry/tracing"
	"github.com/2beens/kintorelog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=setlog_test

type setLog interface {
	AddBatch(ctx context.Context, date, liftID string, weight float64, reps, setCount int, note string) ([]Entry, error)
	Delete(ctx context.Context, ids []string) int
	Undo(ctx context.Context) int
	Entries() []Entry
}

type liftIndex interface {
	Index() map[string]refdata.Lift
}

type AddBatchRequest struct {
	Date   string  `json:"date"`
	LiftID string  `json:"liftId"`
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	Sets   int     `json:"sets"`
	Note   string  `json:"note"`
}

type DeleteRequest struct {
	IDs []string `json:"ids"`
}

type DeleteResponse struct {
	Deleted int `json:"deleted"`
}

type UndoResponse struct {
	Restored int `json:"restored"`
}

type ListResponse struct {
	Groups     []Group          `json:"groups"`
	Total      int              `json:"total"`
	DaySummary []DayLiftSummary `json:"daySummary,omitempty"`
}

type Handler struct {
	log            setLog
	lifts          liftIndex
	metricsManager *metrics.Manager
}

func NewHandler(setLog setLog, lifts liftIndex, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		log:            setLog,
		lifts:          lifts,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAddBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.setlog.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add set entries, unmarshal json params: %s", err)
		http.Error(w, "add set entries failed", http.StatusBadRequest)
		return
	}

	batch, err := handler.log.AddBatch(ctx, req.Date, req.LiftID, req.Weight, req.Reps, req.Sets, req.Note)
	if err != nil {
		if errors.Is(err, ErrInvalidEntry) {
			http.Error(w, "error, invalid date, lift, weight, reps or set count", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add set entries [%s] [%s]: %s", req.Date, req.LiftID, err)
		http.Error(w, "error, failed to add set entries", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterSetEntriesAdded.Add(float64(len(batch)))
	log.Debugf("added %d set entries: [%s] [%s]", len(batch), req.Date, req.LiftID)

	batchJson, err := json.Marshal(batch)
	if err != nil {
		log.Errorf("failed to marshal added set entries: %s", err)
		http.Error(w, "error, failed to add set entries", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, batchJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.setlog.list")
	defer span.End()

	filter := Filter{
		Date:   r.URL.Query().Get("date"),
		Part:   r.URL.Query().Get("part"),
		LiftID: r.URL.Query().Get("lift_id"),
	}

	if filter.Date != "" && !kintore.ValidDayKey(filter.Date) {
		http.Error(w, "error, invalid date filter", http.StatusBadRequest)
		return
	}

	entries := handler.log.Entries()
	index := handler.lifts.Index()

	groups := List(entries, index, filter)
	total := 0
	for _, g := range groups {
		total += len(g.Entries)
	}

	resp := ListResponse{
		Groups: groups,
		Total:  total,
	}
	// the day summary covers the whole log of that day, not the
	// part/lift filtered subset
	if filter.Date != "" {
		resp.DaySummary = DaySummary(entries, index, filter.Date)
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal set entries list: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.setlog.delete")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("delete set entries, unmarshal json params: %s", err)
		http.Error(w, "delete set entries failed", http.StatusBadRequest)
		return
	}

	deleted := handler.log.Delete(ctx, req.IDs)
	handler.metricsManager.CounterSetEntriesDeleted.Add(float64(deleted))
	log.Debugf("deleted %d/%d set entries", deleted, len(req.IDs))

	respJson, err := json.Marshal(DeleteResponse{Deleted: deleted})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleUndo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.setlog.undo")
	defer span.End()

	restored := handler.log.Undo(ctx)
	if restored > 0 {
		handler.metricsManager.CounterDeleteUndos.Inc()
	}
	log.Debugf("undo restored %d set entries", restored)

	respJson, err := json.Marshal(UndoResponse{Restored: restored})
	if err != nil {
		log.Errorf("failed to marshal undo response: %s", err)
		http.Error(w, "failed to marshal undo response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func (handler *Handler) HandleProgression(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.setlog.progression")
	defer span.End()

	series := Progression(handler.log.Entries())

	seriesJson, err := json.Marshal(series)
	if err != nil {
		log.Errorf("marshal progression series: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, seriesJson, http.StatusOK)
}
