package refdata

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/kintorelog/internal/telemetry/tracing"
	"github.com/2beens/kintorelog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=refdata_test

type refDataManager interface {
	Parts() []string
	Lifts() []Lift
	AddPart(ctx context.Context, name string) (added bool, err error)
	RemovePart(ctx context.Context, name string)
	AddLift(ctx context.Context, name, part string) (_ *Lift, added bool, err error)
	RemoveLift(ctx context.Context, id string) error
	ReassignLiftPart(ctx context.Context, id, part string) error
}

type AddPartRequest struct {
	Name string `json:"name"`
}

type AddLiftRequest struct {
	Name string `json:"name"`
	Part string `json:"part"`
}

type ReassignPartRequest struct {
	Part string `json:"part"`
}

type Handler struct {
	manager refDataManager
}

func NewHandler(manager refDataManager) *Handler {
	return &Handler{
		manager: manager,
	}
}

func (handler *Handler) HandleGetParts(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.refdata.parts.get")
	defer span.End()

	partsJson, err := json.Marshal(handler.manager.Parts())
	if err != nil {
		log.Errorf("marshal body parts: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, partsJson, http.StatusOK)
}

func (handler *Handler) HandleAddPart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.refdata.parts.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddPartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add body part, unmarshal json params: %s", err)
		http.Error(w, "add body part failed", http.StatusBadRequest)
		return
	}

	added, err := handler.manager.AddPart(ctx, req.Name)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			http.Error(w, "error, body part name is required", http.StatusBadRequest)
			return
		}
		log.Errorf("add body part [%s]: %s", req.Name, err)
		http.Error(w, "add body part failed", http.StatusInternalServerError)
		return
	}

	if !added {
		// duplicate, nothing changed
		pkg.WriteJSONResponseOK(w, `{"added":false}`)
		return
	}

	log.Debugf("new body part added: %s", req.Name)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, []byte(`{"added":true}`), http.StatusCreated)
}

func (handler *Handler) HandleRemovePart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.refdata.parts.remove")
	defer span.End()

	vars := mux.Vars(r)
	name := vars["name"]
	if name == "" {
		http.Error(w, "error, body part name is required", http.StatusBadRequest)
		return
	}

	handler.manager.RemovePart(ctx, name)
	log.Debugf("body part removed: %s", name)
	pkg.WriteJSONResponseOK(w, `{"removed":"`+name+`"}`)
}

func (handler *Handler) HandleGetLifts(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.refdata.lifts.get")
	defer span.End()

	liftsJson, err := json.Marshal(handler.manager.Lifts())
	if err != nil {
		log.Errorf("marshal lifts: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, liftsJson, http.StatusOK)
}

func (handler *Handler) HandleAddLift(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.refdata.lifts.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AddLiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add lift, unmarshal json params: %s", err)
		http.Error(w, "add lift failed", http.StatusBadRequest)
		return
	}

	lift, added, err := handler.manager.AddLift(ctx, req.Name, req.Part)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			http.Error(w, "error, lift name is required", http.StatusBadRequest)
			return
		}
		log.Errorf("add lift [%s]: %s", req.Name, err)
		http.Error(w, "add lift failed", http.StatusInternalServerError)
		return
	}

	liftJson, err := json.Marshal(lift)
	if err != nil {
		log.Errorf("marshal added lift: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if !added {
		// a lift with this id exists already, return it unchanged
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, liftJson, http.StatusOK)
		return
	}

	log.Debugf("new lift added: %s [%s]", lift.ID, lift.Part)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, liftJson, http.StatusCreated)
}

func (handler *Handler) HandleRemoveLift(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.refdata.lifts.remove")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, lift id is required", http.StatusBadRequest)
		return
	}

	if err := handler.manager.RemoveLift(ctx, id); err != nil {
		if errors.Is(err, ErrProtectedLift) {
			http.Error(w, "error, lift is protected", http.StatusBadRequest)
			return
		}
		log.Errorf("remove lift [%s]: %s", id, err)
		http.Error(w, "remove lift failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("lift removed: %s", id)
	pkg.WriteJSONResponseOK(w, `{"removed":"`+id+`"}`)
}

func (handler *Handler) HandleReassignLiftPart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.refdata.lifts.reassign")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, lift id is required", http.StatusBadRequest)
		return
	}

	var req ReassignPartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("reassign lift part, unmarshal json params: %s", err)
		http.Error(w, "reassign lift part failed", http.StatusBadRequest)
		return
	}
	if req.Part == "" {
		http.Error(w, "error, body part is required", http.StatusBadRequest)
		return
	}

	if err := handler.manager.ReassignLiftPart(ctx, id, req.Part); err != nil {
		if errors.Is(err, ErrLiftNotFound) {
			http.Error(w, "error, lift not found", http.StatusNotFound)
			return
		}
		log.Errorf("reassign lift [%s] part: %s", id, err)
		http.Error(w, "reassign lift part failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("lift %s reassigned to part %s", id, req.Part)
	pkg.WriteJSONResponseOK(w, `{"updated":"`+id+`"}`)
}
