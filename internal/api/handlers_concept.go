package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/coasterforge/coasterforge-backend/internal/api/respond"
	"github.com/coasterforge/coasterforge-backend/internal/auth"
	"github.com/coasterforge/coasterforge-backend/internal/model"
	"github.com/coasterforge/coasterforge-backend/internal/services"
)

// ConceptHandler is a thin HTTP transport over ConceptService.
type ConceptHandler struct {
	svc *services.ConceptService
	az  auth.Authorizer
}

func NewConceptHandler(svc *services.ConceptService, az auth.Authorizer) *ConceptHandler {
	return &ConceptHandler{svc: svc, az: az}
}

// CreateConcept POST /api/concepts
func (h *ConceptHandler) CreateConcept(w http.ResponseWriter, r *http.Request) {
	var rolls model.RollData
	if err := json.NewDecoder(r.Body).Decode(&rolls); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.Create(r.Context(), auth.ResolveCaller(r, h.az), rolls)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// GetConcept GET /api/concepts/{conceptId}
func (h *ConceptHandler) GetConcept(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.Get(r.Context(), mux.Vars(r)["conceptId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// ListMyConcepts GET /api/concepts
// Anonymous callers get an empty collection, not a failure.
func (h *ConceptHandler) ListMyConcepts(w http.ResponseWriter, r *http.Request) {
	concepts, err := h.svc.ListMine(r.Context(), auth.ResolveCaller(r, h.az))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"concepts": concepts, "count": len(concepts)})
}

// ListPublicConcepts GET /api/concepts/public
func (h *ConceptHandler) ListPublicConcepts(w http.ResponseWriter, r *http.Request) {
	concepts, err := h.svc.ListPublic(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"concepts": concepts, "count": len(concepts)})
}

// ToggleConceptPublic POST /api/concepts/{conceptId}/visibility
func (h *ConceptHandler) ToggleConceptPublic(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.TogglePublic(r.Context(), auth.ResolveCaller(r, h.az), mux.Vars(r)["conceptId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// RenameConcept PATCH /api/concepts/{conceptId}
func (h *ConceptHandler) RenameConcept(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	conceptID := mux.Vars(r)["conceptId"]
	caller := auth.ResolveCaller(r, h.az)
	if err := h.svc.Rename(r.Context(), caller, conceptID, req.Name); err != nil {
		writeServiceError(w, err)
		return
	}
	out, err := h.svc.Get(r.Context(), conceptID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// DeleteConcept DELETE /api/concepts/{conceptId}
func (h *ConceptHandler) DeleteConcept(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), auth.ResolveCaller(r, h.az), mux.Vars(r)["conceptId"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListReferenceData GET /api/reference
func (h *ConceptHandler) ListReferenceData(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.References(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"categories": cats, "count": len(cats)})
}
