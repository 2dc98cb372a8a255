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

// EnrichHandler drives the AI enrichment flow over HTTP.
type EnrichHandler struct {
	svc *services.EnrichmentService
	az  auth.Authorizer
}

func NewEnrichHandler(svc *services.EnrichmentService, az auth.Authorizer) *EnrichHandler {
	return &EnrichHandler{svc: svc, az: az}
}

// EnrichConcept POST /api/concepts/{conceptId}/ai
func (h *EnrichHandler) EnrichConcept(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	kind, err := model.ParseEnrichmentKind(req.Kind)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	text, err := h.svc.Enrich(r.Context(), auth.ResolveCaller(r, h.az), mux.Vars(r)["conceptId"], kind)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"kind": string(kind), "text": text})
}
