package api

import (
	"errors"
	"net/http"

	"github.com/coasterforge/coasterforge-backend/internal/api/respond"
	"github.com/coasterforge/coasterforge-backend/internal/model"
)

// writeServiceError maps service-layer sentinel errors to HTTP responses.
// The merged not-found/forbidden condition surfaces as a plain 404 so the
// response never reveals whether the record exists.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrUnauthenticated):
		respond.WriteUnauthorized(w, err.Error())
	case errors.Is(err, model.ErrNotFoundOrForbidden), errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, err.Error())
	case errors.Is(err, model.ErrValidation):
		respond.WriteBadRequest(w, err.Error())
	case errors.Is(err, model.ErrEnrichmentFailed):
		respond.WriteError(w, http.StatusBadGateway, err.Error())
	default:
		respond.WriteInternalError(w, err.Error())
	}
}
