package api

import (
	"github.com/gorilla/mux"

	"github.com/coasterforge/coasterforge-backend/internal/ai"
	"github.com/coasterforge/coasterforge-backend/internal/api/recovery"
	"github.com/coasterforge/coasterforge-backend/internal/auth"
	"github.com/coasterforge/coasterforge-backend/internal/services"
	"github.com/coasterforge/coasterforge-backend/internal/store"
)

// NewRouter wires all API routes to handlers.
func NewRouter(st store.Store, provider ai.CompletionProvider, az auth.Authorizer) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	conceptSvc := services.NewConceptService(st)
	enrichSvc := services.NewEnrichmentService(conceptSvc, provider)

	concepts := NewConceptHandler(conceptSvc, az)
	enrich := NewEnrichHandler(enrichSvc, az)
	healthHandler := NewHealthHandler()

	// Concepts
	router.HandleFunc("/api/concepts", concepts.CreateConcept).Methods("POST")
	router.HandleFunc("/api/concepts", concepts.ListMyConcepts).Methods("GET")
	router.HandleFunc("/api/concepts/public", concepts.ListPublicConcepts).Methods("GET")
	router.HandleFunc("/api/concepts/{conceptId}", concepts.GetConcept).Methods("GET")
	router.HandleFunc("/api/concepts/{conceptId}", concepts.RenameConcept).Methods("PATCH")
	router.HandleFunc("/api/concepts/{conceptId}", concepts.DeleteConcept).Methods("DELETE")
	router.HandleFunc("/api/concepts/{conceptId}/visibility", concepts.ToggleConceptPublic).Methods("POST")

	// AI enrichment
	router.HandleFunc("/api/concepts/{conceptId}/ai", enrich.EnrichConcept).Methods("POST")

	// Reference data
	router.HandleFunc("/api/reference", concepts.ListReferenceData).Methods("GET")

	// Health
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	return router
}
