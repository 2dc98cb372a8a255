package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coasterforge/coasterforge-backend/internal/generator"
	"github.com/coasterforge/coasterforge-backend/internal/model"
	"github.com/coasterforge/coasterforge-backend/internal/store"
)

// List limits match the product surface: a user's shelf shows at most 20 of
// their own concepts, the public gallery at most 10.
const (
	myConceptsLimit     = 20
	publicConceptsLimit = 10
)

const maxNameLen = 120

// ConceptService orchestrates concept generation and owner-gated CRUD.
// callerID is the authenticated user id; "" means anonymous. Ownership-gated
// mutations fail with model.ErrNotFoundOrForbidden whether the record is
// missing or owned by someone else, so callers cannot probe for existence.
type ConceptService struct {
	store store.Store
}

func NewConceptService(s store.Store) *ConceptService { return &ConceptService{store: s} }

// Create generates a concept from the rolls against the current reference
// data snapshot and persists it, private, owned by the caller.
func (s *ConceptService) Create(ctx context.Context, callerID string, rolls model.RollData) (*model.CoasterConcept, error) {
	if callerID == "" {
		return nil, model.ErrUnauthenticated
	}
	if err := validateRolls(rolls); err != nil {
		return nil, err
	}

	ref, err := s.store.ReferenceData().Map(ctx)
	if err != nil {
		return nil, err
	}

	c := generator.Generate(rolls, ref)
	c.UserID = callerID
	c.IsPublic = false
	return s.store.Concepts().Create(ctx, &c)
}

// Get fetches a concept by id with no authorization check; public viewing and
// the enrichment fetch both go through here.
func (s *ConceptService) Get(ctx context.Context, conceptID string) (*model.CoasterConcept, error) {
	return s.store.Concepts().GetByID(ctx, conceptID)
}

// ListMine returns the caller's newest concepts. An anonymous caller gets an
// empty result, not an error.
func (s *ConceptService) ListMine(ctx context.Context, callerID string) ([]*model.CoasterConcept, error) {
	if callerID == "" {
		return []*model.CoasterConcept{}, nil
	}
	return s.store.Concepts().ListByOwner(ctx, callerID, myConceptsLimit)
}

// ListPublic returns the newest public concepts.
func (s *ConceptService) ListPublic(ctx context.Context) ([]*model.CoasterConcept, error) {
	return s.store.Concepts().ListPublic(ctx, publicConceptsLimit)
}

// TogglePublic flips the concept's visibility and returns the updated record.
func (s *ConceptService) TogglePublic(ctx context.Context, callerID, conceptID string) (*model.CoasterConcept, error) {
	if callerID == "" {
		return nil, model.ErrUnauthenticated
	}
	out, err := s.store.Concepts().TogglePublic(ctx, callerID, conceptID)
	if err != nil {
		return nil, mergeOwnership(err)
	}
	return out, nil
}

// Rename updates the concept's display name.
func (s *ConceptService) Rename(ctx context.Context, callerID, conceptID, name string) error {
	if callerID == "" {
		return model.ErrUnauthenticated
	}
	if name == "" {
		return fmt.Errorf("%w: name is required", model.ErrValidation)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: name exceeds %d characters", model.ErrValidation, maxNameLen)
	}
	return mergeOwnership(s.store.Concepts().Rename(ctx, callerID, conceptID, name))
}

// Delete removes the concept permanently.
func (s *ConceptService) Delete(ctx context.Context, callerID, conceptID string) error {
	if callerID == "" {
		return model.ErrUnauthenticated
	}
	return mergeOwnership(s.store.Concepts().Delete(ctx, callerID, conceptID))
}

// PatchAIField writes content into the concept field keyed by kind. It is a
// standalone operation with its own authorization, re-checked independently
// of the enrichment flow that usually drives it.
func (s *ConceptService) PatchAIField(ctx context.Context, callerID, conceptID string, kind model.EnrichmentKind, content string) error {
	if callerID == "" {
		return model.ErrUnauthenticated
	}
	if _, err := model.ParseEnrichmentKind(string(kind)); err != nil {
		return err
	}
	return mergeOwnership(s.store.Concepts().SetAIField(ctx, callerID, conceptID, kind, content))
}

// References exposes the reference categories for read-only consumption.
func (s *ConceptService) References(ctx context.Context) ([]*model.ReferenceCategory, error) {
	return s.store.ReferenceData().List(ctx)
}

// mergeOwnership folds the store's not-found into the merged
// not-found-or-forbidden condition for owner-scoped mutations.
func mergeOwnership(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFoundOrForbidden
	}
	return err
}

// validateRolls rejects negative rolls so modulo semantics stay well defined.
func validateRolls(r model.RollData) error {
	for _, v := range []int{r.TypeRoll, r.ThrillRoll, r.ManufacturerRoll, r.LayoutRoll, r.ElementsRoll, r.ThemeRoll} {
		if v < 0 {
			return fmt.Errorf("%w: rolls must be non-negative", model.ErrValidation)
		}
	}
	return nil
}
