package services

import (
	"context"
	"fmt"

	"github.com/coasterforge/coasterforge-backend/internal/ai"
	"github.com/coasterforge/coasterforge-backend/internal/model"
)

// EnrichmentService runs the fetch -> prompt -> complete -> patch flow for a
// concept's AI text fields. The fetch is not ownership-checked, but the
// write-back goes through PatchAIField which is, so a non-owner caller pays
// for a completion whose result is then refused.
//
// The three steps hold no lock between them. A concept deleted mid-flight
// surfaces as the patch's own error; the generated text reaches the caller
// only when persistence succeeded.
type EnrichmentService struct {
	concepts *ConceptService
	provider ai.CompletionProvider
}

func NewEnrichmentService(concepts *ConceptService, provider ai.CompletionProvider) *EnrichmentService {
	return &EnrichmentService{concepts: concepts, provider: provider}
}

// Enrich generates text for the given kind and persists it onto the concept.
// An empty completion reports success without persisting anything. There are
// no retries; callers re-invoke manually.
func (s *EnrichmentService) Enrich(ctx context.Context, callerID, conceptID string, kind model.EnrichmentKind) (string, error) {
	if _, err := model.ParseEnrichmentKind(string(kind)); err != nil {
		return "", err
	}

	c, err := s.concepts.Get(ctx, conceptID)
	if err != nil {
		return "", err
	}

	text, err := s.provider.Complete(ctx, buildPrompt(kind, c))
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrEnrichmentFailed, err)
	}
	if text == "" {
		return "", nil
	}

	if err := s.concepts.PatchAIField(ctx, callerID, conceptID, kind, text); err != nil {
		return "", err
	}
	return text, nil
}
