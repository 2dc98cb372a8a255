package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coasterforge/coasterforge-backend/internal/model"
)

// recordingProvider captures prompts and returns canned completions.
type recordingProvider struct {
	text       string
	err        error
	lastPrompt string
}

func (p *recordingProvider) Complete(ctx context.Context, prompt string) (string, error) {
	p.lastPrompt = prompt
	return p.text, p.err
}

func TestEnrichmentService_Enrich(t *testing.T) {
	concepts := NewConceptService(newTestStore(t))
	ctx := context.Background()

	c, err := concepts.Create(ctx, "alice", sampleRolls())
	require.NoError(t, err)

	t.Run("unknown kind", func(t *testing.T) {
		svc := NewEnrichmentService(concepts, &recordingProvider{})
		_, err := svc.Enrich(ctx, "alice", c.ConceptID, model.EnrichmentKind("poetry"))
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("missing concept", func(t *testing.T) {
		svc := NewEnrichmentService(concepts, &recordingProvider{})
		_, err := svc.Enrich(ctx, "alice", "nope", model.EnrichDescription)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("provider failure maps to enrichment error", func(t *testing.T) {
		svc := NewEnrichmentService(concepts, &recordingProvider{err: errors.New("429 too many requests")})
		_, err := svc.Enrich(ctx, "alice", c.ConceptID, model.EnrichDescription)
		assert.ErrorIs(t, err, model.ErrEnrichmentFailed)
	})

	t.Run("empty completion returns without persisting", func(t *testing.T) {
		svc := NewEnrichmentService(concepts, &recordingProvider{text: ""})
		text, err := svc.Enrich(ctx, "alice", c.ConceptID, model.EnrichDescription)
		require.NoError(t, err)
		assert.Equal(t, "", text)

		got, err := concepts.Get(ctx, c.ConceptID)
		require.NoError(t, err)
		assert.Nil(t, got.AIDescription)
	})

	t.Run("stranger write-back refused", func(t *testing.T) {
		svc := NewEnrichmentService(concepts, &recordingProvider{text: "lush canopy"})
		_, err := svc.Enrich(ctx, "bob", c.ConceptID, model.EnrichTheming)
		assert.ErrorIs(t, err, model.ErrNotFoundOrForbidden)

		got, err := concepts.Get(ctx, c.ConceptID)
		require.NoError(t, err)
		assert.Nil(t, got.AITheming)
	})

	t.Run("success persists the field", func(t *testing.T) {
		provider := &recordingProvider{text: "A thundering steel giant."}
		svc := NewEnrichmentService(concepts, provider)

		text, err := svc.Enrich(ctx, "alice", c.ConceptID, model.EnrichDescription)
		require.NoError(t, err)
		assert.Equal(t, "A thundering steel giant.", text)

		got, err := concepts.Get(ctx, c.ConceptID)
		require.NoError(t, err)
		require.NotNil(t, got.AIDescription)
		assert.Equal(t, "A thundering steel giant.", *got.AIDescription)

		// The prompt embeds the concept's generated fields.
		assert.Contains(t, provider.lastPrompt, "Type: Steel")
		assert.Contains(t, provider.lastPrompt, "Theme: Haunted Manor")
	})
}

func TestBuildPrompt(t *testing.T) {
	c := &model.CoasterConcept{
		Name:            "Haunted Steel",
		CoasterType:     "Steel",
		ThrillLevel:     "High Thrill",
		Manufacturer:    "Intamin",
		Layout:          "Twister",
		Theme:           "Haunted Manor",
		SpecialElements: []string{"Airtime Hill", "Loop"},
	}

	t.Run("description", func(t *testing.T) {
		p := buildPrompt(model.EnrichDescription, c)
		assert.True(t, strings.HasPrefix(p, "Create an exciting description for a roller coaster"))
		assert.Contains(t, p, "Special Elements: Airtime Hill, Loop")
		assert.Contains(t, p, "Thrill Level: High Thrill")
	})

	t.Run("theming", func(t *testing.T) {
		p := buildPrompt(model.EnrichTheming, c)
		assert.Contains(t, p, `Haunted Manor themed roller coaster called "Haunted Steel"`)
		assert.Contains(t, p, "queue experience")
	})

	t.Run("layout", func(t *testing.T) {
		p := buildPrompt(model.EnrichLayout, c)
		assert.Contains(t, p, "Layout Style: Twister")
		assert.Contains(t, p, "lift hill")
	})
}
