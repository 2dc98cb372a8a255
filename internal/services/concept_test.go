package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coasterforge/coasterforge-backend/internal/model"
	"github.com/coasterforge/coasterforge-backend/internal/store"
	"github.com/coasterforge/coasterforge-backend/internal/store/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "services_test.db"))
	require.NoError(t, err)

	ctx := context.Background()
	cats := []*model.ReferenceCategory{
		{Category: "types", Items: []string{"Wooden", "Steel", "Inverted"}},
		{Category: "thrillLevels", Items: []string{"Family", "Moderate", "High Thrill"}},
		{Category: "manufacturers", Items: []string{"Intamin", "Bolliger & Mabillard", "Vekoma"}},
		{Category: "layouts", Items: []string{"Out and Back", "Twister", "Dueling"}},
		{Category: "themes", Items: []string{"Space Odyssey", "Jungle Ruins", "Haunted Manor"}},
		{Category: "elements", Items: []string{"Loop", "Corkscrew", "Zero-G Roll", "Airtime Hill", "Helix"}},
	}
	for _, c := range cats {
		require.NoError(t, st.ReferenceData().Upsert(ctx, c))
	}
	return st
}

func sampleRolls() model.RollData {
	return model.RollData{TypeRoll: 1, ThrillRoll: 2, ManufacturerRoll: 0, LayoutRoll: 4, ElementsRoll: 3, ThemeRoll: 5}
}

func TestConceptService_Create(t *testing.T) {
	svc := NewConceptService(newTestStore(t))
	ctx := context.Background()

	t.Run("anonymous rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, "", sampleRolls())
		assert.ErrorIs(t, err, model.ErrUnauthenticated)
	})

	t.Run("negative roll rejected", func(t *testing.T) {
		rolls := sampleRolls()
		rolls.ElementsRoll = -2
		_, err := svc.Create(ctx, "alice", rolls)
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("created private and owned", func(t *testing.T) {
		c, err := svc.Create(ctx, "alice", sampleRolls())
		require.NoError(t, err)
		assert.Equal(t, "alice", c.UserID)
		assert.False(t, c.IsPublic)
		assert.Equal(t, "Steel", c.CoasterType)
		assert.Equal(t, "Haunted Steel", c.Name)
		assert.NotEmpty(t, c.ConceptID)

		got, err := svc.Get(ctx, c.ConceptID)
		require.NoError(t, err)
		assert.Equal(t, c.ConceptID, got.ConceptID)
	})
}

func TestConceptService_ListMine(t *testing.T) {
	svc := NewConceptService(newTestStore(t))
	ctx := context.Background()

	t.Run("anonymous gets empty", func(t *testing.T) {
		got, err := svc.ListMine(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("owner scoped", func(t *testing.T) {
		_, err := svc.Create(ctx, "alice", sampleRolls())
		require.NoError(t, err)
		_, err = svc.Create(ctx, "bob", sampleRolls())
		require.NoError(t, err)

		got, err := svc.ListMine(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "alice", got[0].UserID)
	})
}

func TestConceptService_TogglePublic(t *testing.T) {
	svc := NewConceptService(newTestStore(t))
	ctx := context.Background()

	c, err := svc.Create(ctx, "alice", sampleRolls())
	require.NoError(t, err)

	t.Run("anonymous rejected", func(t *testing.T) {
		_, err := svc.TogglePublic(ctx, "", c.ConceptID)
		assert.ErrorIs(t, err, model.ErrUnauthenticated)
	})

	t.Run("stranger sees merged error", func(t *testing.T) {
		_, err := svc.TogglePublic(ctx, "bob", c.ConceptID)
		assert.ErrorIs(t, err, model.ErrNotFoundOrForbidden)
	})

	t.Run("owner flips and public list follows", func(t *testing.T) {
		out, err := svc.TogglePublic(ctx, "alice", c.ConceptID)
		require.NoError(t, err)
		assert.True(t, out.IsPublic)

		pub, err := svc.ListPublic(ctx)
		require.NoError(t, err)
		require.Len(t, pub, 1)
		assert.Equal(t, c.ConceptID, pub[0].ConceptID)

		out, err = svc.TogglePublic(ctx, "alice", c.ConceptID)
		require.NoError(t, err)
		assert.False(t, out.IsPublic)

		pub, err = svc.ListPublic(ctx)
		require.NoError(t, err)
		assert.Empty(t, pub)
	})
}

func TestConceptService_ListPublicCap(t *testing.T) {
	st := newTestStore(t)
	svc := NewConceptService(st)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		_, err := st.Concepts().Create(ctx, &model.CoasterConcept{
			ConceptID:    fmt.Sprintf("pub-%02d", i),
			UserID:       "alice",
			Name:         fmt.Sprintf("Concept %02d", i),
			IsPublic:     true,
			RollData:     sampleRolls(),
			CreationTime: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	got, err := svc.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, got, publicConceptsLimit)
	assert.Equal(t, "pub-11", got[0].ConceptID)
	assert.Equal(t, "pub-02", got[len(got)-1].ConceptID)
	for _, c := range got {
		assert.True(t, c.IsPublic)
	}
}

func TestConceptService_Rename(t *testing.T) {
	svc := NewConceptService(newTestStore(t))
	ctx := context.Background()

	c, err := svc.Create(ctx, "alice", sampleRolls())
	require.NoError(t, err)

	t.Run("empty name rejected", func(t *testing.T) {
		assert.ErrorIs(t, svc.Rename(ctx, "alice", c.ConceptID, ""), model.ErrValidation)
	})

	t.Run("oversized name rejected", func(t *testing.T) {
		long := make([]byte, maxNameLen+1)
		for i := range long {
			long[i] = 'x'
		}
		assert.ErrorIs(t, svc.Rename(ctx, "alice", c.ConceptID, string(long)), model.ErrValidation)
	})

	t.Run("stranger sees merged error", func(t *testing.T) {
		assert.ErrorIs(t, svc.Rename(ctx, "bob", c.ConceptID, "Hijack"), model.ErrNotFoundOrForbidden)
	})

	t.Run("owner renames", func(t *testing.T) {
		require.NoError(t, svc.Rename(ctx, "alice", c.ConceptID, "Iron Phantom"))
		got, err := svc.Get(ctx, c.ConceptID)
		require.NoError(t, err)
		assert.Equal(t, "Iron Phantom", got.Name)
	})
}

func TestConceptService_Delete(t *testing.T) {
	svc := NewConceptService(newTestStore(t))
	ctx := context.Background()

	c, err := svc.Create(ctx, "alice", sampleRolls())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "bob", c.ConceptID), model.ErrNotFoundOrForbidden)
	require.NoError(t, svc.Delete(ctx, "alice", c.ConceptID))

	_, err = svc.Get(ctx, c.ConceptID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, "alice", c.ConceptID), model.ErrNotFoundOrForbidden)
}

func TestConceptService_PatchAIField(t *testing.T) {
	svc := NewConceptService(newTestStore(t))
	ctx := context.Background()

	c, err := svc.Create(ctx, "alice", sampleRolls())
	require.NoError(t, err)

	t.Run("unknown kind rejected", func(t *testing.T) {
		assert.ErrorIs(t, svc.PatchAIField(ctx, "alice", c.ConceptID, model.EnrichmentKind("poetry"), "x"), model.ErrValidation)
	})

	t.Run("stranger sees merged error", func(t *testing.T) {
		assert.ErrorIs(t, svc.PatchAIField(ctx, "bob", c.ConceptID, model.EnrichTheming, "x"), model.ErrNotFoundOrForbidden)
	})

	t.Run("owner patches one field", func(t *testing.T) {
		require.NoError(t, svc.PatchAIField(ctx, "alice", c.ConceptID, model.EnrichTheming, "dark forest canopy"))

		got, err := svc.Get(ctx, c.ConceptID)
		require.NoError(t, err)
		require.NotNil(t, got.AITheming)
		assert.Equal(t, "dark forest canopy", *got.AITheming)
		assert.Nil(t, got.AIDescription)
		assert.Nil(t, got.AILayoutIdeas)
	})
}

func TestConceptService_References(t *testing.T) {
	svc := NewConceptService(newTestStore(t))

	cats, err := svc.References(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 6)
}
