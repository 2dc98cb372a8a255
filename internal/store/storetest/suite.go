package storetest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/coasterforge/coasterforge-backend/internal/model"
	"github.com/coasterforge/coasterforge-backend/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	owner := "u-" + uuid.New().String()
	stranger := "u-" + uuid.New().String()

	// Reference data
	ref := &model.ReferenceCategory{Category: "types", Items: []string{"Hypercoaster", "Wing Coaster"}}
	if err := s.ReferenceData().Upsert(ctx, ref); err != nil {
		t.Fatalf("Upsert reference: %v", err)
	}
	ref.Items = append(ref.Items, "Dive Coaster")
	if err := s.ReferenceData().Upsert(ctx, ref); err != nil {
		t.Fatalf("Upsert reference (replace): %v", err)
	}
	m, err := s.ReferenceData().Map(ctx)
	if err != nil {
		t.Fatalf("Map reference: %v", err)
	}
	if len(m["types"]) != 3 {
		t.Fatalf("Map reference: want 3 items, got %v", m["types"])
	}

	// Create + Get round-trip
	base := time.Now().UTC().Add(-time.Hour)
	c := newConcept(owner, 0, base)
	created, err := s.Concepts().Create(ctx, c)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ConceptID == "" {
		t.Fatalf("Create: empty concept id")
	}
	got, err := s.Concepts().GetByID(ctx, created.ConceptID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != c.Name || got.Theme != c.Theme || got.IsPublic {
		t.Fatalf("GetByID: round-trip mismatch: %+v", got)
	}
	if len(got.SpecialElements) != len(c.SpecialElements) {
		t.Fatalf("GetByID: elements mismatch: %v", got.SpecialElements)
	}
	if got.RollData != c.RollData {
		t.Fatalf("GetByID: roll data mismatch: %+v", got.RollData)
	}
	if got.AIDescription != nil || got.AITheming != nil || got.AILayoutIdeas != nil {
		t.Fatalf("GetByID: AI fields should start absent")
	}

	if _, err := s.Concepts().GetByID(ctx, uuid.New().String()); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetByID missing: want ErrNotFound, got %v", err)
	}

	// Listing: newest-first, owner-scoped, limited
	for i := 1; i < 25; i++ {
		if _, err := s.Concepts().Create(ctx, newConcept(owner, i, base)); err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
	}
	if _, err := s.Concepts().Create(ctx, newConcept(stranger, 99, base)); err != nil {
		t.Fatalf("Create stranger: %v", err)
	}

	mine, err := s.Concepts().ListByOwner(ctx, owner, 20)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(mine) != 20 {
		t.Fatalf("ListByOwner: want 20, got %d", len(mine))
	}
	for i, c := range mine {
		if c.UserID != owner {
			t.Fatalf("ListByOwner: foreign concept in results: %s", c.UserID)
		}
		if i > 0 && c.CreationTime.After(mine[i-1].CreationTime) {
			t.Fatalf("ListByOwner: not newest-first at %d", i)
		}
	}

	// Public listing only sees toggled concepts
	pub, err := s.Concepts().ListPublic(ctx, 10)
	if err != nil {
		t.Fatalf("ListPublic: %v", err)
	}
	if len(pub) != 0 {
		t.Fatalf("ListPublic: want none before toggling, got %d", len(pub))
	}

	toggled, err := s.Concepts().TogglePublic(ctx, owner, created.ConceptID)
	if err != nil {
		t.Fatalf("TogglePublic: %v", err)
	}
	if !toggled.IsPublic {
		t.Fatalf("TogglePublic: want public after first toggle")
	}
	pub, err = s.Concepts().ListPublic(ctx, 10)
	if err != nil || len(pub) != 1 || pub[0].ConceptID != created.ConceptID {
		t.Fatalf("ListPublic after toggle: n=%d err=%v", len(pub), err)
	}
	toggled, err = s.Concepts().TogglePublic(ctx, owner, created.ConceptID)
	if err != nil || toggled.IsPublic {
		t.Fatalf("TogglePublic twice: want private again, got %+v err=%v", toggled, err)
	}

	// Ownership-scoped mutations report ErrNotFound for foreign/missing rows
	if _, err := s.Concepts().TogglePublic(ctx, stranger, created.ConceptID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("TogglePublic foreign: want ErrNotFound, got %v", err)
	}
	if err := s.Concepts().Rename(ctx, stranger, created.ConceptID, "Stolen"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Rename foreign: want ErrNotFound, got %v", err)
	}
	if err := s.Concepts().Delete(ctx, stranger, created.ConceptID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Delete foreign: want ErrNotFound, got %v", err)
	}
	if err := s.Concepts().SetAIField(ctx, stranger, created.ConceptID, model.EnrichDescription, "x"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("SetAIField foreign: want ErrNotFound, got %v", err)
	}

	// Rename
	if err := s.Concepts().Rename(ctx, owner, created.ConceptID, "Dragon Hypercoaster"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	got, err = s.Concepts().GetByID(ctx, created.ConceptID)
	if err != nil || got.Name != "Dragon Hypercoaster" {
		t.Fatalf("Rename round-trip: got=%+v err=%v", got, err)
	}

	// AI fields are independent columns
	if err := s.Concepts().SetAIField(ctx, owner, created.ConceptID, model.EnrichDescription, "desc"); err != nil {
		t.Fatalf("SetAIField description: %v", err)
	}
	if err := s.Concepts().SetAIField(ctx, owner, created.ConceptID, model.EnrichLayout, "layout"); err != nil {
		t.Fatalf("SetAIField layout: %v", err)
	}
	got, err = s.Concepts().GetByID(ctx, created.ConceptID)
	if err != nil {
		t.Fatalf("GetByID after AI writes: %v", err)
	}
	if got.AIDescription == nil || *got.AIDescription != "desc" {
		t.Fatalf("SetAIField: aiDescription=%v", got.AIDescription)
	}
	if got.AILayoutIdeas == nil || *got.AILayoutIdeas != "layout" {
		t.Fatalf("SetAIField: aiLayoutIdeas=%v", got.AILayoutIdeas)
	}
	if got.AITheming != nil {
		t.Fatalf("SetAIField: aiTheming should be untouched, got %v", *got.AITheming)
	}

	// Delete
	if err := s.Concepts().Delete(ctx, owner, created.ConceptID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Concepts().GetByID(ctx, created.ConceptID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetByID after delete: want ErrNotFound, got %v", err)
	}
}

// newConcept builds a concept with a distinct creation time so ordering
// assertions do not depend on insert latency.
func newConcept(userID string, seq int, base time.Time) *model.CoasterConcept {
	return &model.CoasterConcept{
		UserID:          userID,
		Name:            fmt.Sprintf("Medieval Hypercoaster %d", seq),
		CoasterType:     "Hypercoaster",
		ThrillLevel:     "High Thrill",
		Manufacturer:    "Bolliger & Mabillard",
		Layout:          "Out and Back",
		Theme:           "Medieval Castle",
		SpecialElements: []string{"Zero-G Roll", "Immelmann"},
		RollData:        model.RollData{TypeRoll: seq, ThrillRoll: 1, ManufacturerRoll: 2, LayoutRoll: 3, ElementsRoll: 4, ThemeRoll: 5},
		CreationTime:    base.Add(time.Duration(seq) * time.Second),
	}
}
