package store

import (
	"context"

	"github.com/coasterforge/coasterforge-backend/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (postgres, sqlite).
type Store interface {
	Concepts() Concepts
	ReferenceData() ReferenceData
}

// Concepts persists coaster concepts. Mutations that require ownership take
// the owner's user id and scope the underlying write to it; when no row
// matches (missing record or different owner) they return model.ErrNotFound so
// the service layer can surface the merged not-found/forbidden condition.
type Concepts interface {
	Create(ctx context.Context, c *model.CoasterConcept) (*model.CoasterConcept, error)
	GetByID(ctx context.Context, conceptID string) (*model.CoasterConcept, error)
	ListByOwner(ctx context.Context, userID string, limit int) ([]*model.CoasterConcept, error)
	ListPublic(ctx context.Context, limit int) ([]*model.CoasterConcept, error)
	TogglePublic(ctx context.Context, userID, conceptID string) (*model.CoasterConcept, error)
	Rename(ctx context.Context, userID, conceptID, name string) error
	Delete(ctx context.Context, userID, conceptID string) error
	SetAIField(ctx context.Context, userID, conceptID string, kind model.EnrichmentKind, content string) error
}

// ReferenceData reads the generation reference lists. Upsert exists for the
// seeding CLI; the service itself never writes reference data.
type ReferenceData interface {
	List(ctx context.Context) ([]*model.ReferenceCategory, error)
	Map(ctx context.Context) (map[string][]string, error)
	Upsert(ctx context.Context, c *model.ReferenceCategory) error
}
