package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/coasterforge/coasterforge-backend/internal/model"
	"github.com/coasterforge/coasterforge-backend/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a native Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Concepts() store.Concepts { return &concepts{db: s.db} }

func (s *pgStore) ReferenceData() store.ReferenceData { return &referenceData{db: s.db} }

// HealthPing implements health.HealthPinger for the Postgres-backed store.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Bootstrap verifies Postgres is reachable and applies the embedded schema.
func Bootstrap(ctx context.Context, dsn string) error {
	if dsn == "" {
		return nil
	}

	db, err := Open(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return ApplySchema(ctx, db)
}

const conceptColumns = `concept_id, user_id, name, coaster_type, thrill_level, manufacturer,
        layout, theme, special_elements, roll_data, is_public,
        ai_description, ai_theming, ai_layout_ideas, creation_time`

// --- Concepts ---
type concepts struct{ db *sql.DB }

func (c *concepts) Create(ctx context.Context, m *model.CoasterConcept) (*model.CoasterConcept, error) {
	id := m.ConceptID
	if id == "" {
		id = uuid.New().String()
	}
	created := m.CreationTime
	if created.IsZero() {
		created = time.Now().UTC()
	}

	elems, err := json.Marshal(m.SpecialElements)
	if err != nil {
		return nil, err
	}
	rolls, err := json.Marshal(m.RollData)
	if err != nil {
		return nil, err
	}

	_, err = c.db.ExecContext(ctx, `
        INSERT INTO concepts (concept_id, user_id, name, coaster_type, thrill_level, manufacturer,
            layout, theme, special_elements, roll_data, is_public, creation_time)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    `, id, m.UserID, m.Name, m.CoasterType, m.ThrillLevel, m.Manufacturer,
		m.Layout, m.Theme, elems, rolls, m.IsPublic, created)
	if err != nil {
		return nil, err
	}

	out := *m
	out.ConceptID = id
	out.CreationTime = created
	return &out, nil
}

func (c *concepts) GetByID(ctx context.Context, conceptID string) (*model.CoasterConcept, error) {
	row := c.db.QueryRowContext(ctx, `
        SELECT `+conceptColumns+` FROM concepts WHERE concept_id=$1
    `, conceptID)
	return scanConcept(row.Scan)
}

func (c *concepts) ListByOwner(ctx context.Context, userID string, limit int) ([]*model.CoasterConcept, error) {
	rows, err := c.db.QueryContext(ctx, `
        SELECT `+conceptColumns+` FROM concepts
        WHERE user_id=$1 ORDER BY creation_time DESC LIMIT $2
    `, userID, limit)
	if err != nil {
		return nil, err
	}
	return collectConcepts(rows)
}

func (c *concepts) ListPublic(ctx context.Context, limit int) ([]*model.CoasterConcept, error) {
	rows, err := c.db.QueryContext(ctx, `
        SELECT `+conceptColumns+` FROM concepts
        WHERE is_public ORDER BY creation_time DESC LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	return collectConcepts(rows)
}

func (c *concepts) TogglePublic(ctx context.Context, userID, conceptID string) (*model.CoasterConcept, error) {
	// Single atomic flip; the RETURNING clause avoids a read-modify-write race.
	row := c.db.QueryRowContext(ctx, `
        UPDATE concepts SET is_public = NOT is_public
        WHERE concept_id=$1 AND user_id=$2
        RETURNING `+conceptColumns+`
    `, conceptID, userID)
	return scanConcept(row.Scan)
}

func (c *concepts) Rename(ctx context.Context, userID, conceptID, name string) error {
	res, err := c.db.ExecContext(ctx, `
        UPDATE concepts SET name=$3 WHERE concept_id=$1 AND user_id=$2
    `, conceptID, userID, name)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (c *concepts) Delete(ctx context.Context, userID, conceptID string) error {
	res, err := c.db.ExecContext(ctx, `
        DELETE FROM concepts WHERE concept_id=$1 AND user_id=$2
    `, conceptID, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (c *concepts) SetAIField(ctx context.Context, userID, conceptID string, kind model.EnrichmentKind, content string) error {
	column, err := aiColumn(kind)
	if err != nil {
		return err
	}
	res, err := c.db.ExecContext(ctx, `
        UPDATE concepts SET `+column+`=$3 WHERE concept_id=$1 AND user_id=$2
    `, conceptID, userID, content)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// aiColumn maps the closed enrichment kind set onto concrete columns. Unknown
// kinds are rejected here as well so no dynamic column name ever reaches SQL.
func aiColumn(kind model.EnrichmentKind) (string, error) {
	switch kind {
	case model.EnrichDescription:
		return "ai_description", nil
	case model.EnrichTheming:
		return "ai_theming", nil
	case model.EnrichLayout:
		return "ai_layout_ideas", nil
	}
	return "", fmt.Errorf("%w: unknown enrichment kind %q", model.ErrValidation, kind)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanConcept(scan func(dest ...any) error) (*model.CoasterConcept, error) {
	var (
		out   model.CoasterConcept
		elems []byte
		rolls []byte
	)
	err := scan(&out.ConceptID, &out.UserID, &out.Name, &out.CoasterType, &out.ThrillLevel,
		&out.Manufacturer, &out.Layout, &out.Theme, &elems, &rolls, &out.IsPublic,
		&out.AIDescription, &out.AITheming, &out.AILayoutIdeas, &out.CreationTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(elems, &out.SpecialElements); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rolls, &out.RollData); err != nil {
		return nil, err
	}
	return &out, nil
}

func collectConcepts(rows *sql.Rows) ([]*model.CoasterConcept, error) {
	defer func() { _ = rows.Close() }()
	var res []*model.CoasterConcept
	for rows.Next() {
		c, err := scanConcept(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

// --- Reference data ---
type referenceData struct{ db *sql.DB }

func (r *referenceData) List(ctx context.Context) ([]*model.ReferenceCategory, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT category, items FROM reference_data ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []*model.ReferenceCategory
	for rows.Next() {
		var (
			cat   model.ReferenceCategory
			items []byte
		)
		if err := rows.Scan(&cat.Category, &items); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &cat.Items); err != nil {
			return nil, err
		}
		res = append(res, &cat)
	}
	return res, rows.Err()
}

func (r *referenceData) Map(ctx context.Context) (map[string][]string, error) {
	cats, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(cats))
	for _, c := range cats {
		out[c.Category] = c.Items
	}
	return out, nil
}

func (r *referenceData) Upsert(ctx context.Context, c *model.ReferenceCategory) error {
	items, err := json.Marshal(c.Items)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
        INSERT INTO reference_data (category, items) VALUES ($1,$2)
        ON CONFLICT (category) DO UPDATE SET items=EXCLUDED.items
    `, c.Category, items)
	return err
}
