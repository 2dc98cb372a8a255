package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coasterforge/coasterforge-backend/internal/logger"
	"github.com/coasterforge/coasterforge-backend/internal/model"
	"github.com/coasterforge/coasterforge-backend/internal/store"
	"github.com/coasterforge/coasterforge-backend/internal/store/postgres"
	"github.com/coasterforge/coasterforge-backend/internal/store/sqlite"
)

// defaultReference is the starter dataset loaded by "seed --builtin". Lists
// can be replaced wholesale later; generation reads them by category name.
var defaultReference = []*model.ReferenceCategory{
	{Category: "types", Items: []string{
		"Hypercoaster", "Inverted Coaster", "Wing Coaster", "Flying Coaster",
		"Wooden Coaster", "Launched Coaster", "Dive Coaster", "Spinning Coaster",
	}},
	{Category: "thrillLevels", Items: []string{
		"Family", "Moderate", "High Thrill", "Extreme",
	}},
	{Category: "manufacturers", Items: []string{
		"Bolliger & Mabillard", "Intamin", "Rocky Mountain Construction",
		"Mack Rides", "Vekoma", "Great Coasters International",
	}},
	{Category: "layouts", Items: []string{
		"Out and Back", "Twister", "Terrain", "Dueling", "Shuttle", "Figure Eight",
	}},
	{Category: "themes", Items: []string{
		"Medieval Castle", "Space Odyssey", "Lost Jungle", "Haunted Mine",
		"Ocean Depths", "Desert Ruins", "Volcano Island", "Steampunk City",
	}},
	{Category: "elements", Items: []string{
		"Vertical Loop", "Zero-G Roll", "Corkscrew", "Immelmann", "Dive Loop",
		"Airtime Hill", "Overbanked Turn", "Helix", "Stengel Dive", "Top Hat",
		"Cobra Roll", "Barrel Roll",
	}},
}

func init() {
	var (
		sqlitePath string
		pgDSN      string
		filePath   string
		builtin    bool
	)

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data lists directly into the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewConsole()
			ctx := context.Background()

			cats, err := loadCategories(filePath, builtin)
			if err != nil {
				return err
			}

			st, err := openStore(ctx, sqlitePath, pgDSN)
			if err != nil {
				return err
			}

			for _, c := range cats {
				if err := st.ReferenceData().Upsert(ctx, c); err != nil {
					return fmt.Errorf("upsert %s: %w", c.Category, err)
				}
				log.Info().Str("category", c.Category).Int("items", len(c.Items)).Msg("seeded")
			}
			return nil
		},
	}
	seedCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "SQLite database path")
	seedCmd.Flags().StringVar(&pgDSN, "postgres-dsn", "", "Postgres DSN")
	seedCmd.Flags().StringVarP(&filePath, "file", "f", "", "JSON file of [{category, items}] entries")
	seedCmd.Flags().BoolVar(&builtin, "builtin", false, "Seed the built-in starter dataset")
	rootCmd.AddCommand(seedCmd)
}

func loadCategories(filePath string, builtin bool) ([]*model.ReferenceCategory, error) {
	if builtin {
		return defaultReference, nil
	}
	if filePath == "" {
		return nil, fmt.Errorf("--file or --builtin required")
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cats []*model.ReferenceCategory
	if err := json.Unmarshal(data, &cats); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}
	for _, c := range cats {
		if c.Category == "" {
			return nil, fmt.Errorf("entry with empty category in %s", filePath)
		}
	}
	return cats, nil
}

func openStore(ctx context.Context, sqlitePath, pgDSN string) (store.Store, error) {
	switch {
	case sqlitePath != "" && pgDSN != "":
		return nil, fmt.Errorf("--sqlite and --postgres-dsn are mutually exclusive")
	case sqlitePath != "":
		return sqlite.New(ctx, sqlitePath)
	case pgDSN != "":
		db, err := postgres.Open(pgDSN)
		if err != nil {
			return nil, err
		}
		return postgres.NewWithDB(db), nil
	default:
		return nil, fmt.Errorf("--sqlite or --postgres-dsn required")
	}
}
