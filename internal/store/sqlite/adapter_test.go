package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/coasterforge/coasterforge-backend/internal/store"
	"github.com/coasterforge/coasterforge-backend/internal/store/storetest"
)

func makeSqliteStore(t *testing.T) store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coasterforge.db")
	s, err := New(context.Background(), path)
	if err != nil {
		t.Fatalf("sqlite open: %v", err)
	}
	return s
}

func TestSqliteStore_Compliance(t *testing.T) {
	storetest.Run(t, makeSqliteStore)
}
