package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestDDLStatements(t *testing.T) {
	stmts := DDLStatements()
	if len(stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d: %q", len(stmts), stmts)
	}
	for i, stmt := range stmts {
		if !strings.HasPrefix(stmt, "CREATE ") {
			t.Fatalf("statement %d does not begin with CREATE: %q", i, stmt)
		}
		if strings.Contains(stmt, "--") {
			t.Fatalf("statement %d carries comment text: %q", i, stmt)
		}
	}
}

func TestSplitStatementsDropsCommentLines(t *testing.T) {
	ddl := "-- header; with a semicolon\nCREATE TABLE t (id TEXT);\n-- trailing note\n"
	stmts := splitStatements(ddl)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d: %q", len(stmts), stmts)
	}
	if stmts[0] != "CREATE TABLE t (id TEXT)" {
		t.Fatalf("unexpected statement: %q", stmts[0])
	}
}

func TestBootstrapIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "coasterforge.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if err := Bootstrap(ctx, db); err != nil {
		t.Fatalf("first bootstrap: %v", err)
	}
	if err := Bootstrap(ctx, db); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
}
