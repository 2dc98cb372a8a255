package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"strings"
)

//go:embed schema.sql
var ddlFile string

// DDLStatements returns the CREATE TABLE / INDEX statements from schema.sql.
// Comment lines are dropped before splitting on semicolons so that prose in
// the schema file never leaks into an executable statement.
func DDLStatements() []string {
	return splitStatements(ddlFile)
}

func splitStatements(ddl string) []string {
	var kept []string
	for _, line := range strings.Split(ddl, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	var out []string
	for _, p := range strings.Split(strings.Join(kept, "\n"), ";") {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}

// Bootstrap applies the embedded schema. Statements are idempotent.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	for _, stmt := range DDLStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
