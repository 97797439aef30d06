package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema crea las tablas si no existen. No es un sistema de migraciones.
func EnsureSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	ts := "TIMESTAMPTZ"
	boolean := "BOOLEAN"
	if d == SQLite {
		ts = "DATETIME"
		boolean = "INTEGER"
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS animal_reports (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL DEFAULT '',
			animal_type TEXT NOT NULL DEFAULT 'Other',
			description TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			image_key TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'Pending',
			created_at ` + ts + ` NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS animal_reports_created_at_idx ON animal_reports (created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS organizations (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			is_active ` + boolean + ` NOT NULL DEFAULT ` + trueLiteral(d) + `,
			created_at ` + ts + ` NOT NULL,
			updated_at ` + ts + ` NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure %s schema: %w", d, err)
		}
	}
	return nil
}

func trueLiteral(d Dialect) string {
	if d == SQLite {
		return "1"
	}
	return "TRUE"
}
