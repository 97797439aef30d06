package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"animal-rescue/internal/adapters/storage/sqlstore"

	_ "modernc.org/sqlite" // driver sqlite en Go puro
)

// Open abre (o crea) la base sqlite en path. ":memory:" sirve para tests.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = "animal-rescue.db"
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// sqlite admite un solo escritor; con ":memory:" cada conexión sería otra base.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := sqlstore.EnsureSchema(ctx, db, sqlstore.SQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

const Dialect = sqlstore.SQLite

func NewReportsRepo(db *sql.DB) *sqlstore.ReportsRepo {
	return sqlstore.NewReportsRepo(db, Dialect)
}

func NewOrganizationsRepo(db *sql.DB) *sqlstore.OrganizationsRepo {
	return sqlstore.NewOrganizationsRepo(db, Dialect)
}
