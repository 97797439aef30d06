package postgres

import (
	"context"
	"database/sql"
	"time"

	"animal-rescue/internal/adapters/storage/sqlstore"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql)
// y crea las tablas si faltan.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := sqlstore.EnsureSchema(ctx, db, sqlstore.Postgres); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Dialect es el que hay que pasarle a sqlstore (y al router) con una base abierta por Open.
const Dialect = sqlstore.Postgres
