package database

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema_postgres.sql
var schema embed.FS

// Postgres is a pooled Postgres connection
type Postgres struct {
	*pgxpool.Pool
}

// OpenPostgres connects to dsn and applies the schema
func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &Postgres{pool}
	if err := db.Migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return db, nil
}

// Migrate runs the embedded schema. Every statement is idempotent.
func (db *Postgres) Migrate(ctx context.Context) error {
	b, err := schema.ReadFile("schema_postgres.sql")
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, string(b))
	return err
}
