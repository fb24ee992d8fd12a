// Package migrations owns the PostgreSQL schema. Migrations are plain goose SQL
// files embedded into the binary; the second one seeds the core statuses and the
// default transition graph among them.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	// registers the "postgres" database/sql driver goose runs on
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

const dir = "sql"

//go:embed sql/*.sql
var files embed.FS

const (
	// SchemaVersion is the last migration that only creates tables.
	SchemaVersion int64 = 1
	// CoreStatusCount is the number of statuses the seed migration creates.
	CoreStatusCount = 8
	// CoreTransitionCount is the number of default edges the seed migration creates.
	CoreTransitionCount = 12
)

func setup() error {
	goose.SetBaseFS(files)
	return goose.SetDialect("postgres")
}

// Open returns a database/sql handle for dsn suitable for Up, Down and Status.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open migration connection: %w", err)
	}
	return db, nil
}

// Up migrates the schema to the latest version.
func Up(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, dir)
}

// Down rolls back a single migration.
func Down(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.DownContext(ctx, db, dir)
}

// Status logs the state of every migration.
func Status(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.StatusContext(ctx, db, dir)
}

// Version returns the current schema version.
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	if err := setup(); err != nil {
		return 0, err
	}
	return goose.GetDBVersionContext(ctx, db)
}

// DownTo rolls back migrations until the schema is at version.
func DownTo(ctx context.Context, db *sql.DB, version int64) error {
	if err := setup(); err != nil {
		return err
	}
	return goose.DownToContext(ctx, db, dir, version)
}
