// Package pgtest starts a throwaway PostgreSQL container with the real schema for
// integration suites.
package pgtest

import (
	"context"
	"database/sql"
	"time"

	"storefront/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is a migrated database inside a container.
type Database struct {
	Container *postgres.PostgresContainer
	DSN       string
	DB        *gorm.DB
	SQL       *sql.DB
}

// Start runs postgres:15-alpine, applies every migration and opens a gorm connection.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	d := &Database{Container: container}
	if d.DSN, err = container.ConnectionString(ctx, "sslmode=disable"); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	if d.SQL, err = migrations.Open(d.DSN); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}
	if err = migrations.Up(ctx, d.SQL); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	d.DB, err = gorm.Open(gorm_postgres.Open(d.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}
	return d, nil
}

// Reset empties every table and replays the seed migration, restoring the core
// statuses and default edges. Tables are not recreated, so cached statements on
// open connections stay valid.
func (d *Database) Reset(ctx context.Context) error {
	_, err := d.SQL.ExecContext(ctx,
		`TRUNCATE order_status_history, orders, status_transitions, order_statuses, email_templates`)
	if err != nil {
		return err
	}
	if err = migrations.DownTo(ctx, d.SQL, migrations.SchemaVersion); err != nil {
		return err
	}
	return migrations.Up(ctx, d.SQL)
}

func (d *Database) Terminate(ctx context.Context) error {
	if d.SQL != nil {
		_ = d.SQL.Close()
	}
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
