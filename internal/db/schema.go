package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/vaughan-dsouza/BeGoForms/internal/config"
)

// tags holds the comma-joined tag list; the stores we target have no
// portable array column.
var schemas = map[string]string{
	config.DriverPostgres: `
        CREATE TABLE IF NOT EXISTS posts (
            id         TEXT PRIMARY KEY,
            title      TEXT NOT NULL,
            tags       TEXT,
            content    TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )
    `,
	config.DriverSQLite: `
        CREATE TABLE IF NOT EXISTS posts (
            id         TEXT NOT NULL PRIMARY KEY,
            title      TEXT NOT NULL,
            tags       TEXT,
            content    TEXT NOT NULL,
            created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
            updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
        )
    `,
	config.DriverMySQL: `
        CREATE TABLE IF NOT EXISTS posts (
            id         VARCHAR(36) NOT NULL PRIMARY KEY,
            title      VARCHAR(100) NOT NULL,
            tags       TEXT NULL,
            content    TEXT NOT NULL,
            created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
            updated_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
        )
    `,
}

// Migrate creates the posts table if it does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	ddl, ok := schemas[db.DriverName()]
	if !ok {
		return fmt.Errorf("db: no schema for driver %q", db.DriverName())
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("db: migrate: %w", err)
	}
	return nil
}
