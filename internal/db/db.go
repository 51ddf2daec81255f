package db

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vaughan-dsouza/BeGoForms/internal/config"
)

// Connect opens the shared client for the configured driver and checks that
// the database answers before returning it.
func Connect(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := open(cfg.Driver, cfg.URL)
	if err != nil {
		return nil, err
	}

	// ---- Connection Pool Settings ----
	if cfg.Driver == config.DriverSQLite {
		// one writer; also keeps a :memory: database alive across calls
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpen)
		db.SetMaxIdleConns(cfg.MaxIdle)
		db.SetConnMaxLifetime(cfg.MaxLifetime)
	}

	// ---- Connectivity Check ----
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("db: failed to connect to %s: %w", cfg.Driver, err)
	}

	// ---- Health Check Query ----
	var tmp int
	if err := db.QueryRow("SELECT 1").Scan(&tmp); err != nil {
		db.Close()
		return nil, fmt.Errorf("db: health check failed: %w", err)
	}

	return db, nil
}

func open(driver, dsn string) (*sqlx.DB, error) {
	switch driver {
	case config.DriverPostgres:
		// Parse DSN → pgx config struct
		cfg, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, fmt.Errorf("db: failed to parse DSN: %w", err)
		}

		// Fail fast on startup if PG is unreachable
		cfg.ConnectTimeout = 5 * time.Second

		return sqlx.NewDb(stdlib.OpenDB(*cfg), driver), nil

	case config.DriverMySQL:
		mc, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("db: failed to parse DSN: %w", err)
		}
		// timestamps scan into time.Time only with parseTime
		mc.ParseTime = true
		mc.Loc = time.UTC
		if mc.Timeout == 0 {
			mc.Timeout = 5 * time.Second
		}
		return sqlx.Open(driver, mc.FormatDSN())

	case config.DriverSQLite:
		return sqlx.Open(driver, dsn)

	default:
		return nil, fmt.Errorf("db: unsupported driver %q", driver)
	}
}
