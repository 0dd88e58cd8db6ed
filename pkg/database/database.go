package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"taskflow-pro/pkg/log"
)

// Open connects to the configured database and waits until it answers pings.
func Open(ctx context.Context, l log.Logger, cfg Config) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.Driver {
	case DriverPostgres:
		db, err = sql.Open("postgres", cfg.DSN)
	case DriverSQLite:
		db, err = sql.Open("sqlite", sqliteDSN(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	applyPool(db, cfg)

	if err := waitForDatabase(ctx, l, db, cfg.PingRetries, cfg.PingRetryDelay); err != nil {
		db.Close()
		return nil, err
	}

	l.Infof(ctx, "database.Open: connected to %s", cfg.Driver)
	return db, nil
}

func applyPool(db *sql.DB, cfg Config) {
	// A private in-memory SQLite database exists once per connection.
	if cfg.Driver == DriverSQLite && cfg.SQLitePath == ":memory:" {
		db.SetMaxOpenConns(1)
		return
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

func sqliteDSN(path string) string {
	if path == ":memory:" {
		return path
	}
	return "file:" + path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func waitForDatabase(ctx context.Context, l log.Logger, db *sql.DB, maxRetries int, retryDelay time.Duration) error {
	if maxRetries <= 0 {
		maxRetries = 1
	}
	if retryDelay <= 0 {
		retryDelay = 2 * time.Second
	}

	var err error
	for i := 0; i < maxRetries; i++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		if i < maxRetries-1 {
			l.Warnf(ctx, "database.waitForDatabase: not ready, retrying in %v (attempt %d/%d): %v", retryDelay, i+1, maxRetries, err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay):
			}
		}
	}
	return fmt.Errorf("%w after %d attempts: %v", ErrNotReady, maxRetries, err)
}
