package database

import "time"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	migrationsTable = "schema_migrations"
)

// Config describes a SQL connection.
type Config struct {
	Driver          string
	DSN             string // postgres connection string
	SQLitePath      string // file path or ":memory:"
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	PingRetries     int
	PingRetryDelay  time.Duration
}
