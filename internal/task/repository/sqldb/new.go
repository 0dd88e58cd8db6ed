package sqldb

import (
	"database/sql"
	"fmt"
	"time"

	"taskflow-pro/internal/task/repository"
	"taskflow-pro/pkg/database"
	"taskflow-pro/pkg/log"
)

type implRepository struct {
	db     *sql.DB
	driver string
	l      log.Logger
	now    func() time.Time
}

// New creates a SQL-backed Repository for the task domain.
// driver selects the placeholder dialect (postgres or sqlite).
func New(db *sql.DB, driver string, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqldb: db is required")
	}
	return &implRepository{
		db:     db,
		driver: driver,
		l:      l,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqldb.%s", method)
}

// q rewrites a postgres-style query for the active driver.
func (r *implRepository) q(query string) string {
	return database.Rebind(r.driver, query)
}
