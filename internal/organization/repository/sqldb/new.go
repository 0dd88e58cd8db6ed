package sqldb

import (
	"database/sql"
	"fmt"
	"time"

	"taskflow-pro/internal/organization/repository"
	"taskflow-pro/pkg/database"
	"taskflow-pro/pkg/log"
)

type implRepository struct {
	db     *sql.DB
	driver string
	l      log.Logger
	now    func() time.Time
}

// New creates a SQL-backed organization Repository.
func New(db *sql.DB, driver string, l log.Logger) repository.Repository {
	if db == nil {
		panic("organization/repository/sqldb: db is required")
	}
	return &implRepository{
		db:     db,
		driver: driver,
		l:      l,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("organization/repository/sqldb.%s", method)
}

func (r *implRepository) q(query string) string {
	return database.Rebind(r.driver, query)
}
