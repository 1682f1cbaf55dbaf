package postgre

import (
	"database/sql"
	"fmt"

	"pixel-recruiter/internal/job/repository"
	"pixel-recruiter/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed JobRepository.
func New(db *sql.DB, l log.Logger) repository.JobRepository {
	if db == nil {
		panic("job/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("job/repository/postgre.%s", method)
}
