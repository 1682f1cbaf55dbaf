package repository

import (
	"context"

	"pixel-recruiter/internal/model"
)

// JobRepository is the read-only interface over the job store. The chat
// core never writes job postings.
type JobRepository interface {
	// ListBySalary returns jobs ordered by the numeric interpretation of
	// their currency-formatted salary text.
	ListBySalary(ctx context.Context, opt ListBySalaryOptions) ([]model.Job, error)

	// ListByRecency returns jobs ordered by creation time descending.
	ListByRecency(ctx context.Context, opt ListByRecencyOptions) ([]model.Job, error)

	// GetByIDs fetches full records for an id set, capped at limit.
	GetByIDs(ctx context.Context, ids []int64, limit int) ([]model.Job, error)
}

// VectorRepository handles vector operations over the job search collection.
type VectorRepository interface {
	// EmbedJob generates an embedding for a job posting and stores it.
	EmbedJob(ctx context.Context, job model.Job) error

	// SearchJobs returns candidate job ids ranked by semantic similarity
	// to the raw question text.
	SearchJobs(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// SearchResult is one ranked semantic search candidate.
type SearchResult struct {
	JobID int64
	Score float64
}
