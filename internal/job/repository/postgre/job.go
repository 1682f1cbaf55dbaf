package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"pixel-recruiter/internal/job/repository"
	"pixel-recruiter/internal/model"
)

// ListBySalary returns jobs ordered by numeric salary in the requested
// direction, with an optional title filter.
func (r *implRepository) ListBySalary(ctx context.Context, opt repository.ListBySalaryOptions) ([]model.Job, error) {
	direction := "DESC"
	if opt.Direction == "asc" {
		direction = "ASC"
	}

	query, args := buildListQuery(opt.TitleFilter, salaryExpr+" "+direction, opt.Limit)

	jobs, err := r.queryJobs(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBySalary"), err)
		return nil, repository.ErrFailedToList
	}
	return jobs, nil
}

// ListByRecency returns jobs ordered by creation time descending, with an
// optional title filter.
func (r *implRepository) ListByRecency(ctx context.Context, opt repository.ListByRecencyOptions) ([]model.Job, error) {
	query, args := buildListQuery(opt.TitleFilter, "j.created_at DESC", opt.Limit)

	jobs, err := r.queryJobs(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListByRecency"), err)
		return nil, repository.ErrFailedToList
	}
	return jobs, nil
}

// GetByIDs fetches full records for the given id set, capped at limit.
func (r *implRepository) GetByIDs(ctx context.Context, ids []int64, limit int) ([]model.Job, error) {
	if len(ids) == 0 {
		return []model.Job{}, nil
	}

	query := selectJobs + " WHERE j.id = ANY($1)" + groupJobs + " LIMIT $2"

	jobs, err := r.queryJobs(ctx, query, pq.Array(ids), limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByIDs"), err)
		return nil, repository.ErrFailedToGet
	}
	return jobs, nil
}

func (r *implRepository) queryJobs(ctx context.Context, query string, args ...any) ([]model.Job, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

func scanJob(rows *sql.Rows) (model.Job, error) {
	var job model.Job
	var tagNames string

	if err := rows.Scan(
		&job.ID, &job.Title, &job.Location, &job.Salary, &job.Description,
		&job.CreatedAt, &job.CompanyName, &tagNames,
	); err != nil {
		return model.Job{}, err
	}

	if tagNames != "" {
		job.TagNames = strings.Split(tagNames, ",")
	}
	return job, nil
}
