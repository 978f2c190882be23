package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard/internal/domain"
)

const jobColumns = "id, title, salary, equity, company_handle"

// jobRepository implements JobRepository on top of a pgx pool.
type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository creates a new job repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

// Create inserts a new job and returns it with the server-assigned ID.
func (r *jobRepository) Create(ctx context.Context, job domain.Job) (domain.Job, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, salary, equity, company_handle)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+jobColumns,
		job.Title, job.Salary, job.Equity, job.CompanyHandle,
	)

	created, err := scanJob(row)
	if err != nil {
		return domain.Job{}, fmt.Errorf("failed to create job: %w", err)
	}
	return created, nil
}

// GetByID retrieves a job by ID.
func (r *jobRepository) GetByID(ctx context.Context, id int64) (domain.Job, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Job{}, ErrNotFound
		}
		return domain.Job{}, fmt.Errorf("failed to get job %d: %w", id, err)
	}
	return job, nil
}

// List executes a QuerySpec against the jobs table and returns the
// matching rows in the spec's order.
func (r *jobRepository) List(ctx context.Context, spec domain.QuerySpec) ([]domain.Job, error) {
	rows, err := r.pool.Query(ctx, buildListQuery("jobs", jobColumns, spec), spec.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job rows: %w", err)
	}
	return jobs, nil
}

// Update applies a partial update and returns the resulting job. The SET
// clause is assembled from the non-nil fields only.
func (r *jobRepository) Update(ctx context.Context, id int64, update domain.JobUpdate) (domain.Job, error) {
	if update.IsEmpty() {
		return domain.Job{}, errors.New("no fields to update")
	}

	set := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if update.Title != nil {
		args = append(args, *update.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if update.Salary != nil {
		args = append(args, *update.Salary)
		set = append(set, fmt.Sprintf("salary = $%d", len(args)))
	}
	if update.Equity != nil {
		args = append(args, *update.Equity)
		set = append(set, fmt.Sprintf("equity = $%d", len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE jobs SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), jobColumns,
	)

	job, err := scanJob(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Job{}, ErrNotFound
		}
		return domain.Job{}, fmt.Errorf("failed to update job %d: %w", id, err)
	}
	return job, nil
}

// Delete removes a job by ID.
func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateBatch bulk-inserts jobs via COPY and returns the inserted count.
func (r *jobRepository) CreateBatch(ctx context.Context, jobs []domain.Job) (int, error) {
	if len(jobs) == 0 {
		return 0, nil
	}

	copied, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"jobs"},
		[]string{"title", "salary", "equity", "company_handle"},
		pgx.CopyFromSlice(len(jobs), func(i int) ([]any, error) {
			return []any{jobs[i].Title, jobs[i].Salary, jobs[i].Equity, jobs[i].CompanyHandle}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to batch insert jobs: %w", err)
	}
	return int(copied), nil
}

// buildListQuery renders the final SELECT for a QuerySpec. The spec
// carries already-numbered placeholders, so the fragments compose by
// concatenation.
func buildListQuery(table, columns string, spec domain.QuerySpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", columns, table)
	if where := spec.WhereClause(); where != "" {
		b.WriteString(" ")
		b.WriteString(where)
	}
	if spec.OrderBy != "" {
		fmt.Fprintf(&b, " ORDER BY %s", spec.OrderBy)
	}
	return b.String()
}

func scanJob(row pgx.Row) (domain.Job, error) {
	var job domain.Job
	if err := row.Scan(&job.ID, &job.Title, &job.Salary, &job.Equity, &job.CompanyHandle); err != nil {
		return domain.Job{}, err
	}
	return job, nil
}
