package repository

import (
	"context"
	"errors"

	"jobboard/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// JobRepository defines the interface for job record operations. List
// consumes a QuerySpec produced by the domain filter builder; the
// repository owns only execution, never predicate construction.
type JobRepository interface {
	Create(ctx context.Context, job domain.Job) (domain.Job, error)
	GetByID(ctx context.Context, id int64) (domain.Job, error)
	List(ctx context.Context, spec domain.QuerySpec) ([]domain.Job, error)
	Update(ctx context.Context, id int64, update domain.JobUpdate) (domain.Job, error)
	Delete(ctx context.Context, id int64) error
	CreateBatch(ctx context.Context, jobs []domain.Job) (int, error)
}

// CompanyRepository defines the interface for company record operations.
type CompanyRepository interface {
	Create(ctx context.Context, company domain.Company) (domain.Company, error)
	GetByHandle(ctx context.Context, handle string) (domain.Company, error)
	List(ctx context.Context, spec domain.QuerySpec) ([]domain.Company, error)
	Update(ctx context.Context, handle string, update domain.CompanyUpdate) (domain.Company, error)
	Delete(ctx context.Context, handle string) error
	Exists(ctx context.Context, handle string) (bool, error)
}
