package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"jobboard/internal/domain"
	"jobboard/internal/repository"
)

type stubJobRepo struct {
	jobs     []domain.Job
	lastSpec domain.QuerySpec
}

func (s *stubJobRepo) Create(_ context.Context, job domain.Job) (domain.Job, error) {
	return job, nil
}

func (s *stubJobRepo) GetByID(_ context.Context, _ int64) (domain.Job, error) {
	return domain.Job{}, repository.ErrNotFound
}

func (s *stubJobRepo) List(_ context.Context, spec domain.QuerySpec) ([]domain.Job, error) {
	s.lastSpec = spec
	return s.jobs, nil
}

func (s *stubJobRepo) Update(_ context.Context, _ int64, _ domain.JobUpdate) (domain.Job, error) {
	return domain.Job{}, repository.ErrNotFound
}

func (s *stubJobRepo) Delete(_ context.Context, _ int64) error {
	return repository.ErrNotFound
}

func (s *stubJobRepo) CreateBatch(_ context.Context, jobs []domain.Job) (int, error) {
	return len(jobs), nil
}

func TestWriteCSV(t *testing.T) {
	salary := 120000
	equity := 0.05
	repo := &stubJobRepo{jobs: []domain.Job{
		{ID: 1, Title: "Engineer", Salary: &salary, Equity: &equity, CompanyHandle: "acme"},
		{ID: 2, Title: "Intern", CompanyHandle: "acme"},
	}}
	service := NewService(repo)

	var buf bytes.Buffer
	title := "eng"
	rows, err := service.WriteCSV(context.Background(), domain.JobFilter{Title: &title}.BuildQuery(), &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != 2 {
		t.Fatalf("expected 2 rows written, got %d", rows)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "id,title,salary,equity,company_handle" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "1,Engineer,120000,0.05,acme" {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	// Null salary and equity render as empty cells
	if lines[2] != "2,Intern,,,acme" {
		t.Fatalf("unexpected second row: %q", lines[2])
	}

	// The export runs the same spec the JSON listing would
	if len(repo.lastSpec.Predicates) != 1 || repo.lastSpec.Predicates[0].Expr != "title ILIKE $1" {
		t.Fatalf("unexpected spec executed: %+v", repo.lastSpec)
	}
}
