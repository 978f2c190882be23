package repository

import (
	"testing"

	"jobboard/internal/domain"
)

func TestBuildListQuery_NoPredicates(t *testing.T) {
	spec := domain.JobFilter{}.BuildQuery()
	got := buildListQuery("jobs", jobColumns, spec)
	want := "SELECT id, title, salary, equity, company_handle FROM jobs ORDER BY title"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBuildListQuery_AllPredicates(t *testing.T) {
	title := "engineer"
	minSalary := 50000
	hasEquity := true
	spec := domain.JobFilter{Title: &title, MinSalary: &minSalary, HasEquity: &hasEquity}.BuildQuery()

	got := buildListQuery("jobs", jobColumns, spec)
	want := "SELECT id, title, salary, equity, company_handle FROM jobs " +
		"WHERE title ILIKE $1 AND salary >= $2 AND equity > 0 ORDER BY title"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if len(spec.Args) != 2 {
		t.Fatalf("expected 2 bind args, got %d", len(spec.Args))
	}
}

func TestBuildListQuery_CompanySpec(t *testing.T) {
	name := "corp"
	spec := domain.CompanyFilter{Name: &name}.BuildQuery()

	got := buildListQuery("companies", companyColumns, spec)
	want := "SELECT handle, name, description, num_employees, logo_url FROM companies " +
		"WHERE name ILIKE $1 ORDER BY name"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
