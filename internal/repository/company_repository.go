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

const companyColumns = "handle, name, description, num_employees, logo_url"

// companyRepository implements CompanyRepository on top of a pgx pool.
type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository creates a new company repository.
func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &companyRepository{pool: pool}
}

// Create inserts a new company.
func (r *companyRepository) Create(ctx context.Context, company domain.Company) (domain.Company, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO companies (handle, name, description, num_employees, logo_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+companyColumns,
		company.Handle, company.Name, company.Description, company.NumEmployees, company.LogoURL,
	)

	created, err := scanCompany(row)
	if err != nil {
		return domain.Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return created, nil
}

// GetByHandle retrieves a company by handle.
func (r *companyRepository) GetByHandle(ctx context.Context, handle string) (domain.Company, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE handle = $1`, handle)

	company, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Company{}, ErrNotFound
		}
		return domain.Company{}, fmt.Errorf("failed to get company %s: %w", handle, err)
	}
	return company, nil
}

// List executes a QuerySpec against the companies table.
func (r *companyRepository) List(ctx context.Context, spec domain.QuerySpec) ([]domain.Company, error) {
	rows, err := r.pool.Query(ctx, buildListQuery("companies", companyColumns, spec), spec.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company row: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read company rows: %w", err)
	}
	return companies, nil
}

// Update applies a partial update and returns the resulting company.
func (r *companyRepository) Update(ctx context.Context, handle string, update domain.CompanyUpdate) (domain.Company, error) {
	if update.IsEmpty() {
		return domain.Company{}, errors.New("no fields to update")
	}

	set := make([]string, 0, 4)
	args := make([]any, 0, 5)
	if update.Name != nil {
		args = append(args, *update.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if update.Description != nil {
		args = append(args, *update.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	if update.NumEmployees != nil {
		args = append(args, *update.NumEmployees)
		set = append(set, fmt.Sprintf("num_employees = $%d", len(args)))
	}
	if update.LogoURL != nil {
		args = append(args, *update.LogoURL)
		set = append(set, fmt.Sprintf("logo_url = $%d", len(args)))
	}
	args = append(args, handle)

	query := fmt.Sprintf(
		"UPDATE companies SET %s WHERE handle = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), companyColumns,
	)

	company, err := scanCompany(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Company{}, ErrNotFound
		}
		return domain.Company{}, fmt.Errorf("failed to update company %s: %w", handle, err)
	}
	return company, nil
}

// Delete removes a company and, via FK cascade, its jobs.
func (r *companyRepository) Delete(ctx context.Context, handle string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE handle = $1`, handle)
	if err != nil {
		return fmt.Errorf("failed to delete company %s: %w", handle, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether a company handle is present.
func (r *companyRepository) Exists(ctx context.Context, handle string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM companies WHERE handle = $1)`, handle).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check company %s: %w", handle, err)
	}
	return exists, nil
}

func scanCompany(row pgx.Row) (domain.Company, error) {
	var company domain.Company
	if err := row.Scan(&company.Handle, &company.Name, &company.Description, &company.NumEmployees, &company.LogoURL); err != nil {
		return domain.Company{}, err
	}
	return company, nil
}
