package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"jobboard/internal/domain"
	"jobboard/internal/repository"
)

// Service streams a filtered job listing as CSV. It consumes the same
// QuerySpec the JSON listing uses, so an export always matches what the
// caller would see from GET /jobs with identical filters.
type Service struct {
	jobs repository.JobRepository
}

// NewService creates an export service.
func NewService(jobs repository.JobRepository) *Service {
	return &Service{jobs: jobs}
}

var csvHeader = []string{"id", "title", "salary", "equity", "company_handle"}

// WriteCSV executes the spec and writes the rows to w, returning the
// number of data rows written.
func (s *Service) WriteCSV(ctx context.Context, spec domain.QuerySpec, w io.Writer) (int, error) {
	jobs, err := s.jobs.List(ctx, spec)
	if err != nil {
		return 0, err
	}

	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	row := make([]string, len(csvHeader))
	for _, job := range jobs {
		row[0] = strconv.FormatInt(job.ID, 10)
		row[1] = job.Title
		row[2] = formatInt(job.Salary)
		row[3] = formatFloat(job.Equity)
		row[4] = job.CompanyHandle
		if err := csvWriter.Write(row); err != nil {
			return 0, fmt.Errorf("write job row: %w", err)
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return 0, fmt.Errorf("flush rows: %w", err)
	}
	return len(jobs), nil
}

func formatInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

func formatFloat(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}
