package ingestion

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"jobboard/internal/domain"
	"jobboard/internal/repository"
)

var (
	// ErrUnsupportedFormat is returned when an uploaded file is not supported.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	byteOrderMark = []byte{0xEF, 0xBB, 0xBF}
)

// expected column names, matched case-insensitively after trimming.
var jobColumns = []string{"title", "salary", "equity", "company_handle"}

// Service performs bulk job imports from uploaded CSV or XLSX files.
type Service struct {
	jobs      repository.JobRepository
	companies repository.CompanyRepository
}

// NewService creates an ingestion service.
func NewService(jobs repository.JobRepository, companies repository.CompanyRepository) *Service {
	return &Service{jobs: jobs, companies: companies}
}

// Request describes one uploaded file.
type Request struct {
	FileName string
	Data     io.Reader
}

// RowError records a data row that could not be imported.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Summary reports the outcome of an import.
type Summary struct {
	FileName     string     `json:"fileName"`
	RowsParsed   int        `json:"rowsParsed"`
	RowsInserted int        `json:"rowsInserted"`
	Errors       []RowError `json:"errors,omitempty"`
}

// Ingest parses the uploaded file, validates every data row, and
// bulk-inserts the valid jobs. Row-level failures are collected in the
// summary instead of aborting the whole import.
func (s *Service) Ingest(ctx context.Context, req Request) (Summary, error) {
	payload, err := io.ReadAll(req.Data)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read upload: %w", err)
	}

	header, rows, err := parseTable(req.FileName, payload)
	if err != nil {
		return Summary{}, err
	}

	columns, err := mapColumns(header)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{FileName: req.FileName, RowsParsed: len(rows)}
	knownHandles := map[string]bool{}
	jobs := make([]domain.Job, 0, len(rows))

	for idx, row := range rows {
		rowNum := idx + 2 // 1-based, after the header row
		job, err := parseJobRow(row, columns)
		if err != nil {
			summary.Errors = append(summary.Errors, RowError{Row: rowNum, Message: err.Error()})
			continue
		}

		exists, ok := knownHandles[job.CompanyHandle]
		if !ok {
			exists, err = s.companies.Exists(ctx, job.CompanyHandle)
			if err != nil {
				return Summary{}, fmt.Errorf("failed to check company %s: %w", job.CompanyHandle, err)
			}
			knownHandles[job.CompanyHandle] = exists
		}
		if !exists {
			summary.Errors = append(summary.Errors, RowError{Row: rowNum, Message: fmt.Sprintf("unknown company handle %q", job.CompanyHandle)})
			continue
		}

		jobs = append(jobs, job)
	}

	inserted, err := s.jobs.CreateBatch(ctx, jobs)
	if err != nil {
		return Summary{}, err
	}
	summary.RowsInserted = inserted

	log.Info().
		Str("file", req.FileName).
		Int("parsed", summary.RowsParsed).
		Int("inserted", summary.RowsInserted).
		Int("errors", len(summary.Errors)).
		Msg("job import completed")

	return summary, nil
}

type columnMap struct {
	title         int
	salary        int
	equity        int
	companyHandle int
}

func mapColumns(header []string) (columnMap, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range jobColumns {
		if _, ok := index[required]; !ok {
			return columnMap{}, fmt.Errorf("missing required column %q", required)
		}
	}

	return columnMap{
		title:         index["title"],
		salary:        index["salary"],
		equity:        index["equity"],
		companyHandle: index["company_handle"],
	}, nil
}

func parseJobRow(row []string, columns columnMap) (domain.Job, error) {
	job := domain.Job{
		Title:         strings.TrimSpace(cell(row, columns.title)),
		CompanyHandle: strings.TrimSpace(cell(row, columns.companyHandle)),
	}
	if job.Title == "" {
		return domain.Job{}, errors.New("title is required")
	}
	if job.CompanyHandle == "" {
		return domain.Job{}, errors.New("company_handle is required")
	}

	if raw := strings.TrimSpace(cell(row, columns.salary)); raw != "" {
		salary, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Job{}, fmt.Errorf("invalid salary %q", raw)
		}
		if salary < 0 {
			return domain.Job{}, fmt.Errorf("salary must not be negative, got %d", salary)
		}
		job.Salary = &salary
	}

	if raw := strings.TrimSpace(cell(row, columns.equity)); raw != "" {
		equity, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.Job{}, fmt.Errorf("invalid equity %q", raw)
		}
		if equity < 0 || equity > 1 {
			return domain.Job{}, fmt.Errorf("equity must be between 0 and 1, got %v", equity)
		}
		job.Equity = &equity
	}

	return job, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseTable(fileName string, payload []byte) ([]string, [][]string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".csv":
		return parseCSV(payload)
	case ".xlsx":
		return parseExcel(payload)
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func parseCSV(payload []byte) ([]string, [][]string, error) {
	reader := bufio.NewReader(bytes.NewReader(payload))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}

	return splitHeader(records)
}

func parseExcel(payload []byte) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows from xlsx: %w", err)
	}

	return splitHeader(rows)
}

// splitHeader takes the first non-empty row as the header and the rest as
// data, skipping blank rows.
func splitHeader(records [][]string) ([]string, [][]string, error) {
	var header []string
	var dataRows [][]string

	for _, row := range records {
		if isBlankRow(row) {
			continue
		}
		if header == nil {
			header = row
			continue
		}
		dataRows = append(dataRows, row)
	}

	if header == nil {
		return nil, nil, errors.New("no rows found in file")
	}
	return header, dataRows, nil
}

func isBlankRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
