package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// InvalidFilterError reports a listing filter that failed validation:
// an unrecognized key, a wrong type for a recognized key, or a value
// outside its domain. Handlers surface it as a client-side rejection.
type InvalidFilterError struct {
	Field  string
	Reason string
}

func (e InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter %q: %s", e.Field, e.Reason)
}

// JobFilter represents the recognized filtering options for listing jobs.
// Nil fields mean the corresponding predicate is omitted.
type JobFilter struct {
	Title     *string
	MinSalary *int
	HasEquity *bool
}

// jobFilterKeys is the closed set of keys a job listing filter accepts.
var jobFilterKeys = map[string]struct{}{
	"title":     {},
	"minSalary": {},
	"hasEquity": {},
}

// ParseJobFilter validates a raw filter bag against the recognized key set
// and coerces it into a JobFilter. Unknown keys and type mismatches fail
// with InvalidFilterError rather than being ignored or coerced.
func ParseJobFilter(raw map[string]any) (JobFilter, error) {
	if err := rejectUnknownKeys(raw, jobFilterKeys); err != nil {
		return JobFilter{}, err
	}

	var filter JobFilter

	if value, ok := raw["title"]; ok {
		title, ok := value.(string)
		if !ok {
			return JobFilter{}, InvalidFilterError{Field: "title", Reason: fmt.Sprintf("expected string, got %T", value)}
		}
		filter.Title = &title
	}

	if value, ok := raw["minSalary"]; ok {
		minSalary, err := intValue("minSalary", value)
		if err != nil {
			return JobFilter{}, err
		}
		if minSalary < 0 {
			return JobFilter{}, InvalidFilterError{Field: "minSalary", Reason: "must not be negative"}
		}
		filter.MinSalary = &minSalary
	}

	if value, ok := raw["hasEquity"]; ok {
		hasEquity, ok := value.(bool)
		if !ok {
			return JobFilter{}, InvalidFilterError{Field: "hasEquity", Reason: fmt.Sprintf("expected boolean, got %T", value)}
		}
		filter.HasEquity = &hasEquity
	}

	return filter, nil
}

// BuildQuery produces the QuerySpec for this filter. The transformation is
// pure: predicates are appended in a fixed field order, hasEquity=false
// contributes nothing (it means "don't filter on equity", not "equity must
// be zero"), and the ordering clause keeps repeated listings stable.
func (f JobFilter) BuildQuery() QuerySpec {
	spec := QuerySpec{OrderBy: "title"}

	if f.Title != nil {
		spec.Add(fmt.Sprintf("title ILIKE $%d", spec.NextArg()), "%"+*f.Title+"%")
	}
	if f.MinSalary != nil {
		spec.Add(fmt.Sprintf("salary >= $%d", spec.NextArg()), *f.MinSalary)
	}
	if f.HasEquity != nil && *f.HasEquity {
		spec.Add("equity > 0")
	}

	return spec
}

// Matches reports whether a job satisfies this filter. It mirrors the SQL
// predicates for in-memory stores: case-insensitive substring containment
// for title, inclusive lower bound for salary, strictly positive equity
// when hasEquity is set.
func (f JobFilter) Matches(job Job) bool {
	if f.Title != nil {
		if !strings.Contains(strings.ToLower(job.Title), strings.ToLower(*f.Title)) {
			return false
		}
	}
	if f.MinSalary != nil {
		if job.Salary == nil || *job.Salary < *f.MinSalary {
			return false
		}
	}
	if f.HasEquity != nil && *f.HasEquity {
		if job.Equity == nil || *job.Equity <= 0 {
			return false
		}
	}
	return true
}

// rejectUnknownKeys fails when the bag contains a key outside the allowed
// set. Offending keys are reported in sorted order so the first failure is
// deterministic regardless of map iteration.
func rejectUnknownKeys(raw map[string]any, allowed map[string]struct{}) error {
	var unknown []string
	for key := range raw {
		if _, ok := allowed[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return InvalidFilterError{Field: unknown[0], Reason: "unrecognized filter key"}
}

// intValue coerces a bag value to int. JSON decoding hands numbers over as
// float64, so integral floats are accepted; anything fractional or
// non-numeric is a type error.
func intValue(field string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, InvalidFilterError{Field: field, Reason: "expected integer, got fractional number"}
		}
		return int(v), nil
	default:
		return 0, InvalidFilterError{Field: field, Reason: fmt.Sprintf("expected integer, got %T", value)}
	}
}
