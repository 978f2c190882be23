package domain

import (
	"fmt"
	"strings"
)

// CompanyFilter represents the recognized filtering options for listing
// companies. Nil fields mean the corresponding predicate is omitted.
type CompanyFilter struct {
	Name         *string
	MinEmployees *int
	MaxEmployees *int
}

var companyFilterKeys = map[string]struct{}{
	"name":         {},
	"minEmployees": {},
	"maxEmployees": {},
}

// ParseCompanyFilter validates a raw filter bag and coerces it into a
// CompanyFilter. Unlike jobs, the employee bounds carry a cross-field
// constraint: a lower bound above the upper bound can never match and is
// rejected outright.
func ParseCompanyFilter(raw map[string]any) (CompanyFilter, error) {
	if err := rejectUnknownKeys(raw, companyFilterKeys); err != nil {
		return CompanyFilter{}, err
	}

	var filter CompanyFilter

	if value, ok := raw["name"]; ok {
		name, ok := value.(string)
		if !ok {
			return CompanyFilter{}, InvalidFilterError{Field: "name", Reason: fmt.Sprintf("expected string, got %T", value)}
		}
		filter.Name = &name
	}

	if value, ok := raw["minEmployees"]; ok {
		minEmployees, err := intValue("minEmployees", value)
		if err != nil {
			return CompanyFilter{}, err
		}
		if minEmployees < 0 {
			return CompanyFilter{}, InvalidFilterError{Field: "minEmployees", Reason: "must not be negative"}
		}
		filter.MinEmployees = &minEmployees
	}

	if value, ok := raw["maxEmployees"]; ok {
		maxEmployees, err := intValue("maxEmployees", value)
		if err != nil {
			return CompanyFilter{}, err
		}
		if maxEmployees < 0 {
			return CompanyFilter{}, InvalidFilterError{Field: "maxEmployees", Reason: "must not be negative"}
		}
		filter.MaxEmployees = &maxEmployees
	}

	if filter.MinEmployees != nil && filter.MaxEmployees != nil && *filter.MinEmployees > *filter.MaxEmployees {
		return CompanyFilter{}, InvalidFilterError{Field: "minEmployees", Reason: "must not exceed maxEmployees"}
	}

	return filter, nil
}

// BuildQuery produces the QuerySpec for this filter.
func (f CompanyFilter) BuildQuery() QuerySpec {
	spec := QuerySpec{OrderBy: "name"}

	if f.Name != nil {
		spec.Add(fmt.Sprintf("name ILIKE $%d", spec.NextArg()), "%"+*f.Name+"%")
	}
	if f.MinEmployees != nil {
		spec.Add(fmt.Sprintf("num_employees >= $%d", spec.NextArg()), *f.MinEmployees)
	}
	if f.MaxEmployees != nil {
		spec.Add(fmt.Sprintf("num_employees <= $%d", spec.NextArg()), *f.MaxEmployees)
	}

	return spec
}

// Matches reports whether a company satisfies this filter, mirroring the
// SQL predicates for in-memory stores.
func (f CompanyFilter) Matches(company Company) bool {
	if f.Name != nil {
		if !strings.Contains(strings.ToLower(company.Name), strings.ToLower(*f.Name)) {
			return false
		}
	}
	if f.MinEmployees != nil {
		if company.NumEmployees == nil || *company.NumEmployees < *f.MinEmployees {
			return false
		}
	}
	if f.MaxEmployees != nil {
		if company.NumEmployees == nil || *company.NumEmployees > *f.MaxEmployees {
			return false
		}
	}
	return true
}
