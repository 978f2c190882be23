package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseCompanyFilter_Valid(t *testing.T) {
	filter, err := ParseCompanyFilter(map[string]any{
		"name":         "net",
		"minEmployees": 10,
		"maxEmployees": 500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spec := filter.BuildQuery()
	wantExprs := []string{"name ILIKE $1", "num_employees >= $2", "num_employees <= $3"}
	if len(spec.Predicates) != len(wantExprs) {
		t.Fatalf("expected %d predicates, got %d", len(wantExprs), len(spec.Predicates))
	}
	for i, want := range wantExprs {
		if spec.Predicates[i].Expr != want {
			t.Fatalf("predicate %d: expected %q, got %q", i, want, spec.Predicates[i].Expr)
		}
	}
	if !reflect.DeepEqual(spec.Args, []any{"%net%", 10, 500}) {
		t.Fatalf("unexpected args: %v", spec.Args)
	}
	if spec.OrderBy != "name" {
		t.Fatalf("expected name ordering, got %q", spec.OrderBy)
	}
}

func TestParseCompanyFilter_BoundsCrossFieldCheck(t *testing.T) {
	_, err := ParseCompanyFilter(map[string]any{"minEmployees": 100, "maxEmployees": 10})
	var invalid InvalidFilterError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidFilterError, got %v", err)
	}
	if invalid.Field != "minEmployees" {
		t.Fatalf("expected minEmployees to be reported, got %q", invalid.Field)
	}

	// Equal bounds are fine.
	if _, err := ParseCompanyFilter(map[string]any{"minEmployees": 10, "maxEmployees": 10}); err != nil {
		t.Fatalf("unexpected error for equal bounds: %v", err)
	}
}

func TestParseCompanyFilter_RejectsUnknownAndMistyped(t *testing.T) {
	if _, err := ParseCompanyFilter(map[string]any{"title": "x"}); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if _, err := ParseCompanyFilter(map[string]any{"minEmployees": "ten"}); err == nil {
		t.Fatalf("expected error for mistyped minEmployees")
	}
	if _, err := ParseCompanyFilter(map[string]any{"maxEmployees": -5}); err == nil {
		t.Fatalf("expected error for negative maxEmployees")
	}
}

func TestCompanyFilter_Matches(t *testing.T) {
	small := Company{Handle: "tiny", Name: "Tiny Corp", NumEmployees: intPtr(5)}
	large := Company{Handle: "mega", Name: "MegaNet", NumEmployees: intPtr(5000)}
	unsized := Company{Handle: "stealth", Name: "Stealth Net"}

	nameFilter := CompanyFilter{Name: strPtr("NET")}
	if !nameFilter.Matches(large) || !nameFilter.Matches(unsized) {
		t.Fatalf("expected case-insensitive name match")
	}
	if nameFilter.Matches(small) {
		t.Fatalf("expected non-matching name to be excluded")
	}

	sizeFilter := CompanyFilter{MinEmployees: intPtr(10), MaxEmployees: intPtr(10000)}
	if !sizeFilter.Matches(large) {
		t.Fatalf("expected in-range company to match")
	}
	if sizeFilter.Matches(small) {
		t.Fatalf("expected below-range company to be excluded")
	}
	if sizeFilter.Matches(unsized) {
		t.Fatalf("expected company without employee count to be excluded by bounds")
	}
}
