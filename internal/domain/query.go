package domain

import "strings"

// Predicate pairs one SQL comparison fragment with the bind values it
// consumes. Fragments carry their positional placeholders ($1, $2, ...)
// already numbered by the builder that produced them.
type Predicate struct {
	Expr string
	Args []any
}

// QuerySpec is the normalized, store-agnostic representation of a listing
// query: an ordered predicate list combined with AND, the bind values in
// positional order, and a deterministic ordering clause. It is built once
// per request and consumed once by the repository that executes it.
type QuerySpec struct {
	Predicates []Predicate
	Args       []any
	OrderBy    string
}

// Add appends a predicate and its bind values.
func (s *QuerySpec) Add(expr string, args ...any) {
	s.Predicates = append(s.Predicates, Predicate{Expr: expr, Args: args})
	s.Args = append(s.Args, args...)
}

// NextArg returns the positional placeholder index the next bind value
// will occupy.
func (s *QuerySpec) NextArg() int {
	return len(s.Args) + 1
}

// WhereClause renders the combined WHERE clause, or an empty string when
// the spec has no predicates.
func (s QuerySpec) WhereClause() string {
	if len(s.Predicates) == 0 {
		return ""
	}
	exprs := make([]string, len(s.Predicates))
	for i, p := range s.Predicates {
		exprs[i] = p.Expr
	}
	return "WHERE " + strings.Join(exprs, " AND ")
}
