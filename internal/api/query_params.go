package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"jobboard/internal/domain"
)

// JobFilterBag converts a request's query parameters into the typed bag
// the job filter parser consumes. Shared with the CSV export endpoint so
// both listing surfaces coerce parameters identically.
func JobFilterBag(r *http.Request) (map[string]any, error) {
	return queryBag(r.URL.Query(), jobFilterParams)
}

// paramType declares the logical type a query parameter is coerced to
// before filter validation runs.
type paramType int

const (
	paramString paramType = iota
	paramInt
	paramBool
)

var jobFilterParams = map[string]paramType{
	"title":     paramString,
	"minSalary": paramInt,
	"hasEquity": paramBool,
}

var companyFilterParams = map[string]paramType{
	"name":         paramString,
	"minEmployees": paramInt,
	"maxEmployees": paramInt,
}

// queryBag converts URL query parameters into a typed filter bag. Values
// for recognized fields are coerced to their logical types; a value that
// does not parse is an invalid filter. Unrecognized keys pass through as
// strings so the filter parser rejects them by name.
func queryBag(values url.Values, schema map[string]paramType) (map[string]any, error) {
	bag := make(map[string]any, len(values))
	for key := range values {
		raw := values.Get(key)

		kind, known := schema[key]
		if !known {
			bag[key] = raw
			continue
		}

		switch kind {
		case paramInt:
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return nil, domain.InvalidFilterError{Field: key, Reason: fmt.Sprintf("expected integer, got %q", raw)}
			}
			bag[key] = parsed
		case paramBool:
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, domain.InvalidFilterError{Field: key, Reason: fmt.Sprintf("expected boolean, got %q", raw)}
			}
			bag[key] = parsed
		default:
			bag[key] = raw
		}
	}
	return bag, nil
}
