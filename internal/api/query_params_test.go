package api

import (
	"errors"
	"net/url"
	"testing"

	"jobboard/internal/domain"
)

func TestQueryBag_CoercesRecognizedFields(t *testing.T) {
	values := url.Values{}
	values.Set("title", "dev")
	values.Set("minSalary", "50000")
	values.Set("hasEquity", "true")

	bag, err := queryBag(values, jobFilterParams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bag["title"] != "dev" {
		t.Fatalf("expected title kept as string, got %#v", bag["title"])
	}
	if bag["minSalary"] != 50000 {
		t.Fatalf("expected minSalary coerced to int, got %#v", bag["minSalary"])
	}
	if bag["hasEquity"] != true {
		t.Fatalf("expected hasEquity coerced to bool, got %#v", bag["hasEquity"])
	}
}

func TestQueryBag_PassesUnknownKeysThrough(t *testing.T) {
	values := url.Values{}
	values.Set("location", "remote")

	bag, err := queryBag(values, jobFilterParams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bag["location"] != "remote" {
		t.Fatalf("expected unknown key passed through untouched, got %#v", bag["location"])
	}
}

func TestQueryBag_FailsOnUnparseableValues(t *testing.T) {
	for _, tt := range []struct{ key, value string }{
		{"minSalary", "alot"},
		{"hasEquity", "maybe"},
	} {
		values := url.Values{}
		values.Set(tt.key, tt.value)

		_, err := queryBag(values, jobFilterParams)
		var invalid domain.InvalidFilterError
		if !errors.As(err, &invalid) {
			t.Fatalf("%s=%s: expected InvalidFilterError, got %v", tt.key, tt.value, err)
		}
		if invalid.Field != tt.key {
			t.Fatalf("expected field %q reported, got %q", tt.key, invalid.Field)
		}
	}
}
