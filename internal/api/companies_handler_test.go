package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard/internal/domain"
)

func newCompaniesMux(companies *fakeCompanyRepo) *http.ServeMux {
	handler := NewCompaniesHandler(companies)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /companies", handler.List)
	mux.HandleFunc("GET /companies/{handle}", handler.Get)
	mux.HandleFunc("POST /companies", handler.Create)
	mux.HandleFunc("PATCH /companies/{handle}", handler.Update)
	mux.HandleFunc("DELETE /companies/{handle}", handler.Delete)
	return mux
}

func TestListCompanies_Filters(t *testing.T) {
	companies := &fakeCompanyRepo{companies: map[string]domain.Company{
		"acme": {Handle: "acme", Name: "Acme Corp", NumEmployees: intp(100)},
	}}
	mux := newCompaniesMux(companies)

	req := httptest.NewRequest(http.MethodGet, "/companies?name=corp&minEmployees=10&maxEmployees=1000", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(companies.lastSpec.Predicates) != 3 {
		t.Fatalf("expected 3 predicates, got %+v", companies.lastSpec.Predicates)
	}
}

func TestListCompanies_RejectsInvertedBounds(t *testing.T) {
	companies := &fakeCompanyRepo{companies: map[string]domain.Company{}}
	mux := newCompaniesMux(companies)

	req := httptest.NewRequest(http.MethodGet, "/companies?minEmployees=100&maxEmployees=1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateCompany_Validation(t *testing.T) {
	companies := &fakeCompanyRepo{companies: map[string]domain.Company{}}
	mux := newCompaniesMux(companies)

	req := httptest.NewRequest(http.MethodPost, "/companies",
		strings.NewReader(`{"handle":"newco","name":"NewCo"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Uppercase handles violate the lowercase rule
	req = httptest.NewRequest(http.MethodPost, "/companies",
		strings.NewReader(`{"handle":"NewCo","name":"NewCo"}`))
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for uppercase handle, got %d", rec.Code)
	}
}
