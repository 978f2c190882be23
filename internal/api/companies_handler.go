package api

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"jobboard/internal/domain"
	"jobboard/internal/repository"
)

// CompaniesHandler serves the /companies resource.
type CompaniesHandler struct {
	companies repository.CompanyRepository
	validate  *validator.Validate
}

// NewCompaniesHandler creates a companies handler.
func NewCompaniesHandler(companies repository.CompanyRepository) *CompaniesHandler {
	return &CompaniesHandler{
		companies: companies,
		validate:  validator.New(),
	}
}

type companyCreateRequest struct {
	Handle       string  `json:"handle" validate:"required,lowercase"`
	Name         string  `json:"name" validate:"required"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees" validate:"omitempty,gte=0"`
	LogoURL      *string `json:"logoUrl" validate:"omitempty,url"`
}

type companyUpdateRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	NumEmployees *int    `json:"numEmployees" validate:"omitempty,gte=0"`
	LogoURL      *string `json:"logoUrl" validate:"omitempty,url"`
}

// List handles GET /companies with name/minEmployees/maxEmployees filters.
func (h *CompaniesHandler) List(w http.ResponseWriter, r *http.Request) {
	bag, err := queryBag(r.URL.Query(), companyFilterParams)
	if err != nil {
		respondError(w, err)
		return
	}

	filter, err := domain.ParseCompanyFilter(bag)
	if err != nil {
		respondError(w, err)
		return
	}

	companies, err := h.companies.List(r.Context(), filter.BuildQuery())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"companies": companies})
}

// Get handles GET /companies/{handle}.
func (h *CompaniesHandler) Get(w http.ResponseWriter, r *http.Request) {
	company, err := h.companies.GetByHandle(r.Context(), r.PathValue("handle"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"company": company})
}

// Create handles POST /companies (admin only).
func (h *CompaniesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req companyCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid company payload: %v", err))
		return
	}

	company, err := h.companies.Create(r.Context(), domain.Company{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"company": company})
}

// Update handles PATCH /companies/{handle} (admin only).
func (h *CompaniesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req companyUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid company payload: %v", err))
		return
	}

	update := domain.CompanyUpdate{
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoURL:      req.LogoURL,
	}
	if update.IsEmpty() {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	company, err := h.companies.Update(r.Context(), r.PathValue("handle"), update)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"company": company})
}

// Delete handles DELETE /companies/{handle} (admin only).
func (h *CompaniesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	handle := r.PathValue("handle")
	if err := h.companies.Delete(r.Context(), handle); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": handle})
}
