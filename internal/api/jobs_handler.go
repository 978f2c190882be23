package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"jobboard/internal/domain"
	"jobboard/internal/repository"
)

// JobsHandler serves the /jobs resource. Listing is open to anonymous
// callers; mutations are gated behind admin middleware at registration.
type JobsHandler struct {
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	validate  *validator.Validate
}

// NewJobsHandler creates a jobs handler.
func NewJobsHandler(jobs repository.JobRepository, companies repository.CompanyRepository) *JobsHandler {
	return &JobsHandler{
		jobs:      jobs,
		companies: companies,
		validate:  validator.New(),
	}
}

type jobCreateRequest struct {
	Title         string   `json:"title" validate:"required"`
	Salary        *int     `json:"salary" validate:"omitempty,gte=0"`
	Equity        *float64 `json:"equity" validate:"omitempty,gte=0,lte=1"`
	CompanyHandle string   `json:"companyHandle" validate:"required"`
}

type jobUpdateRequest struct {
	Title  *string  `json:"title" validate:"omitempty,min=1"`
	Salary *int     `json:"salary" validate:"omitempty,gte=0"`
	Equity *float64 `json:"equity" validate:"omitempty,gte=0,lte=1"`
}

// List handles GET /jobs: validates the filter parameters, builds the
// query spec, and executes it against the store.
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	bag, err := queryBag(r.URL.Query(), jobFilterParams)
	if err != nil {
		respondError(w, err)
		return
	}

	filter, err := domain.ParseJobFilter(bag)
	if err != nil {
		respondError(w, err)
		return
	}

	jobs, err := h.jobs.List(r.Context(), filter.BuildQuery())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// Get handles GET /jobs/{id}.
func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.jobs.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"job": job})
}

// Create handles POST /jobs (admin only).
func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid job payload: %v", err))
		return
	}
	exists, err := h.companies.Exists(r.Context(), req.CompanyHandle)
	if err != nil {
		respondError(w, err)
		return
	}
	if !exists {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown company handle %q", req.CompanyHandle))
		return
	}

	job, err := h.jobs.Create(r.Context(), domain.Job{
		Title:         req.Title,
		Salary:        req.Salary,
		Equity:        req.Equity,
		CompanyHandle: req.CompanyHandle,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"job": job})
}

// Update handles PATCH /jobs/{id} (admin only). ID and company handle are
// immutable; unknown body fields are rejected.
func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req jobUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid job payload: %v", err))
		return
	}

	update := domain.JobUpdate{Title: req.Title, Salary: req.Salary, Equity: req.Equity}
	if update.IsEmpty() {
		writeError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	job, err := h.jobs.Update(r.Context(), id, update)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"job": job})
}

// Delete handles DELETE /jobs/{id} (admin only).
func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := jobID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.jobs.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
}

func jobID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid job id %q", r.PathValue("id"))
	}
	return id, nil
}

// decodeBody parses a JSON request body, rejecting unknown fields so
// typos surface as client errors instead of silent no-ops.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
