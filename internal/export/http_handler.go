package export

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"jobboard/internal/domain"
)

// Handler exposes the filtered listing export as a CSV download. It
// accepts the same filter parameters as the JSON listing endpoint.
type Handler struct {
	service  *Service
	parseBag func(r *http.Request) (map[string]any, error)
}

// NewHTTPHandler wraps the service with a GET endpoint. parseBag converts
// the request's query parameters into a typed filter bag; it lives with
// the API layer so both listing surfaces coerce parameters identically.
func NewHTTPHandler(service *Service, parseBag func(r *http.Request) (map[string]any, error)) http.Handler {
	return &Handler{service: service, parseBag: parseBag}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	bag, err := h.parseBag(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter, err := domain.ParseJobFilter(bag)
	if err != nil {
		var invalid domain.InvalidFilterError
		if errors.As(err, &invalid) {
			http.Error(w, invalid.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	rows, err := h.service.WriteCSV(r.Context(), filter.BuildQuery(), &buf)
	if err != nil {
		log.Error().Err(err).Msg("job export failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="jobs.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
	log.Info().Int("rows", rows).Msg("job export completed")
}
