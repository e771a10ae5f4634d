package highlightshandlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	highlightsservice "github.com/duffers-cup/clubhouse/app/modules/highlights/application"
	"github.com/duffers-cup/clubhouse/app/shared/httpjson"
)

// Handlers serves the highlights feed endpoint.
type Handlers struct {
	service *highlightsservice.HighlightsService
	logger  *slog.Logger
}

// NewHandlers creates the highlights handlers.
func NewHandlers(service *highlightsservice.HighlightsService, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Routes mounts the highlights endpoints.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Feed)
	return r
}

// Feed handles GET /api/highlights.
func (h *Handlers) Feed(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Feed(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to build highlights feed", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to build highlights")
		return
	}
	httpjson.Respond(w, http.StatusOK, items)
}
