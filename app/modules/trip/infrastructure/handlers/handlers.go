package triphandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	tripservice "github.com/duffers-cup/clubhouse/app/modules/trip/application"
	tripdb "github.com/duffers-cup/clubhouse/app/modules/trip/infrastructure/repositories"
	"github.com/duffers-cup/clubhouse/app/shared/httpjson"
)

// Handlers serves the trip info endpoints.
type Handlers struct {
	service *tripservice.TripService
	logger  *slog.Logger
}

// NewHandlers creates the trip handlers.
func NewHandlers(service *tripservice.TripService, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Routes mounts the trip endpoints.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/lodging", h.Lodging)
	r.Get("/dining", h.Dining)
	r.Get("/schedule", h.Schedule)
	r.Post("/schedule", h.AddScheduleEntry)
	r.Delete("/schedule/{entryID}", h.RemoveScheduleEntry)
	return r
}

// Lodging handles GET /api/trip/lodging.
func (h *Handlers) Lodging(w http.ResponseWriter, r *http.Request) {
	httpjson.Respond(w, http.StatusOK, h.service.Lodging())
}

// Dining handles GET /api/trip/dining.
func (h *Handlers) Dining(w http.ResponseWriter, r *http.Request) {
	httpjson.Respond(w, http.StatusOK, h.service.Dining())
}

// Schedule handles GET /api/trip/schedule.
func (h *Handlers) Schedule(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Schedule(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list schedule", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch schedule")
		return
	}
	httpjson.Respond(w, http.StatusOK, entries)
}

// AddScheduleEntry handles POST /api/trip/schedule.
func (h *Handlers) AddScheduleEntry(w http.ResponseWriter, r *http.Request) {
	var in tripservice.ScheduleInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.service.AddScheduleEntry(r.Context(), in)
	if err != nil {
		if errors.Is(err, tripservice.ErrInvalidEntry) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to add schedule entry", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to add schedule entry")
		return
	}
	httpjson.Respond(w, http.StatusCreated, entry)
}

// RemoveScheduleEntry handles DELETE /api/trip/schedule/{entryID}.
func (h *Handlers) RemoveScheduleEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "entryID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	if err := h.service.RemoveScheduleEntry(r.Context(), id); err != nil {
		if errors.Is(err, tripdb.ErrEntryNotFound) {
			httpjson.Error(w, http.StatusNotFound, "schedule entry not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to remove schedule entry", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to remove schedule entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
