package playerhandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	playerservice "github.com/duffers-cup/clubhouse/app/modules/player/application"
	playerdb "github.com/duffers-cup/clubhouse/app/modules/player/infrastructure/repositories"
	"github.com/duffers-cup/clubhouse/app/shared/httpjson"
)

// Handlers serves the player registration endpoints.
type Handlers struct {
	service *playerservice.PlayerService
	logger  *slog.Logger
}

// NewHandlers creates the player handlers.
func NewHandlers(service *playerservice.PlayerService, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Routes mounts the player endpoints.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Register)
	r.Get("/", h.List)
	r.Get("/{playerID}", h.Get)
	r.Put("/{playerID}", h.Update)
	r.Delete("/{playerID}", h.Delete)
	return r
}

// Register handles POST /api/players.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in playerservice.RegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	player, err := h.service.Register(r.Context(), in)
	if err != nil {
		if validationErr(err) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to register player", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to register player")
		return
	}
	httpjson.Respond(w, http.StatusCreated, player)
}

// List handles GET /api/players.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.service.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list players", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch players")
		return
	}
	httpjson.Respond(w, http.StatusOK, players)
}

// Get handles GET /api/players/{playerID}.
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	player, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondPlayerError(w, r, err, "failed to fetch player")
		return
	}
	httpjson.Respond(w, http.StatusOK, player)
}

// Update handles PUT /api/players/{playerID}.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	var in playerservice.RegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	player, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		if validationErr(err) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondPlayerError(w, r, err, "failed to update player")
		return
	}
	httpjson.Respond(w, http.StatusOK, player)
}

// Delete handles DELETE /api/players/{playerID}.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondPlayerError(w, r, err, "failed to delete player")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) respondPlayerError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, playerdb.ErrPlayerNotFound) {
		httpjson.Error(w, http.StatusNotFound, "player not found")
		return
	}
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	httpjson.Error(w, http.StatusInternalServerError, msg)
}

func playerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid player id")
		return uuid.Nil, false
	}
	return id, true
}

func validationErr(err error) bool {
	return errors.Is(err, playerservice.ErrInvalidRegistration)
}
