package leaderboardhandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	leaderboardservice "github.com/duffers-cup/clubhouse/app/modules/leaderboard/application"
	playerdb "github.com/duffers-cup/clubhouse/app/modules/player/infrastructure/repositories"
	"github.com/duffers-cup/clubhouse/app/shared/httpjson"
)

// Handlers serves the leaderboard and scorecard read endpoints.
type Handlers struct {
	service *leaderboardservice.LeaderboardService
	logger  *slog.Logger
}

// NewHandlers creates the leaderboard handlers.
func NewHandlers(service *leaderboardservice.LeaderboardService, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Register mounts the leaderboard endpoints onto the API router. Unlike the
// CRUD modules these endpoints hang off several path roots, so they attach
// directly instead of returning a subrouter.
func (h *Handlers) Register(r chi.Router) {
	r.Get("/leaderboard", h.Standings)
	r.Get("/scorecards", h.AdminScorecards)
	r.Get("/players/{playerID}/scorecard", h.PlayerScorecards)
}

// Standings handles GET /api/leaderboard.
func (h *Handlers) Standings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.service.Standings(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to build standings", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to build leaderboard")
		return
	}
	httpjson.Respond(w, http.StatusOK, standings)
}

// AdminScorecards handles GET /api/scorecards.
func (h *Handlers) AdminScorecards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.service.AdminScorecards(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to build scorecards", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to build scorecards")
		return
	}
	httpjson.Respond(w, http.StatusOK, cards)
}

// PlayerScorecards handles GET /api/players/{playerID}/scorecard.
func (h *Handlers) PlayerScorecards(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid player id")
		return
	}

	cards, err := h.service.PlayerScorecards(r.Context(), playerID)
	if err != nil {
		if errors.Is(err, playerdb.ErrPlayerNotFound) {
			httpjson.Error(w, http.StatusNotFound, "player not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to build player scorecard", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to build scorecard")
		return
	}
	httpjson.Respond(w, http.StatusOK, cards)
}
