package scorehandlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	scoreservice "github.com/duffers-cup/clubhouse/app/modules/score/application"
	"github.com/duffers-cup/clubhouse/app/shared/httpjson"
)

// Handlers serves the score entry endpoints.
type Handlers struct {
	service *scoreservice.ScoreService
	logger  *slog.Logger
}

// NewHandlers creates the score handlers.
func NewHandlers(service *scoreservice.ScoreService, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Routes mounts the score endpoints.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Put("/", h.SubmitScore)
	r.Get("/recent", h.RecentScores)
	r.Get("/players/{playerID}/courses/{courseID}", h.PlayerCourseScores)
	return r
}

// SubmitScore handles PUT /api/scores. Re-submitting the same hole
// overwrites the previous entry.
func (h *Handlers) SubmitScore(w http.ResponseWriter, r *http.Request) {
	var in scoreservice.SubmitScoreInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	score, err := h.service.SubmitScore(r.Context(), in)
	if err != nil {
		if errors.Is(err, scoreservice.ErrInvalidScore) {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to submit score", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to record score")
		return
	}
	httpjson.Respond(w, http.StatusOK, score)
}

// RecentScores handles GET /api/scores/recent.
func (h *Handlers) RecentScores(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	scores, err := h.service.RecentScores(r.Context(), limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to fetch recent scores", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch scores")
		return
	}
	httpjson.Respond(w, http.StatusOK, scores)
}

// PlayerCourseScores handles GET /api/scores/players/{playerID}/courses/{courseID}.
func (h *Handlers) PlayerCourseScores(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid player id")
		return
	}
	courseID, err := strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid course id")
		return
	}

	scores, err := h.service.PlayerCourseScores(r.Context(), playerID, courseID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to fetch player scores", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch scores")
		return
	}
	httpjson.Respond(w, http.StatusOK, scores)
}
