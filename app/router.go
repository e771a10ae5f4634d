package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coursehandlers "github.com/duffers-cup/clubhouse/app/modules/course/infrastructure/handlers"
	highlightshandlers "github.com/duffers-cup/clubhouse/app/modules/highlights/infrastructure/handlers"
	leaderboardhandlers "github.com/duffers-cup/clubhouse/app/modules/leaderboard/infrastructure/handlers"
	photohandlers "github.com/duffers-cup/clubhouse/app/modules/photo/infrastructure/handlers"
	playerhandlers "github.com/duffers-cup/clubhouse/app/modules/player/infrastructure/handlers"
	scorehandlers "github.com/duffers-cup/clubhouse/app/modules/score/infrastructure/handlers"
	triphandlers "github.com/duffers-cup/clubhouse/app/modules/trip/infrastructure/handlers"
	"github.com/duffers-cup/clubhouse/config"
)

type routes struct {
	players     *playerhandlers.Handlers
	courses     *coursehandlers.Handlers
	scores      *scorehandlers.Handlers
	leaderboard *leaderboardhandlers.Handlers
	highlights  *highlightshandlers.Handlers
	trip        *triphandlers.Handlers
	photos      *photohandlers.Handlers
}

// newRouter assembles the HTTP surface. Score and photo submissions share a
// write rate limit; everything else is unmetered.
func newRouter(cfg *config.Config, logger *slog.Logger, h routes) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(requestMetrics)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	limitWrites := writeRateLimiter(cfg.HTTP.WriteRateLimit, cfg.HTTP.WriteBurst)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/players", h.players.Routes())
		r.Mount("/courses", h.courses.Routes())
		r.Mount("/highlights", h.highlights.Routes())
		r.Mount("/trip", h.trip.Routes())
		h.leaderboard.Register(r)

		r.Group(func(r chi.Router) {
			r.Use(limitWrites)
			r.Mount("/scores", h.scores.Routes())
			r.Mount("/photos", h.photos.Routes())
		})
	})

	return r
}
