// Package app wires the clubhouse modules together: database, pub/sub,
// services, and the HTTP router.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	courseservice "github.com/duffers-cup/clubhouse/app/modules/course/application"
	coursehandlers "github.com/duffers-cup/clubhouse/app/modules/course/infrastructure/handlers"
	coursedb "github.com/duffers-cup/clubhouse/app/modules/course/infrastructure/repositories"
	highlightsservice "github.com/duffers-cup/clubhouse/app/modules/highlights/application"
	highlightshandlers "github.com/duffers-cup/clubhouse/app/modules/highlights/infrastructure/handlers"
	leaderboardservice "github.com/duffers-cup/clubhouse/app/modules/leaderboard/application"
	leaderboardhandlers "github.com/duffers-cup/clubhouse/app/modules/leaderboard/infrastructure/handlers"
	photoservice "github.com/duffers-cup/clubhouse/app/modules/photo/application"
	photohandlers "github.com/duffers-cup/clubhouse/app/modules/photo/infrastructure/handlers"
	photodb "github.com/duffers-cup/clubhouse/app/modules/photo/infrastructure/repositories"
	photostorage "github.com/duffers-cup/clubhouse/app/modules/photo/infrastructure/storage"
	playerservice "github.com/duffers-cup/clubhouse/app/modules/player/application"
	playerhandlers "github.com/duffers-cup/clubhouse/app/modules/player/infrastructure/handlers"
	playerdb "github.com/duffers-cup/clubhouse/app/modules/player/infrastructure/repositories"
	scoreservice "github.com/duffers-cup/clubhouse/app/modules/score/application"
	scorehandlers "github.com/duffers-cup/clubhouse/app/modules/score/infrastructure/handlers"
	scoredb "github.com/duffers-cup/clubhouse/app/modules/score/infrastructure/repositories"
	tripservice "github.com/duffers-cup/clubhouse/app/modules/trip/application"
	triphandlers "github.com/duffers-cup/clubhouse/app/modules/trip/infrastructure/handlers"
	tripdb "github.com/duffers-cup/clubhouse/app/modules/trip/infrastructure/repositories"
	"github.com/duffers-cup/clubhouse/config"
)

// App holds the wired application.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Router chi.Router

	db         *bun.DB
	pubSub     *gochannel.GoChannel
	highlights *highlightsservice.HighlightsService
}

// NewApp wires every module.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(sqldb, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger))

	playerRepo := &playerdb.PlayerDBImpl{DB: db}
	courseRepo := &coursedb.CourseDBImpl{DB: db}
	scoreRepo := &scoredb.ScoreDBImpl{DB: db}
	scheduleRepo := &tripdb.ScheduleDBImpl{DB: db}
	photoRepo := &photodb.PhotoDBImpl{DB: db}

	blobs, err := photostorage.NewDiskStore(cfg.Photos.Dir)
	if err != nil {
		return nil, err
	}

	players := playerservice.NewPlayerService(playerRepo, logger)
	courses := courseservice.NewCourseService(courseRepo, logger)
	scores := scoreservice.NewScoreService(scoreRepo, pubSub, logger)
	leaderboard := leaderboardservice.NewLeaderboardService(playerRepo, courseRepo, scoreRepo, logger)
	highlights := highlightsservice.NewHighlightsService(scoreRepo, courseRepo, playerRepo, cfg.Highlights.CacheTTL, logger)
	photos := photoservice.NewPhotoService(photoRepo, blobs, logger)
	trip, err := tripservice.NewTripService(scheduleRepo, cfg.Trip.LodgingFile, cfg.Trip.DiningFile, logger)
	if err != nil {
		return nil, err
	}

	router := newRouter(cfg, logger, routes{
		players:     playerhandlers.NewHandlers(players, logger),
		courses:     coursehandlers.NewHandlers(courses, logger),
		scores:      scorehandlers.NewHandlers(scores, logger),
		leaderboard: leaderboardhandlers.NewHandlers(leaderboard, logger),
		highlights:  highlightshandlers.NewHandlers(highlights, logger),
		trip:        triphandlers.NewHandlers(trip, logger),
		photos:      photohandlers.NewHandlers(photos, logger),
	})

	return &App{
		Config:     cfg,
		Logger:     logger,
		Router:     router,
		db:         db,
		pubSub:     pubSub,
		highlights: highlights,
	}, nil
}

// Run starts the highlights subscriber and the HTTP server, then blocks
// until ctx is canceled and shutdown completes.
func (a *App) Run(ctx context.Context) error {
	go func() {
		if err := a.highlights.Run(ctx, a.pubSub); err != nil && !errors.Is(err, context.Canceled) {
			a.Logger.Error("highlights subscriber stopped", slog.Any("error", err))
		}
	}()

	srv := &http.Server{
		Addr:              a.Config.HTTP.Addr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// Close releases the pub/sub and database connections.
func (a *App) Close() error {
	var errs []error
	if err := a.pubSub.Close(); err != nil {
		errs = append(errs, fmt.Errorf("pubsub close: %w", err))
	}
	if err := a.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("db close: %w", err))
	}
	return errors.Join(errs...)
}
