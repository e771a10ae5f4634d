package coursehandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	courseservice "github.com/duffers-cup/clubhouse/app/modules/course/application"
	coursedb "github.com/duffers-cup/clubhouse/app/modules/course/infrastructure/repositories"
	"github.com/duffers-cup/clubhouse/app/shared/httpjson"
)

// Handlers serves the read-only course reference endpoints.
type Handlers struct {
	service *courseservice.CourseService
	logger  *slog.Logger
}

// NewHandlers creates the course handlers.
func NewHandlers(service *courseservice.CourseService, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Routes mounts the course endpoints.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListCourses)
	r.Get("/{courseID}", h.GetCourse)
	return r
}

// ListCourses handles GET /api/courses.
func (h *Handlers) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.ListCourses(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list courses", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch courses")
		return
	}
	httpjson.Respond(w, http.StatusOK, courses)
}

// GetCourse handles GET /api/courses/{courseID}.
func (h *Handlers) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid course id")
		return
	}

	course, err := h.service.GetCourse(r.Context(), id)
	if err != nil {
		if errors.Is(err, coursedb.ErrCourseNotFound) {
			httpjson.Error(w, http.StatusNotFound, "course not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to fetch course", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch course")
		return
	}
	httpjson.Respond(w, http.StatusOK, course)
}
