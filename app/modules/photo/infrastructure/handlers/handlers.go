package photohandlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	photoservice "github.com/duffers-cup/clubhouse/app/modules/photo/application"
	photodb "github.com/duffers-cup/clubhouse/app/modules/photo/infrastructure/repositories"
	"github.com/duffers-cup/clubhouse/app/shared/httpjson"
)

// maxUploadBytes caps photo uploads at 15 MiB.
const maxUploadBytes = 15 << 20

// Handlers serves the photo sharing endpoints.
type Handlers struct {
	service *photoservice.PhotoService
	logger  *slog.Logger
}

// NewHandlers creates the photo handlers.
func NewHandlers(service *photoservice.PhotoService, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// Routes mounts the photo endpoints.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Upload)
	r.Get("/{photoID}", h.Serve)
	r.Delete("/{photoID}", h.Delete)
	return r
}

// List handles GET /api/photos.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	photos, err := h.service.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list photos", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch photos")
		return
	}
	httpjson.Respond(w, http.StatusOK, photos)
}

// Upload handles POST /api/photos as a multipart form with a "photo" file
// part plus optional "caption" and "player_id" fields.
func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	uploadedBy := uuid.Nil
	if v := r.FormValue("player_id"); v != "" {
		uploadedBy, err = uuid.Parse(v)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "invalid player id")
			return
		}
	}

	photo, err := h.service.Upload(r.Context(), r.FormValue("caption"), uploadedBy,
		header.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, photoservice.ErrUnsupportedType) {
			httpjson.Error(w, http.StatusUnsupportedMediaType, err.Error())
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to upload photo", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to upload photo")
		return
	}
	httpjson.Respond(w, http.StatusCreated, photo)
}

// Serve handles GET /api/photos/{photoID}, streaming the binary.
func (h *Handlers) Serve(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "photoID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid photo id")
		return
	}

	photo, rc, err := h.service.Open(r.Context(), id)
	if err != nil {
		if errors.Is(err, photodb.ErrPhotoNotFound) {
			httpjson.Error(w, http.StatusNotFound, "photo not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to open photo", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to fetch photo")
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", photo.ContentType)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to stream photo", slog.Any("error", err))
	}
}

// Delete handles DELETE /api/photos/{photoID}.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "photoID"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid photo id")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, photodb.ErrPhotoNotFound) {
			httpjson.Error(w, http.StatusNotFound, "photo not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to delete photo", slog.Any("error", err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete photo")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
