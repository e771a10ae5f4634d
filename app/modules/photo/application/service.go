package photoservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	photodb "github.com/duffers-cup/clubhouse/app/modules/photo/infrastructure/repositories"
	photostorage "github.com/duffers-cup/clubhouse/app/modules/photo/infrastructure/storage"
)

// ErrUnsupportedType marks an upload with a content type we do not store.
var ErrUnsupportedType = errors.New("unsupported photo type")

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// PhotoService manages shared photos: metadata in the database, binaries in
// the blob store.
type PhotoService struct {
	repo   photodb.Repository
	blobs  photostorage.BlobStore
	logger *slog.Logger
}

// NewPhotoService creates a new PhotoService.
func NewPhotoService(repo photodb.Repository, blobs photostorage.BlobStore, logger *slog.Logger) *PhotoService {
	return &PhotoService{repo: repo, blobs: blobs, logger: logger}
}

// Upload stores the binary first, then the metadata; a metadata failure
// cleans the orphaned blob back up.
func (s *PhotoService) Upload(ctx context.Context, caption string, uploadedBy uuid.UUID, contentType string, r io.Reader) (*photodb.Photo, error) {
	ext, ok := extensions[contentType]
	if !ok {
		return nil, fmt.Errorf("content type %q: %w", contentType, ErrUnsupportedType)
	}

	id := uuid.New()
	key := id.String() + ext
	size, err := s.blobs.Put(ctx, key, r)
	if err != nil {
		return nil, err
	}

	photo := &photodb.Photo{
		ID:          id,
		Caption:     caption,
		UploadedBy:  uploadedBy,
		StorageKey:  key,
		ContentType: contentType,
		SizeBytes:   size,
	}
	if err := s.repo.CreatePhoto(ctx, photo); err != nil {
		if cleanupErr := s.blobs.Delete(ctx, key); cleanupErr != nil {
			s.logger.ErrorContext(ctx, "failed to clean up orphaned blob",
				slog.String("key", key),
				slog.Any("error", cleanupErr),
			)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "photo uploaded",
		slog.String("photo_id", id.String()),
		slog.Int64("size_bytes", size),
	)
	return photo, nil
}

// List returns all photo metadata, newest first.
func (s *PhotoService) List(ctx context.Context) ([]photodb.Photo, error) {
	return s.repo.ListPhotos(ctx)
}

// Open returns a photo's metadata and its binary stream. The caller closes
// the reader.
func (s *PhotoService) Open(ctx context.Context, id uuid.UUID) (*photodb.Photo, io.ReadCloser, error) {
	photo, err := s.repo.GetPhoto(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.blobs.Open(ctx, photo.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return photo, rc, nil
}

// Delete removes a photo's metadata and binary.
func (s *PhotoService) Delete(ctx context.Context, id uuid.UUID) error {
	photo, err := s.repo.GetPhoto(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeletePhoto(ctx, id); err != nil {
		return err
	}
	if err := s.blobs.Delete(ctx, photo.StorageKey); err != nil {
		// Metadata is gone; an orphaned file is a nuisance, not a failure.
		s.logger.WarnContext(ctx, "failed to delete photo blob",
			slog.String("key", photo.StorageKey),
			slog.Any("error", err),
		)
	}
	return nil
}
