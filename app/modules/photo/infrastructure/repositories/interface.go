package photodb

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence surface for photo metadata.
type Repository interface {
	CreatePhoto(ctx context.Context, photo *Photo) error
	ListPhotos(ctx context.Context) ([]Photo, error)
	GetPhoto(ctx context.Context, id uuid.UUID) (*Photo, error)
	DeletePhoto(ctx context.Context, id uuid.UUID) error
}
