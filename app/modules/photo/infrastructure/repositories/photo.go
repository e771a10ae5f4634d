package photodb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PhotoDBImpl implements Repository on bun.
type PhotoDBImpl struct {
	DB *bun.DB
}

func (db *PhotoDBImpl) CreatePhoto(ctx context.Context, photo *Photo) error {
	_, err := db.DB.NewInsert().
		Model(photo).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create photo %s: %w", photo.ID, err)
	}
	return nil
}

func (db *PhotoDBImpl) ListPhotos(ctx context.Context) ([]Photo, error) {
	var photos []Photo
	err := db.DB.NewSelect().
		Model(&photos).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

func (db *PhotoDBImpl) GetPhoto(ctx context.Context, id uuid.UUID) (*Photo, error) {
	var photo Photo
	err := db.DB.NewSelect().
		Model(&photo).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("photo %s: %w", id, ErrPhotoNotFound)
		}
		return nil, fmt.Errorf("failed to fetch photo %s: %w", id, err)
	}
	return &photo, nil
}

func (db *PhotoDBImpl) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	res, err := db.DB.NewDelete().
		Model((*Photo)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete photo %s: %w", id, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("photo %s: %w", id, ErrPhotoNotFound)
	}
	return nil
}
