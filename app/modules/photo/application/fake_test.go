package photoservice

import (
	"bytes"
	"context"
	"io"

	"github.com/google/uuid"

	photodb "github.com/duffers-cup/clubhouse/app/modules/photo/infrastructure/repositories"
	photostorage "github.com/duffers-cup/clubhouse/app/modules/photo/infrastructure/storage"
)

// FakePhotoRepository provides a programmable stub for the photodb.Repository interface.
type FakePhotoRepository struct {
	trace []string

	CreatePhotoFunc func(ctx context.Context, photo *photodb.Photo) error
	ListPhotosFunc  func(ctx context.Context) ([]photodb.Photo, error)
	GetPhotoFunc    func(ctx context.Context, id uuid.UUID) (*photodb.Photo, error)
	DeletePhotoFunc func(ctx context.Context, id uuid.UUID) error

	LastCreated *photodb.Photo
}

// NewFakePhotoRepository initializes a new FakePhotoRepository with an empty trace.
func NewFakePhotoRepository() *FakePhotoRepository {
	return &FakePhotoRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakePhotoRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePhotoRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePhotoRepository) CreatePhoto(ctx context.Context, photo *photodb.Photo) error {
	f.record("CreatePhoto")
	f.LastCreated = photo
	if f.CreatePhotoFunc != nil {
		return f.CreatePhotoFunc(ctx, photo)
	}
	return nil
}

func (f *FakePhotoRepository) ListPhotos(ctx context.Context) ([]photodb.Photo, error) {
	f.record("ListPhotos")
	if f.ListPhotosFunc != nil {
		return f.ListPhotosFunc(ctx)
	}
	return nil, nil
}

func (f *FakePhotoRepository) GetPhoto(ctx context.Context, id uuid.UUID) (*photodb.Photo, error) {
	f.record("GetPhoto")
	if f.GetPhotoFunc != nil {
		return f.GetPhotoFunc(ctx, id)
	}
	return nil, photodb.ErrPhotoNotFound
}

func (f *FakePhotoRepository) DeletePhoto(ctx context.Context, id uuid.UUID) error {
	f.record("DeletePhoto")
	if f.DeletePhotoFunc != nil {
		return f.DeletePhotoFunc(ctx, id)
	}
	return nil
}

// MemoryBlobStore is an in-memory photostorage.BlobStore for tests.
type MemoryBlobStore struct {
	Blobs map[string][]byte

	PutFunc    func(ctx context.Context, key string, r io.Reader) (int64, error)
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{Blobs: map[string][]byte{}}
}

func (m *MemoryBlobStore) Put(ctx context.Context, key string, r io.Reader) (int64, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	m.Blobs[key] = data
	return int64(len(data)), nil
}

func (m *MemoryBlobStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := m.Blobs[key]
	if !ok {
		return nil, photostorage.ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MemoryBlobStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	delete(m.Blobs, key)
	return nil
}
