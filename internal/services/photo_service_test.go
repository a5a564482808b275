package services

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"kin-backend/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	objects  map[string][]byte
	failWith error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{objects: make(map[string][]byte)}
}

func (b *fakeBackend) Name() string { return "fake" }

func (b *fakeBackend) Upload(_ context.Context, key string, reader io.Reader, _ int64) error {
	if b.failWith != nil {
		return b.failWith
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	b.objects[key] = data
	return nil
}

func (b *fakeBackend) Download(_ context.Context, key string) (io.ReadCloser, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func (b *fakeBackend) Delete(_ context.Context, key string) error {
	delete(b.objects, key)
	return nil
}

func (b *fakeBackend) Exists(_ context.Context, key string) (bool, error) {
	_, ok := b.objects[key]
	return ok, nil
}

func (b *fakeBackend) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func newTestPhotoService() (*PhotoService, *fakeBackend) {
	backend := newFakeBackend()
	svc := NewPhotoService(backend)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc, backend
}

func TestUploadRelationPhotoKey(t *testing.T) {
	svc, backend := newTestPhotoService()

	url, path, err := svc.UploadRelationPhoto(context.Background(), "user-1", []byte("jpeg"))
	require.NoError(t, err)

	assert.Equal(t, "relations/user-1/1700000000000.jpg", path)
	assert.Equal(t, "https://cdn.example.com/relations/user-1/1700000000000.jpg", url)
	assert.Equal(t, []byte("jpeg"), backend.objects[path])
}

func TestUploadMemoryPhotoKey(t *testing.T) {
	svc, backend := newTestPhotoService()

	photo, err := svc.UploadMemoryPhoto(context.Background(), "rel-1", []byte("jpeg"))
	require.NoError(t, err)

	assert.Equal(t, "memories/rel-1/1700000000000.jpg", photo.Path)
	assert.NotEmpty(t, photo.ID)
	assert.Contains(t, backend.objects, photo.Path)
}

func TestUploadProfilePhotoUsesFixedKey(t *testing.T) {
	svc, backend := newTestPhotoService()

	url, err := svc.UploadProfilePhoto(context.Background(), "user-1", []byte("v1"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/profilePhotos/profile_user-1.jpg", url)

	// A second upload replaces the blob at the same key
	_, err = svc.UploadProfilePhoto(context.Background(), "user-1", []byte("v2"))
	require.NoError(t, err)
	assert.Len(t, backend.objects, 1)
	assert.Equal(t, []byte("v2"), backend.objects["profilePhotos/profile_user-1.jpg"])
}

func TestUploadFailureWrapsAsStorageError(t *testing.T) {
	svc, backend := newTestPhotoService()
	cause := errors.New("connection reset")
	backend.failWith = cause

	_, _, err := svc.UploadRelationPhoto(context.Background(), "user-1", []byte("jpeg"))

	var serr *apperrors.StorageError
	require.ErrorAs(t, err, &serr)
	assert.ErrorIs(t, err, cause)
}
