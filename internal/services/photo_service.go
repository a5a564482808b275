package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"kin-backend/internal/apperrors"
	"kin-backend/internal/models"
	"kin-backend/internal/storage"

	"github.com/google/uuid"
)

// PhotoUploader is the slice of photo storage the lifecycle services need
type PhotoUploader interface {
	UploadRelationPhoto(ctx context.Context, userID string, data []byte) (url, path string, err error)
	UploadMemoryPhoto(ctx context.Context, relationID string, data []byte) (models.MemoryPhoto, error)
	UploadProfilePhoto(ctx context.Context, userID string, data []byte) (string, error)
}

// PhotoService uploads image blobs and hands back public URLs. Keys are
// timestamp-based under a namespace per owner, mirroring the paths the
// mobile client always wrote to. Replaced or removed photos are never
// deleted from storage.
type PhotoService struct {
	backend storage.Backend
	now     func() time.Time
}

func NewPhotoService(backend storage.Backend) *PhotoService {
	return &PhotoService{backend: backend, now: time.Now}
}

// UploadRelationPhoto stores a relation portrait at relations/{uid}/{millis}.jpg
func (s *PhotoService) UploadRelationPhoto(ctx context.Context, userID string, data []byte) (string, string, error) {
	path := fmt.Sprintf("relations/%s/%d.jpg", userID, s.now().UnixMilli())
	if err := s.upload(ctx, path, data); err != nil {
		return "", "", err
	}
	return s.backend.PublicURL(path), path, nil
}

// UploadMemoryPhoto stores a memory photo at memories/{relationId}/{millis}.jpg
func (s *PhotoService) UploadMemoryPhoto(ctx context.Context, relationID string, data []byte) (models.MemoryPhoto, error) {
	path := fmt.Sprintf("memories/%s/%d.jpg", relationID, s.now().UnixMilli())
	if err := s.upload(ctx, path, data); err != nil {
		return models.MemoryPhoto{}, err
	}
	return models.MemoryPhoto{
		ID:   uuid.New().String(),
		URL:  s.backend.PublicURL(path),
		Path: path,
	}, nil
}

// UploadProfilePhoto stores the profile picture at its fixed per-user key,
// overwriting any previous upload
func (s *PhotoService) UploadProfilePhoto(ctx context.Context, userID string, data []byte) (string, error) {
	path := fmt.Sprintf("profilePhotos/profile_%s.jpg", userID)
	if err := s.upload(ctx, path, data); err != nil {
		return "", err
	}
	return s.backend.PublicURL(path), nil
}

func (s *PhotoService) upload(ctx context.Context, path string, data []byte) error {
	if err := s.backend.Upload(ctx, path, bytes.NewReader(data), int64(len(data))); err != nil {
		return apperrors.NewStorage("upload", err)
	}
	return nil
}
