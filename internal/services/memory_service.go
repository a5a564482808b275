package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"kin-backend/internal/apperrors"
	"kin-backend/internal/models"
)

// MemoryService mutates the memories sequence embedded in a relation
// document. Every operation is read-full-document, compute-new-sequence,
// write-whole-field-back; two sessions editing the same relation race and
// the last writer wins.
type MemoryService struct {
	repo   RelationStore
	photos PhotoUploader
	now    func() time.Time
}

func NewMemoryService(repo RelationStore, photos PhotoUploader) *MemoryService {
	return &MemoryService{repo: repo, photos: photos, now: time.Now}
}

// AddMemory appends a new memory to the parent relation and returns the
// refreshed parent. Photos upload before the document write; a failed upload
// aborts with StorageError and the sequence is untouched.
func (s *MemoryService) AddMemory(ctx context.Context, relationID, userID string, req models.AddMemoryRequest, photoBlobs [][]byte) (*models.Relation, error) {
	relation, err := s.getOwned(ctx, relationID, userID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, apperrors.NewValidation("memory", "başlık ve anı içeriği boş olamaz")
	}
	if len(photoBlobs) > models.MaxMemoryPhotos {
		return nil, apperrors.NewValidation("photos", "en fazla 3 fotoğraf eklenebilir")
	}

	var photos []models.MemoryPhoto
	for _, blob := range photoBlobs {
		photo, err := s.photos.UploadMemoryPhoto(ctx, relationID, blob)
		if err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}

	memoryDate := req.MemoryDate
	if memoryDate == 0 {
		memoryDate = s.now().UnixMilli()
	}

	memory := models.Memory{
		ID:         strconv.FormatInt(s.now().UnixMilli(), 10),
		Title:      title,
		Content:    content,
		MemoryDate: memoryDate,
		RelationID: relationID,
		Location:   req.Location,
		Photos:     photos,
		Tags:       req.Tags,
	}

	memories := append(relation.Memories, memory)
	if err := s.repo.UpdateMemories(ctx, relationID, memories); err != nil {
		return nil, err
	}

	// Refetch so the caller navigates back with up-to-date data
	return s.repo.Get(ctx, relationID)
}

// UpdateMemory replaces the editable fields of the memory with the given id
// and writes the whole sequence back. A missing id surfaces NotFoundError
// rather than silently writing the sequence unchanged.
func (s *MemoryService) UpdateMemory(ctx context.Context, relationID, userID, memoryID string, req models.UpdateMemoryRequest) (*models.Relation, error) {
	relation, err := s.getOwned(ctx, relationID, userID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, apperrors.NewValidation("memory", "başlık ve anı içeriği boş olamaz")
	}
	if len(req.Photos) > models.MaxMemoryPhotos {
		return nil, apperrors.NewValidation("photos", "en fazla 3 fotoğraf eklenebilir")
	}

	found := false
	memories := make([]models.Memory, len(relation.Memories))
	for i, memory := range relation.Memories {
		if memory.ID == memoryID {
			memory.Title = title
			memory.Content = content
			if req.MemoryDate != 0 {
				memory.MemoryDate = req.MemoryDate
			}
			memory.Location = req.Location
			memory.Photos = req.Photos
			memory.Tags = req.Tags
			found = true
		}
		memories[i] = memory
	}
	if !found {
		return nil, apperrors.NewNotFound("memory", memoryID)
	}

	if err := s.repo.UpdateMemories(ctx, relationID, memories); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, relationID)
}

// DeleteMemory filters the memory out by id and writes the reduced sequence
// back. Deleting an id that is already gone writes the sequence unchanged
// and reports success, so repeated deletes are no-ops.
func (s *MemoryService) DeleteMemory(ctx context.Context, relationID, userID, memoryID string) (*models.Relation, error) {
	relation, err := s.getOwned(ctx, relationID, userID)
	if err != nil {
		return nil, err
	}

	memories := make([]models.Memory, 0, len(relation.Memories))
	for _, memory := range relation.Memories {
		if memory.ID != memoryID {
			memories = append(memories, memory)
		}
	}

	if err := s.repo.UpdateMemories(ctx, relationID, memories); err != nil {
		return nil, err
	}
	relation.Memories = memories
	return relation, nil
}

// AddMemoryPhoto uploads one more photo onto an existing memory. The fourth
// photo is rejected before any upload happens.
func (s *MemoryService) AddMemoryPhoto(ctx context.Context, relationID, userID, memoryID string, blob []byte) (*models.Relation, error) {
	relation, err := s.getOwned(ctx, relationID, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, memory := range relation.Memories {
		if memory.ID == memoryID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.NewNotFound("memory", memoryID)
	}
	if len(relation.Memories[idx].Photos) >= models.MaxMemoryPhotos {
		return nil, apperrors.NewValidation("photos", "en fazla 3 fotoğraf eklenebilir")
	}

	photo, err := s.photos.UploadMemoryPhoto(ctx, relationID, blob)
	if err != nil {
		return nil, err
	}

	memories := make([]models.Memory, len(relation.Memories))
	copy(memories, relation.Memories)
	memories[idx].Photos = append(memories[idx].Photos, photo)

	if err := s.repo.UpdateMemories(ctx, relationID, memories); err != nil {
		return nil, err
	}
	relation.Memories = memories
	return relation, nil
}

func (s *MemoryService) getOwned(ctx context.Context, relationID, userID string) (*models.Relation, error) {
	relation, err := s.repo.Get(ctx, relationID)
	if err != nil {
		return nil, err
	}
	if relation.UserID != userID {
		return nil, apperrors.NewNotFound("relation", relationID)
	}
	return relation, nil
}
