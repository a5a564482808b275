package services

import (
	"context"
	"strings"
	"time"

	"kin-backend/internal/apperrors"
	"kin-backend/internal/models"

	"github.com/google/uuid"
)

// RelationStore is the persistence surface the lifecycle services depend on
type RelationStore interface {
	Create(ctx context.Context, relation *models.Relation) error
	Get(ctx context.Context, id string) (*models.Relation, error)
	ListByUser(ctx context.Context, userID string) ([]models.Relation, error)
	Update(ctx context.Context, relation *models.Relation) error
	UpdatePhotoURL(ctx context.Context, id, photoURL string) error
	UpdateNotes(ctx context.Context, id string, notes []models.Note) error
	UpdateMemories(ctx context.Context, id string, memories []models.Memory) error
	Delete(ctx context.Context, id string) error
}

type RelationService struct {
	repo   RelationStore
	photos PhotoUploader
	now    func() time.Time
}

func NewRelationService(repo RelationStore, photos PhotoUploader) *RelationService {
	return &RelationService{repo: repo, photos: photos, now: time.Now}
}

// CreateRelation validates the name fields, uploads a staged photo if one is
// present, then writes the document. Upload happens before the write: a
// failed upload aborts creation with no orphaned document, while a failed
// write after a successful upload orphans the blob (accepted, never cleaned
// up).
func (s *RelationService) CreateRelation(ctx context.Context, userID string, req models.CreateRelationRequest, photo []byte) (*models.Relation, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" {
		return nil, apperrors.NewValidation("firstName", "ad boş olamaz")
	}
	if lastName == "" {
		return nil, apperrors.NewValidation("lastName", "soyad boş olamaz")
	}
	if !req.Type.Valid() {
		return nil, apperrors.NewValidation("type", "geçersiz bağlantı türü")
	}

	customType := ""
	if req.Type == models.OtherCustom {
		customType = strings.TrimSpace(req.CustomType)
	}

	photoURL := ""
	if len(photo) > 0 {
		url, _, err := s.photos.UploadRelationPhoto(ctx, userID, photo)
		if err != nil {
			return nil, err
		}
		photoURL = url
	}

	relation := &models.Relation{
		UserID:     userID,
		FirstName:  firstName,
		LastName:   lastName,
		Type:       req.Type,
		CustomType: customType,
		BirthDate:  req.BirthDate,
		PhotoURL:   photoURL,
		Notes:      []models.Note{},
		Memories:   []models.Memory{},
	}
	if err := s.repo.Create(ctx, relation); err != nil {
		return nil, err
	}
	return relation, nil
}

// GetRelation fetches a relation owned by userID. Relations of other users
// surface as not found.
func (s *RelationService) GetRelation(ctx context.Context, id, userID string) (*models.Relation, error) {
	relation, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if relation.UserID != userID {
		return nil, apperrors.NewNotFound("relation", id)
	}
	return relation, nil
}

func (s *RelationService) ListRelations(ctx context.Context, userID string) ([]models.Relation, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateRelation patches the scalar fields; empty request fields are kept
func (s *RelationService) UpdateRelation(ctx context.Context, id, userID string, req models.UpdateRelationRequest) (*models.Relation, error) {
	relation, err := s.GetRelation(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(req.FirstName); v != "" {
		relation.FirstName = v
	}
	if v := strings.TrimSpace(req.LastName); v != "" {
		relation.LastName = v
	}
	if req.Type != "" {
		if !req.Type.Valid() {
			return nil, apperrors.NewValidation("type", "geçersiz bağlantı türü")
		}
		relation.Type = req.Type
	}
	if relation.Type == models.OtherCustom {
		if v := strings.TrimSpace(req.CustomType); v != "" {
			relation.CustomType = v
		}
	} else {
		relation.CustomType = ""
	}
	if req.BirthDate != "" {
		relation.BirthDate = req.BirthDate
	}

	if err := s.repo.Update(ctx, relation); err != nil {
		return nil, err
	}
	return relation, nil
}

// UpdateRelationPhoto uploads the new portrait then patches photo_url only.
// The previous blob stays in storage.
func (s *RelationService) UpdateRelationPhoto(ctx context.Context, id, userID string, photo []byte) (*models.Relation, error) {
	relation, err := s.GetRelation(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	url, _, err := s.photos.UploadRelationPhoto(ctx, relation.UserID, photo)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePhotoURL(ctx, id, url); err != nil {
		return nil, err
	}
	relation.PhotoURL = url
	return relation, nil
}

// DeleteRelation removes the document. No cascade is needed: memories are
// embedded and vanish with it.
func (s *RelationService) DeleteRelation(ctx context.Context, id, userID string) error {
	if _, err := s.GetRelation(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// AddNote appends to the notes sequence and writes the whole field back
func (s *RelationService) AddNote(ctx context.Context, relationID, userID, text string) (*models.Relation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidation("text", "not boş olamaz")
	}

	relation, err := s.GetRelation(ctx, relationID, userID)
	if err != nil {
		return nil, err
	}

	notes := append(relation.Notes, models.Note{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: s.now(),
	})
	if err := s.repo.UpdateNotes(ctx, relationID, notes); err != nil {
		return nil, err
	}
	relation.Notes = notes
	return relation, nil
}

// UpdateNote replaces the text of the note with the given id
func (s *RelationService) UpdateNote(ctx context.Context, relationID, userID, noteID, text string) (*models.Relation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidation("text", "not boş olamaz")
	}

	relation, err := s.GetRelation(ctx, relationID, userID)
	if err != nil {
		return nil, err
	}

	found := false
	notes := make([]models.Note, len(relation.Notes))
	for i, note := range relation.Notes {
		if note.ID == noteID {
			note.Text = text
			found = true
		}
		notes[i] = note
	}
	if !found {
		return nil, apperrors.NewNotFound("note", noteID)
	}

	if err := s.repo.UpdateNotes(ctx, relationID, notes); err != nil {
		return nil, err
	}
	relation.Notes = notes
	return relation, nil
}

// DeleteNote filters the note out by id. Deleting an id that is already gone
// writes the sequence unchanged and reports success.
func (s *RelationService) DeleteNote(ctx context.Context, relationID, userID, noteID string) (*models.Relation, error) {
	relation, err := s.GetRelation(ctx, relationID, userID)
	if err != nil {
		return nil, err
	}

	notes := make([]models.Note, 0, len(relation.Notes))
	for _, note := range relation.Notes {
		if note.ID != noteID {
			notes = append(notes, note)
		}
	}

	if err := s.repo.UpdateNotes(ctx, relationID, notes); err != nil {
		return nil, err
	}
	relation.Notes = notes
	return relation, nil
}
