package services

import (
	"context"
	"fmt"

	"kin-backend/internal/apperrors"
	"kin-backend/internal/models"
)

// fakeRelationStore is an in-memory RelationStore that records write calls
type fakeRelationStore struct {
	relations map[string]*models.Relation

	createCalls   int
	notesWrites   int
	memoryWrites  int
	photoWrites   int
	deleteCalls   int
	nextID        int
	failNextWrite error

	callLog []string
}

func newFakeRelationStore() *fakeRelationStore {
	return &fakeRelationStore{relations: make(map[string]*models.Relation)}
}

func (f *fakeRelationStore) Create(_ context.Context, relation *models.Relation) error {
	f.callLog = append(f.callLog, "create")
	f.createCalls++
	if f.failNextWrite != nil {
		err := f.failNextWrite
		f.failNextWrite = nil
		return err
	}
	if relation.ID == "" {
		f.nextID++
		relation.ID = fmt.Sprintf("rel-%d", f.nextID)
	}
	stored := *relation
	f.relations[relation.ID] = &stored
	return nil
}

func (f *fakeRelationStore) Get(_ context.Context, id string) (*models.Relation, error) {
	relation, ok := f.relations[id]
	if !ok {
		return nil, apperrors.NewNotFound("relation", id)
	}
	copied := *relation
	return &copied, nil
}

func (f *fakeRelationStore) ListByUser(_ context.Context, userID string) ([]models.Relation, error) {
	var out []models.Relation
	for _, relation := range f.relations {
		if relation.UserID == userID {
			out = append(out, *relation)
		}
	}
	return out, nil
}

func (f *fakeRelationStore) Update(_ context.Context, relation *models.Relation) error {
	stored, ok := f.relations[relation.ID]
	if !ok {
		return apperrors.NewNotFound("relation", relation.ID)
	}
	stored.FirstName = relation.FirstName
	stored.LastName = relation.LastName
	stored.Type = relation.Type
	stored.CustomType = relation.CustomType
	stored.BirthDate = relation.BirthDate
	return nil
}

func (f *fakeRelationStore) UpdatePhotoURL(_ context.Context, id, photoURL string) error {
	f.callLog = append(f.callLog, "updatePhotoURL")
	f.photoWrites++
	stored, ok := f.relations[id]
	if !ok {
		return apperrors.NewNotFound("relation", id)
	}
	stored.PhotoURL = photoURL
	return nil
}

func (f *fakeRelationStore) UpdateNotes(_ context.Context, id string, notes []models.Note) error {
	f.notesWrites++
	stored, ok := f.relations[id]
	if !ok {
		return apperrors.NewNotFound("relation", id)
	}
	stored.Notes = notes
	return nil
}

func (f *fakeRelationStore) UpdateMemories(_ context.Context, id string, memories []models.Memory) error {
	f.memoryWrites++
	stored, ok := f.relations[id]
	if !ok {
		return apperrors.NewNotFound("relation", id)
	}
	stored.Memories = memories
	return nil
}

func (f *fakeRelationStore) Delete(_ context.Context, id string) error {
	f.deleteCalls++
	delete(f.relations, id)
	return nil
}

// fakePhotoUploader records uploads and can be told to fail
type fakePhotoUploader struct {
	uploads   int
	failWith  error
	lastBytes []byte

	callLog *[]string
}

func (f *fakePhotoUploader) logCall() {
	if f.callLog != nil {
		*f.callLog = append(*f.callLog, "upload")
	}
}

func (f *fakePhotoUploader) UploadRelationPhoto(_ context.Context, userID string, data []byte) (string, string, error) {
	f.logCall()
	if f.failWith != nil {
		return "", "", f.failWith
	}
	f.uploads++
	f.lastBytes = data
	path := fmt.Sprintf("relations/%s/%d.jpg", userID, f.uploads)
	return "https://cdn.example.com/" + path, path, nil
}

func (f *fakePhotoUploader) UploadMemoryPhoto(_ context.Context, relationID string, data []byte) (models.MemoryPhoto, error) {
	f.logCall()
	if f.failWith != nil {
		return models.MemoryPhoto{}, f.failWith
	}
	f.uploads++
	f.lastBytes = data
	path := fmt.Sprintf("memories/%s/%d.jpg", relationID, f.uploads)
	return models.MemoryPhoto{
		ID:   fmt.Sprintf("photo-%d", f.uploads),
		URL:  "https://cdn.example.com/" + path,
		Path: path,
	}, nil
}

func (f *fakePhotoUploader) UploadProfilePhoto(_ context.Context, userID string, data []byte) (string, error) {
	f.logCall()
	if f.failWith != nil {
		return "", f.failWith
	}
	f.uploads++
	f.lastBytes = data
	return fmt.Sprintf("https://cdn.example.com/profilePhotos/profile_%s.jpg", userID), nil
}
