package services

import (
	"context"
	"testing"

	"kin-backend/internal/apperrors"
	"kin-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsStore struct {
	settings map[string]*models.RelationSettings
	upserts  int
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{settings: make(map[string]*models.RelationSettings)}
}

func (f *fakeSettingsStore) Get(_ context.Context, userID string) (*models.RelationSettings, error) {
	return f.settings[userID], nil
}

func (f *fakeSettingsStore) Upsert(_ context.Context, s *models.RelationSettings) error {
	f.upserts++
	stored := *s
	f.settings[s.UserID] = &stored
	return nil
}

func TestGetSettingsOrDefaultWhenNeverSaved(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore())

	settings, err := svc.GetSettingsOrDefault(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, models.AllRelationTypes, settings.VisibleTypes,
		"a user without saved settings sees every type")
}

func TestUpdateSettingsRoundTrip(t *testing.T) {
	store := newFakeSettingsStore()
	svc := NewSettingsService(store)

	visible := []models.RelationType{models.Mother, models.Father, models.Friend}
	_, err := svc.UpdateSettings(context.Background(), "user-1", models.UpdateSettingsRequest{
		VisibleTypes: visible,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.upserts)

	settings, err := svc.GetSettings(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, visible, settings.VisibleTypes)
}

func TestUpdateSettingsRejectsUnknownType(t *testing.T) {
	store := newFakeSettingsStore()
	svc := NewSettingsService(store)

	_, err := svc.UpdateSettings(context.Background(), "user-1", models.UpdateSettingsRequest{
		VisibleTypes: []models.RelationType{models.Mother, "NEIGHBOR"},
	})

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, store.upserts)
}

func TestUpdateSettingsAllowsEmptySet(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsStore())

	settings, err := svc.UpdateSettings(context.Background(), "user-1", models.UpdateSettingsRequest{
		VisibleTypes: []models.RelationType{},
	})
	require.NoError(t, err)

	// An explicitly saved empty set hides everything; distinct from never-saved
	for _, rt := range models.AllRelationTypes {
		assert.False(t, models.IsTypeVisible(rt, settings))
	}
}
