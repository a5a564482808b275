package services

import (
	"context"

	"kin-backend/internal/apperrors"
	"kin-backend/internal/models"
)

type SettingsStore interface {
	Get(ctx context.Context, userID string) (*models.RelationSettings, error)
	Upsert(ctx context.Context, settings *models.RelationSettings) error
}

type SettingsService struct {
	repo SettingsStore
}

func NewSettingsService(repo SettingsStore) *SettingsService {
	return &SettingsService{repo: repo}
}

// GetSettings returns the stored visibility settings, or the raw nil when
// the user never saved any (callers treat nil as everything visible).
func (s *SettingsService) GetSettings(ctx context.Context, userID string) (*models.RelationSettings, error) {
	return s.repo.Get(ctx, userID)
}

// GetSettingsOrDefault is GetSettings with the all-visible default made explicit
func (s *SettingsService) GetSettingsOrDefault(ctx context.Context, userID string) (*models.RelationSettings, error) {
	settings, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &models.RelationSettings{
			UserID:       userID,
			VisibleTypes: models.AllRelationTypes,
		}, nil
	}
	return settings, nil
}

// UpdateSettings replaces the visible type set
func (s *SettingsService) UpdateSettings(ctx context.Context, userID string, req models.UpdateSettingsRequest) (*models.RelationSettings, error) {
	for _, t := range req.VisibleTypes {
		if !t.Valid() {
			return nil, apperrors.NewValidation("visibleTypes", "geçersiz bağlantı türü: "+string(t))
		}
	}

	settings := &models.RelationSettings{
		UserID:       userID,
		VisibleTypes: req.VisibleTypes,
	}
	if err := s.repo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
