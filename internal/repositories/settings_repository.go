package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kin-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Get returns nil (no error) when the user never saved settings
func (r *SettingsRepository) Get(ctx context.Context, userID string) (*models.RelationSettings, error) {
	var settings models.RelationSettings
	var visibleTypes []byte

	err := r.pool.QueryRow(ctx, `
		SELECT user_id, visible_types, updated_at
		FROM user_settings WHERE user_id = $1
	`, userID).Scan(&settings.UserID, &visibleTypes, &settings.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(visibleTypes, &settings.VisibleTypes); err != nil {
		return nil, fmt.Errorf("unmarshal visible types for %s: %w", userID, err)
	}
	return &settings, nil
}

// Upsert replaces the visible type set for a user
func (r *SettingsRepository) Upsert(ctx context.Context, settings *models.RelationSettings) error {
	if settings.VisibleTypes == nil {
		settings.VisibleTypes = []models.RelationType{}
	}
	data, err := json.Marshal(settings.VisibleTypes)
	if err != nil {
		return fmt.Errorf("marshal visible types: %w", err)
	}

	return r.pool.QueryRow(ctx, `
		INSERT INTO user_settings (user_id, visible_types, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id)
		DO UPDATE SET visible_types = $2, updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`, settings.UserID, data).Scan(&settings.UpdatedAt)
}
