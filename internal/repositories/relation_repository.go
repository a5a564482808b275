package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"kin-backend/internal/apperrors"
	"kin-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RelationRepository persists relation documents. The notes and memories
// JSONB columns are always written whole, so concurrent editors of the same
// relation race field-wise and the last writer wins.
type RelationRepository struct {
	pool *pgxpool.Pool
}

func NewRelationRepository(pool *pgxpool.Pool) *RelationRepository {
	return &RelationRepository{pool: pool}
}

func (r *RelationRepository) Create(ctx context.Context, relation *models.Relation) error {
	if relation.ID == "" {
		relation.ID = uuid.New().String()
	}
	if relation.Notes == nil {
		relation.Notes = []models.Note{}
	}
	if relation.Memories == nil {
		relation.Memories = []models.Memory{}
	}

	notes, err := json.Marshal(relation.Notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}
	memories, err := json.Marshal(relation.Memories)
	if err != nil {
		return fmt.Errorf("marshal memories: %w", err)
	}

	query := `
		INSERT INTO relations (
			id, user_id, first_name, last_name, type,
			custom_type, birth_date, photo_url, notes, memories
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	return r.pool.QueryRow(ctx, query,
		relation.ID,
		relation.UserID,
		relation.FirstName,
		relation.LastName,
		relation.Type,
		relation.CustomType,
		relation.BirthDate,
		relation.PhotoURL,
		notes,
		memories,
	).Scan(&relation.CreatedAt)
}

func (r *RelationRepository) Get(ctx context.Context, id string) (*models.Relation, error) {
	query := `
		SELECT id, user_id, first_name, last_name, type,
		       custom_type, birth_date, photo_url, notes, memories, created_at
		FROM relations
		WHERE id = $1
	`
	relation, err := scanRelation(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFound("relation", id)
	}
	return relation, err
}

// ListByUser fetches all relations owned by a user. Equality filter only;
// no pagination or ordering beyond creation time.
func (r *RelationRepository) ListByUser(ctx context.Context, userID string) ([]models.Relation, error) {
	query := `
		SELECT id, user_id, first_name, last_name, type,
		       custom_type, birth_date, photo_url, notes, memories, created_at
		FROM relations
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var relations []models.Relation
	for rows.Next() {
		relation, err := scanRelation(rows)
		if err != nil {
			return nil, err
		}
		relations = append(relations, *relation)
	}
	return relations, rows.Err()
}

// Update patches the editable scalar fields of a relation
func (r *RelationRepository) Update(ctx context.Context, relation *models.Relation) error {
	query := `
		UPDATE relations
		SET first_name = $2, last_name = $3, type = $4, custom_type = $5, birth_date = $6
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		relation.ID,
		relation.FirstName,
		relation.LastName,
		relation.Type,
		relation.CustomType,
		relation.BirthDate,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFound("relation", relation.ID)
	}
	return nil
}

// UpdatePhotoURL patches only the photo_url field
func (r *RelationRepository) UpdatePhotoURL(ctx context.Context, id, photoURL string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE relations SET photo_url = $2 WHERE id = $1`, id, photoURL)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFound("relation", id)
	}
	return nil
}

// UpdateNotes overwrites the whole notes sequence
func (r *RelationRepository) UpdateNotes(ctx context.Context, id string, notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `UPDATE relations SET notes = $2 WHERE id = $1`, id, data)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFound("relation", id)
	}
	return nil
}

// UpdateMemories overwrites the whole memories sequence
func (r *RelationRepository) UpdateMemories(ctx context.Context, id string, memories []models.Memory) error {
	if memories == nil {
		memories = []models.Memory{}
	}
	data, err := json.Marshal(memories)
	if err != nil {
		return fmt.Errorf("marshal memories: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `UPDATE relations SET memories = $2 WHERE id = $1`, id, data)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFound("relation", id)
	}
	return nil
}

// Delete removes the relation document; embedded memories go with it
func (r *RelationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM relations WHERE id = $1`, id)
	return err
}

func scanRelation(row pgx.Row) (*models.Relation, error) {
	var relation models.Relation
	var notes, memories []byte

	err := row.Scan(
		&relation.ID,
		&relation.UserID,
		&relation.FirstName,
		&relation.LastName,
		&relation.Type,
		&relation.CustomType,
		&relation.BirthDate,
		&relation.PhotoURL,
		&notes,
		&memories,
		&relation.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(notes, &relation.Notes); err != nil {
		return nil, fmt.Errorf("unmarshal notes for %s: %w", relation.ID, err)
	}
	if err := json.Unmarshal(memories, &relation.Memories); err != nil {
		return nil, fmt.Errorf("unmarshal memories for %s: %w", relation.ID, err)
	}
	if relation.Notes == nil {
		relation.Notes = []models.Note{}
	}
	if relation.Memories == nil {
		relation.Memories = []models.Memory{}
	}
	return &relation, nil
}
