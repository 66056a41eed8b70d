package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pptgenie-backend/internal/domains/presentation/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresRepository) Create(ctx context.Context, p *model.Presentation) error {
	slides, err := json.Marshal(p.Slides)
	if err != nil {
		return fmt.Errorf("failed to marshal slides: %w", err)
	}

	query := `
		INSERT INTO presentations (
			id, user_id, title, prompt, slides,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.pool.Exec(ctx, query,
		p.ID,
		p.UserID,
		p.Title,
		p.Prompt,
		slides,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create presentation: %w", err)
	}

	return nil
}

// =====================================================
// LIST BY OWNER
// =====================================================

func (r *postgresRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.PresentationSummary, error) {
	query := `
		SELECT id, title, updated_at
		FROM presentations
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY updated_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list presentations: %w", err)
	}
	defer rows.Close()

	summaries := []model.PresentationSummary{}
	for rows.Next() {
		var s model.PresentationSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan presentation summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate presentations: %w", err)
	}

	return summaries, nil
}

// =====================================================
// GET BY OWNER AND ID
// =====================================================

func (r *postgresRepository) GetByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID) (*model.Presentation, error) {
	query := `
		SELECT id, user_id, title, prompt, slides, created_at, updated_at
		FROM presentations
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, id, ownerID))
}

// =====================================================
// UPDATE BY ID
// =====================================================

// UpdateByID merges the patch inside a single UPDATE statement so two
// concurrent patches serialize on the row lock. Nil patch fields bind as
// NULL and COALESCE keeps the stored value.
func (r *postgresRepository) UpdateByID(ctx context.Context, ownerID, id uuid.UUID, patch model.UpdatePatch) (*model.Presentation, error) {
	var slides []byte
	if patch.Slides != nil {
		var err error
		slides, err = json.Marshal(patch.Slides)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal slides: %w", err)
		}
	}

	query := `
		UPDATE presentations
		SET title = COALESCE($3, title),
		    slides = COALESCE($4::jsonb, slides),
		    updated_at = $5
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
		RETURNING id, user_id, title, prompt, slides, created_at, updated_at
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, id, ownerID, patch.Title, slides, patch.UpdatedAt))
}

// =====================================================
// SOFT DELETE
// =====================================================

func (r *postgresRepository) SoftDelete(ctx context.Context, ownerID, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE presentations
		SET deleted_at = $3, updated_at = $3
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`

	tag, err := r.pool.Exec(ctx, query, id, ownerID, at)
	if err != nil {
		return fmt.Errorf("failed to delete presentation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPresentationNotFound
	}

	return nil
}

// =====================================================
// PURGE DELETED
// =====================================================

func (r *postgresRepository) PurgeDeleted(ctx context.Context, before time.Time) (int, error) {
	query := `DELETE FROM presentations WHERE deleted_at IS NOT NULL AND deleted_at < $1`

	tag, err := r.pool.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to purge deleted presentations: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// =====================================================
// HELPERS
// =====================================================

func (r *postgresRepository) scanOne(row pgx.Row) (*model.Presentation, error) {
	p := &model.Presentation{}
	var slides []byte

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.Prompt,
		&slides,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPresentationNotFound
		}
		return nil, fmt.Errorf("failed to get presentation: %w", err)
	}

	if err := json.Unmarshal(slides, &p.Slides); err != nil {
		return nil, fmt.Errorf("failed to unmarshal slides: %w", err)
	}

	return p, nil
}
