package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pptgenie-backend/internal/domains/presentation/model"
)

// Repository is the data store contract for presentations. Any engine
// satisfies it as long as UpdateByID is atomic per record.
//
// Soft-deleted records are invisible to every method except PurgeDeleted.
type Repository interface {
	// Create persists a new presentation.
	Create(ctx context.Context, p *model.Presentation) error

	// ListByOwner returns the owner's live presentations,
	// ordered by updated_at descending.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.PresentationSummary, error)

	// GetByOwnerAndID returns the record only when it exists AND belongs
	// to ownerID; otherwise model.ErrPresentationNotFound.
	GetByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID) (*model.Presentation, error)

	// UpdateByID applies the patch in a single atomic operation, scoped to
	// the owner. Returns the updated record, or
	// model.ErrPresentationNotFound under the same rule as GetByOwnerAndID.
	UpdateByID(ctx context.Context, ownerID, id uuid.UUID, patch model.UpdatePatch) (*model.Presentation, error)

	// SoftDelete marks the record deleted, scoped to the owner.
	SoftDelete(ctx context.Context, ownerID, id uuid.UUID, at time.Time) error

	// PurgeDeleted permanently removes records soft-deleted before the
	// cutoff. Returns the number of rows removed.
	PurgeDeleted(ctx context.Context, before time.Time) (int, error)
}
