package service

import (
	"context"

	"github.com/google/uuid"

	"pptgenie-backend/internal/domains/presentation/model"
)

// Service owns the create/read/update/delete lifecycle and the ownership
// rule for presentations, independent of transport and storage engine.
//
// Every operation that targets a specific record checks ownership before
// touching it; a record owned by someone else is indistinguishable from a
// missing one.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, req model.GenerateRequest) (*model.Presentation, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]model.PresentationSummary, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Presentation, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req model.UpdateRequest) (*model.Presentation, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
