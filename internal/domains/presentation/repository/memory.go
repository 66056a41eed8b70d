package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pptgenie-backend/internal/domains/presentation/model"
)

// =====================================================
// IN-MEMORY REPOSITORY IMPLEMENTATION
// =====================================================

// memoryRepository keeps presentations in a mutex-guarded map. It stands in
// for a real database in tests and local development; records are deep-copied
// on the way in and out so callers never share slices with the store.
type memoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*model.Presentation
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		records: make(map[uuid.UUID]*model.Presentation),
	}
}

func (r *memoryRepository) Create(ctx context.Context, p *model.Presentation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[p.ID] = p.Clone()
	return nil
}

func (r *memoryRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.PresentationSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := []model.PresentationSummary{}
	for _, p := range r.records {
		if p.UserID == ownerID && p.DeletedAt == nil {
			summaries = append(summaries, p.Summary())
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})

	return summaries, nil
}

func (r *memoryRepository) GetByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID) (*model.Presentation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, err := r.lookup(ownerID, id)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// UpdateByID holds the lock across read-merge-write, which gives the same
// per-record atomicity the postgres implementation gets from its single
// UPDATE statement.
func (r *memoryRepository) UpdateByID(ctx context.Context, ownerID, id uuid.UUID, patch model.UpdatePatch) (*model.Presentation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.lookup(ownerID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Slides != nil {
		p.Slides = model.CloneSlides(patch.Slides)
	}
	p.UpdatedAt = patch.UpdatedAt

	return p.Clone(), nil
}

func (r *memoryRepository) SoftDelete(ctx context.Context, ownerID, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.lookup(ownerID, id)
	if err != nil {
		return err
	}

	t := at
	p.DeletedAt = &t
	p.UpdatedAt = at
	return nil
}

func (r *memoryRepository) PurgeDeleted(ctx context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	purged := 0
	for id, p := range r.records {
		if p.DeletedAt != nil && p.DeletedAt.Before(before) {
			delete(r.records, id)
			purged++
		}
	}
	return purged, nil
}

// lookup enforces the ownership rule: an absent record and a record owned
// by someone else are the same NotFound. Caller must hold the lock.
func (r *memoryRepository) lookup(ownerID, id uuid.UUID) (*model.Presentation, error) {
	p, ok := r.records[id]
	if !ok || p.UserID != ownerID || p.DeletedAt != nil {
		return nil, model.ErrPresentationNotFound
	}
	return p, nil
}
