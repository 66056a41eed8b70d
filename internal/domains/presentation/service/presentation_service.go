package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pptgenie-backend/internal/domains/presentation/generator"
	"pptgenie-backend/internal/domains/presentation/model"
	"pptgenie-backend/internal/domains/presentation/repository"
	"pptgenie-backend/pkg/cache"
	"pptgenie-backend/pkg/logger"
)

const summaryCacheTTL = 60 * time.Second

type presentationService struct {
	repo  repository.Repository
	gen   generator.Generator
	cache cache.Cache
}

func NewPresentationService(
	repo repository.Repository,
	gen generator.Generator,
	c cache.Cache,
) Service {
	return &presentationService{
		repo:  repo,
		gen:   gen,
		cache: c,
	}
}

// =====================================================
// CREATE
// =====================================================

func (s *presentationService) Create(ctx context.Context, ownerID uuid.UUID, req model.GenerateRequest) (*model.Presentation, error) {
	// Step 1: Validate (on trimmed values)
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidArgumentError(err.Error())
	}

	// Step 2: Produce the slide deck via the generation collaborator
	slides, err := s.gen.Generate(ctx, req.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate slides: %w", err)
	}
	if err := model.ValidateSlides(slides); err != nil {
		return nil, fmt.Errorf("generator returned invalid deck: %w", err)
	}

	// Step 3: Build and persist the record; createdAt == updatedAt at creation
	now := time.Now()
	p := &model.Presentation{
		ID:        uuid.New(),
		UserID:    ownerID,
		Title:     req.Title,
		Prompt:    req.Prompt,
		Slides:    slides,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create presentation: %w", err)
	}

	s.invalidateSummaries(ctx, ownerID)
	return p, nil
}

// =====================================================
// LIST
// =====================================================

func (s *presentationService) List(ctx context.Context, ownerID uuid.UUID) ([]model.PresentationSummary, error) {
	key := summaryCacheKey(ownerID)

	var cached []model.PresentationSummary
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	summaries, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list presentations: %w", err)
	}

	// Cache failures must not fail the read
	if err := s.cache.Set(ctx, key, summaries, summaryCacheTTL); err != nil {
		logger.Error("failed to cache presentation summaries", err)
	}

	return summaries, nil
}

// =====================================================
// GET
// =====================================================

func (s *presentationService) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Presentation, error) {
	p, err := s.repo.GetByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, model.ErrPresentationNotFound) {
			return nil, model.NewNotFoundError()
		}
		return nil, fmt.Errorf("failed to get presentation: %w", err)
	}

	return p, nil
}

// =====================================================
// UPDATE
// =====================================================

func (s *presentationService) Update(ctx context.Context, ownerID, id uuid.UUID, req model.UpdateRequest) (*model.Presentation, error) {
	// Step 1: Validate the patch
	if err := req.Validate(); err != nil {
		return nil, model.NewInvalidArgumentError(err.Error())
	}

	// Step 2: Ownership check, same rule as Get. The patch is applied in
	// one atomic store operation scoped to owner+id, so a record that
	// disappears between the check and the write still yields NotFound.
	if _, err := s.repo.GetByOwnerAndID(ctx, ownerID, id); err != nil {
		if errors.Is(err, model.ErrPresentationNotFound) {
			return nil, model.NewNotFoundError()
		}
		return nil, fmt.Errorf("failed to get presentation: %w", err)
	}

	// Step 3: Apply patch; absent fields stay untouched, updatedAt always
	// advances, even for an empty patch
	patch := model.UpdatePatch{
		Title:     req.Title,
		Slides:    req.Slides,
		UpdatedAt: time.Now(),
	}

	p, err := s.repo.UpdateByID(ctx, ownerID, id, patch)
	if err != nil {
		if errors.Is(err, model.ErrPresentationNotFound) {
			return nil, model.NewNotFoundError()
		}
		return nil, fmt.Errorf("failed to update presentation: %w", err)
	}

	s.invalidateSummaries(ctx, ownerID)
	return p, nil
}

// =====================================================
// DELETE
// =====================================================

func (s *presentationService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.repo.SoftDelete(ctx, ownerID, id, time.Now()); err != nil {
		if errors.Is(err, model.ErrPresentationNotFound) {
			return model.NewNotFoundError()
		}
		return fmt.Errorf("failed to delete presentation: %w", err)
	}

	s.invalidateSummaries(ctx, ownerID)
	return nil
}

// =====================================================
// HELPERS
// =====================================================

func summaryCacheKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("presentations:summaries:%s", ownerID)
}

// invalidateSummaries drops the owner's cached list so the next List
// reflects the mutation immediately.
func (s *presentationService) invalidateSummaries(ctx context.Context, ownerID uuid.UUID) {
	if err := s.cache.Delete(ctx, summaryCacheKey(ownerID)); err != nil {
		logger.Error("failed to invalidate presentation summaries cache", err)
	}
}
