package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pptgenie-backend/internal/domains/presentation/model"
)

func seed(t *testing.T, repo Repository, owner uuid.UUID) *model.Presentation {
	t.Helper()

	now := time.Now()
	p := &model.Presentation{
		ID:     uuid.New(),
		UserID: owner,
		Title:  "Seeded",
		Prompt: "seed prompt",
		Slides: []model.Slide{
			{ID: "1", Title: "One", Bullets: []string{"a"}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	owner := uuid.New()
	p := seed(t, repo, owner)

	got, err := repo.GetByOwnerAndID(context.Background(), owner, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, p.Slides, got.Slides)
}

func TestMemoryRepository_GetIsolatesStorage(t *testing.T) {
	repo := NewMemoryRepository()
	owner := uuid.New()
	p := seed(t, repo, owner)

	got, err := repo.GetByOwnerAndID(context.Background(), owner, p.ID)
	require.NoError(t, err)

	// Mutating the returned record must not touch the stored one
	got.Title = "mutated"
	got.Slides[0].Bullets[0] = "mutated"

	again, err := repo.GetByOwnerAndID(context.Background(), owner, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Seeded", again.Title)
	assert.Equal(t, "a", again.Slides[0].Bullets[0])
}

func TestMemoryRepository_UpdatePartial(t *testing.T) {
	repo := NewMemoryRepository()
	owner := uuid.New()
	p := seed(t, repo, owner)

	title := "Renamed"
	at := time.Now().Add(time.Minute)
	updated, err := repo.UpdateByID(context.Background(), owner, p.ID, model.UpdatePatch{
		Title:     &title,
		UpdatedAt: at,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, p.Slides, updated.Slides)
	assert.True(t, updated.UpdatedAt.Equal(at))
}

func TestMemoryRepository_OwnershipMergedIntoNotFound(t *testing.T) {
	repo := NewMemoryRepository()
	owner := uuid.New()
	stranger := uuid.New()
	p := seed(t, repo, owner)

	_, err := repo.GetByOwnerAndID(context.Background(), stranger, p.ID)
	assert.ErrorIs(t, err, model.ErrPresentationNotFound)

	_, err = repo.UpdateByID(context.Background(), stranger, p.ID, model.UpdatePatch{UpdatedAt: time.Now()})
	assert.ErrorIs(t, err, model.ErrPresentationNotFound)

	err = repo.SoftDelete(context.Background(), stranger, p.ID, time.Now())
	assert.ErrorIs(t, err, model.ErrPresentationNotFound)
}

func TestMemoryRepository_SoftDeleteHidesRecord(t *testing.T) {
	repo := NewMemoryRepository()
	owner := uuid.New()
	p := seed(t, repo, owner)

	require.NoError(t, repo.SoftDelete(context.Background(), owner, p.ID, time.Now()))

	_, err := repo.GetByOwnerAndID(context.Background(), owner, p.ID)
	assert.ErrorIs(t, err, model.ErrPresentationNotFound)

	summaries, err := repo.ListByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	// Deleting twice behaves like deleting a missing record
	err = repo.SoftDelete(context.Background(), owner, p.ID, time.Now())
	assert.ErrorIs(t, err, model.ErrPresentationNotFound)
}

func TestMemoryRepository_PurgeDeleted(t *testing.T) {
	repo := NewMemoryRepository()
	owner := uuid.New()

	old := seed(t, repo, owner)
	recent := seed(t, repo, owner)
	kept := seed(t, repo, owner)

	cutoff := time.Now()
	require.NoError(t, repo.SoftDelete(context.Background(), owner, old.ID, cutoff.Add(-48*time.Hour)))
	require.NoError(t, repo.SoftDelete(context.Background(), owner, recent.ID, cutoff.Add(-time.Hour)))

	purged, err := repo.PurgeDeleted(context.Background(), cutoff.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	// The live record survives
	_, err = repo.GetByOwnerAndID(context.Background(), owner, kept.ID)
	assert.NoError(t, err)
}

func TestMemoryRepository_ListSortsNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	owner := uuid.New()

	base := time.Now()
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		p := &model.Presentation{
			ID:        uuid.New(),
			UserID:    owner,
			Title:     "p",
			Slides:    []model.Slide{{ID: "1", Bullets: []string{"a"}}},
			CreatedAt: base,
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), p))
		ids = append(ids, p.ID)
	}

	summaries, err := repo.ListByOwner(context.Background(), owner)
	require.NoError(t, err)

	require.Len(t, summaries, 3)
	assert.Equal(t, ids[2], summaries[0].ID)
	assert.Equal(t, ids[1], summaries[1].ID)
	assert.Equal(t, ids[0], summaries[2].ID)
}
