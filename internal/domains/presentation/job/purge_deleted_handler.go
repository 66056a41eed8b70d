package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"pptgenie-backend/internal/domains/presentation/repository"
	"pptgenie-backend/pkg/logger"
)

// PurgeDeletedPayload optionally pins the purge reference time;
// zero means "now".
type PurgeDeletedPayload struct {
	Date time.Time `json:"date,omitempty"`
}

// PurgeDeletedHandler hard-deletes presentations whose soft-delete is
// older than the retention window.
type PurgeDeletedHandler struct {
	repo      repository.Repository
	retention time.Duration
}

func NewPurgeDeletedHandler(repo repository.Repository, retention time.Duration) *PurgeDeletedHandler {
	return &PurgeDeletedHandler{
		repo:      repo,
		retention: retention,
	}
}

func (h *PurgeDeletedHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload PurgeDeletedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("Unmarshal purge payload failed", err)
		return err
	}

	reference := time.Now()
	if !payload.Date.IsZero() {
		reference = payload.Date
	}
	cutoff := reference.Add(-h.retention)

	log.Info().
		Time("cutoff", cutoff).
		Msg("Starting purge of soft-deleted presentations")

	purged, err := h.repo.PurgeDeleted(ctx, cutoff)
	if err != nil {
		logger.Error("Purge of soft-deleted presentations failed", err)
		return err
	}

	log.Info().
		Int("presentations_purged", purged).
		Msg("Successfully purged soft-deleted presentations")

	return nil
}
