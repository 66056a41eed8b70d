package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"pptgenie-backend/internal/domains/presentation/job"
	"pptgenie-backend/internal/shared"
	"pptgenie-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) RegisterCleanupJobs() error {
	return s.registerPurgeDeletedPresentationsJob()
}

// ================================================
// JOB: Purge soft-deleted presentations (daily at 3 AM)
// ================================================
func (s *Scheduler) registerPurgeDeletedPresentationsJob() error {
	payload, err := json.Marshal(job.PurgeDeletedPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypePurgeDeletedPresentations, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *", // Daily at 3 AM
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register PurgeDeletedPresentations job", err)
		return err
	}

	logger.Info("✓ Registered PurgeDeletedPresentations: daily at 3 AM", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
