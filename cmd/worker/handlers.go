package main

import (
	"github.com/hibiken/asynq"

	presentationJob "pptgenie-backend/internal/domains/presentation/job"
	"pptgenie-backend/internal/shared"
	"pptgenie-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Maintenance handlers
	purgeDeleted *presentationJob.PurgeDeletedHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		purgeDeleted: presentationJob.NewPurgeDeletedHandler(
			c.PresentationRepo,
			c.Config.Retention.DeletedPresentations,
		),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Maintenance tasks
	mux.HandleFunc(shared.TypePurgeDeletedPresentations, h.purgeDeleted.ProcessTask)
}
