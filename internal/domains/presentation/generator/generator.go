package generator

import (
	"context"

	"pptgenie-backend/internal/domains/presentation/model"
)

// Generator produces the initial slide deck for a prompt.
// Implementations must return at least one slide, each with a non-empty
// id unique within the returned sequence.
//
// The service does not care whether slides come from a template or a
// text-generation model; swapping implementations is a wiring change.
type Generator interface {
	Generate(ctx context.Context, prompt string) ([]model.Slide, error)
}
