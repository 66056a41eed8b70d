package generator

import (
	"context"

	"pptgenie-backend/internal/domains/presentation/model"
)

// TemplateGenerator is the placeholder implementation: it ignores the
// prompt and returns a fixed three-slide outline.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Generate(_ context.Context, _ string) ([]model.Slide, error) {
	return []model.Slide{
		{
			ID:    "1",
			Title: "Introduction",
			Bullets: []string{
				"Welcome to the presentation",
				"Overview of key topics",
				"What you'll learn today",
			},
		},
		{
			ID:    "2",
			Title: "Main Content",
			Bullets: []string{
				"Key point number one",
				"Important information here",
				"Supporting details and examples",
			},
		},
		{
			ID:    "3",
			Title: "Conclusion",
			Bullets: []string{
				"Summary of main points",
				"Key takeaways",
				"Thank you for your attention",
			},
		},
	}, nil
}
