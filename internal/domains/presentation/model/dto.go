package model

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// GenerateRequest creates a new presentation from a prompt.
type GenerateRequest struct {
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

// Normalize trims surrounding whitespace; validation runs on the
// trimmed values so " " counts as empty.
func (r *GenerateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Prompt = strings.TrimSpace(r.Prompt)
}

func (r GenerateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.Prompt, validation.Required, validation.Length(1, 5000)),
	)
}

// UpdateRequest is a partial update. Nil fields are left unchanged;
// a non-nil Slides replaces the deck wholesale.
type UpdateRequest struct {
	Title  *string `json:"title,omitempty"`
	Slides []Slide `json:"slides,omitempty"`
}

func (r UpdateRequest) Validate() error {
	if r.Title != nil {
		title := strings.TrimSpace(*r.Title)
		if title == "" {
			return fmt.Errorf("title must not be empty")
		}
		if len(title) > 300 {
			return fmt.Errorf("title must not exceed 300 characters")
		}
	}
	if r.Slides != nil {
		return ValidateSlides(r.Slides)
	}
	return nil
}

// ValidateSlides enforces the steady-state deck invariants: every slide
// carries a deck-unique id and at least one bullet. The UI guards the same
// rules but direct API calls bypass the UI.
func ValidateSlides(slides []Slide) error {
	if len(slides) == 0 {
		return fmt.Errorf("slides must contain at least one slide")
	}

	seen := make(map[string]struct{}, len(slides))
	for i, s := range slides {
		if s.ID == "" {
			return fmt.Errorf("slide %d: id must not be empty", i)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("slide %d: duplicate slide id %q", i, s.ID)
		}
		seen[s.ID] = struct{}{}

		if len(s.Bullets) == 0 {
			return fmt.Errorf("slide %d: must have at least one bullet", i)
		}
	}
	return nil
}

// UpdatePatch is what the repository applies. UpdatedAt is set by the
// service so the bump is uniform across store implementations.
type UpdatePatch struct {
	Title     *string
	Slides    []Slide // nil = untouched
	UpdatedAt time.Time
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// PresentationSummary is the list-view projection.
type PresentationSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PresentationResponse is the full record as exposed over HTTP.
type PresentationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Prompt    string    `json:"prompt"`
	Slides    []Slide   `json:"slides"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToResponse projects the entity for HTTP. The owner id stays internal:
// a caller only ever sees their own records, so echoing it adds nothing.
func (p *Presentation) ToResponse() PresentationResponse {
	return PresentationResponse{
		ID:        p.ID,
		Title:     p.Title,
		Prompt:    p.Prompt,
		Slides:    p.Slides,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
