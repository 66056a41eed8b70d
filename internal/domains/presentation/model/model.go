package model

import (
	"time"

	"github.com/google/uuid"
)

// Slide is one slide of a presentation. The id only has to be unique
// within its deck; the client assigns it (timestamp-derived token).
type Slide struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// Clone returns a deep copy of the slide.
func (s Slide) Clone() Slide {
	bullets := make([]string, len(s.Bullets))
	copy(bullets, s.Bullets)
	return Slide{ID: s.ID, Title: s.Title, Bullets: bullets}
}

// CloneSlides deep-copies a slide sequence, preserving order.
func CloneSlides(slides []Slide) []Slide {
	if slides == nil {
		return nil
	}
	out := make([]Slide, len(slides))
	for i, s := range slides {
		out[i] = s.Clone()
	}
	return out
}

// Presentation is a titled, owned deck of ordered slides.
// ID and UserID never change after creation.
type Presentation struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	Prompt    string     `json:"prompt"`
	Slides    []Slide    `json:"slides"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Clone returns a deep copy of the presentation.
func (p *Presentation) Clone() *Presentation {
	cp := *p
	cp.Slides = CloneSlides(p.Slides)
	if p.DeletedAt != nil {
		t := *p.DeletedAt
		cp.DeletedAt = &t
	}
	return &cp
}

// Summary projects a presentation for list views.
func (p *Presentation) Summary() PresentationSummary {
	return PresentationSummary{
		ID:        p.ID,
		Title:     p.Title,
		UpdatedAt: p.UpdatedAt,
	}
}
