package editor

import (
	"strconv"
	"time"

	"pptgenie-backend/internal/domains/presentation/model"
)

// Default content for slides and bullets added in the editor.
const (
	DefaultSlideTitle = "New Slide"
	DefaultBulletText = "New bullet point"
)

// Deck is the editor's working state: an ordered slide sequence plus the
// currently selected slide. Every edit is copy-on-write: the slide slice
// is replaced, never mutated in place, so snapshots taken before an edit
// stay valid (undo/rollback can build on this later).
//
// Edits are local and synchronous; nothing persists until the caller
// saves the deck through the presentation service.
type Deck struct {
	slides   []model.Slide
	selected int
}

// NewDeck copies the given slides into a fresh deck with the first slide
// selected.
func NewDeck(slides []model.Slide) *Deck {
	return &Deck{slides: model.CloneSlides(slides)}
}

// Slides returns a copy of the current slide sequence, in display order.
func (d *Deck) Slides() []model.Slide {
	return model.CloneSlides(d.slides)
}

// Len returns the number of slides.
func (d *Deck) Len() int {
	return len(d.slides)
}

// Selected returns the index of the selected slide.
func (d *Deck) Selected() int {
	return d.selected
}

// Select moves the selection. Out-of-range indexes are ignored.
func (d *Deck) Select(i int) bool {
	if i < 0 || i >= len(d.slides) {
		return false
	}
	d.selected = i
	return true
}

// SetSlideTitle replaces the title of slide i.
func (d *Deck) SetSlideTitle(i int, title string) bool {
	if i < 0 || i >= len(d.slides) {
		return false
	}

	slides := model.CloneSlides(d.slides)
	slides[i].Title = title
	d.slides = slides
	return true
}

// SetBullet replaces bullet j of slide i.
func (d *Deck) SetBullet(i, j int, text string) bool {
	if i < 0 || i >= len(d.slides) {
		return false
	}
	if j < 0 || j >= len(d.slides[i].Bullets) {
		return false
	}

	slides := model.CloneSlides(d.slides)
	slides[i].Bullets[j] = text
	d.slides = slides
	return true
}

// AddBullet appends a placeholder bullet to slide i. There is no upper
// bound on bullets per slide.
func (d *Deck) AddBullet(i int) bool {
	if i < 0 || i >= len(d.slides) {
		return false
	}

	slides := model.CloneSlides(d.slides)
	slides[i].Bullets = append(slides[i].Bullets, DefaultBulletText)
	d.slides = slides
	return true
}

// RemoveBullet removes bullet j from slide i. Removing a slide's only
// bullet is refused so a slide never ends up empty.
func (d *Deck) RemoveBullet(i, j int) bool {
	if i < 0 || i >= len(d.slides) {
		return false
	}
	bullets := d.slides[i].Bullets
	if j < 0 || j >= len(bullets) {
		return false
	}
	if len(bullets) == 1 {
		return false
	}

	slides := model.CloneSlides(d.slides)
	slides[i].Bullets = append(slides[i].Bullets[:j], slides[i].Bullets[j+1:]...)
	d.slides = slides
	return true
}

// AddSlide appends a new slide with a default title and two placeholder
// bullets. The id is a timestamp-derived token; uniqueness within the deck
// is advisory, matching what clients assign.
func (d *Deck) AddSlide() model.Slide {
	slide := model.Slide{
		ID:      strconv.FormatInt(time.Now().UnixNano(), 10),
		Title:   DefaultSlideTitle,
		Bullets: []string{"Bullet point 1", "Bullet point 2"},
	}

	slides := model.CloneSlides(d.slides)
	d.slides = append(slides, slide)
	return slide
}

// RemoveSlide removes slide i. Removing the only remaining slide is
// refused. When the selected slide falls off the end, selection moves to
// the new last slide.
func (d *Deck) RemoveSlide(i int) bool {
	if i < 0 || i >= len(d.slides) {
		return false
	}
	if len(d.slides) == 1 {
		return false
	}

	slides := model.CloneSlides(d.slides)
	d.slides = append(slides[:i], slides[i+1:]...)

	if d.selected >= len(d.slides) {
		d.selected = len(d.slides) - 1
	}
	return true
}
