// Package types defines the canonical data model shared across the deck
// generation pipeline: the validated deck description consumed by image
// acquisition and document assembly, and the per-slide visual records
// produced by image acquisition.
package types

// Layout identifies how a slide arranges its text and visual.
type Layout string

// Recognized slide layouts. Anything outside this set is coerced to
// LayoutTextLeftImageRight by the plan validator.
const (
	// LayoutTitle is the cover slide: title plus subtitle only.
	LayoutTitle Layout = "TITLE"
	// LayoutTextLeftImageRight is the default working layout: text on the
	// left, image on the right.
	LayoutTextLeftImageRight Layout = "TEXT_LEFT_IMAGE_RIGHT"
	// LayoutImageFullTextBottom is a full-bleed image with a text strip
	// along the bottom.
	LayoutImageFullTextBottom Layout = "IMAGE_FULL_TEXT_BOTTOM"
)

// Valid reports whether the layout is one of the recognized values.
func (l Layout) Valid() bool {
	switch l {
	case LayoutTitle, LayoutTextLeftImageRight, LayoutImageFullTextBottom:
		return true
	}
	return false
}

// Theme holds the deck-wide visual theme.
type Theme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Font           string `json:"font"`
}

// SlideSpec is the structured content for one slide.
type SlideSpec struct {
	Title string `json:"title"`
	// Message is the single-sentence takeaway for the slide. The 20-40
	// character guidance is a content-quality concern handled by the
	// planning prompt, not enforced structurally.
	Message     string   `json:"message"`
	Body        string   `json:"body"`
	Bullets     []string `json:"bullets"`
	ImagePrompt string   `json:"image_prompt"`
	Layout      Layout   `json:"layout"`
}

// DeckDescription is the validated, canonical planning output. It is
// created once per pipeline run and is immutable after validation.
type DeckDescription struct {
	DeckTitle string      `json:"deck_title"`
	Theme     Theme       `json:"theme"`
	Slides    []SlideSpec `json:"slides"`
}
