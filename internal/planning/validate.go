// Package planning turns extracted source text into a validated
// DeckDescription. The planning model's raw JSON is repaired in place by
// Repair, the single choke point that converts untrusted dynamic data into
// guaranteed-shape records; when the model is unavailable or its output is
// unusable, FallbackDeck supplies a complete deck with no AI involvement.
package planning

import (
	"strings"

	"github.com/jonathan/deck-generator/internal/types"
)

// Fixed defaults used to fill gaps in planning output.
const (
	DefaultDeckTitle      = "Presentation"
	DefaultFont           = "Arial"
	DefaultPrimaryColor   = "#2B579A"
	DefaultSecondaryColor = "#4472C4"

	// DefaultImagePrompt is used when a slide arrives without one.
	DefaultImagePrompt = "A clean flat illustration of a modern business office, " +
		"minimal style, white background, no text, no watermark"
)

// outcomeKeywords marks slides that present expected effects/benefits.
// Matching is plain case-insensitive substring; the Japanese entries cover
// decks planned from Japanese source material.
var outcomeKeywords = []string{"outcome", "effect", "benefit", "期待", "効果"}

// ContainsOutcomeKeyword reports whether a slide title marks an
// expected-outcomes slide.
func ContainsOutcomeKeyword(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range outcomeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Repair converts a raw, possibly malformed planning document into a
// DeckDescription that satisfies all structural invariants. It is a
// best-effort repair, not a strict validator: it never fails, it only
// fills gaps. A document with no usable slides is treated the same as a
// planning failure and replaced by the fallback deck.
func Repair(doc map[string]any, sourceText string) *types.DeckDescription {
	if doc == nil {
		return FallbackDeck(sourceText)
	}

	rawSlides, ok := doc["slides"].([]any)
	if !ok || len(rawSlides) == 0 {
		return FallbackDeck(sourceText)
	}

	slides := make([]types.SlideSpec, 0, len(rawSlides)+1)
	for i, raw := range rawSlides {
		entry, _ := raw.(map[string]any)
		slides = append(slides, repairSlide(entry, i == 0))
	}

	// Outcome-slide guarantee: every deck closes with expected outcomes.
	hasOutcome := false
	for _, s := range slides {
		if ContainsOutcomeKeyword(s.Title) {
			hasOutcome = true
			break
		}
	}
	if !hasOutcome {
		slides = append(slides, makeOutcomeSlide())
	}

	return &types.DeckDescription{
		DeckTitle: stringField(doc, "deck_title", DefaultDeckTitle),
		Theme:     repairTheme(doc),
		Slides:    slides,
	}
}

// repairSlide fills missing fields on one slide entry. A nil entry (wrong
// type in the slides array) repairs to an all-default slide.
func repairSlide(entry map[string]any, first bool) types.SlideSpec {
	slide := types.SlideSpec{
		Title:       stringField(entry, "title", ""),
		Message:     stringField(entry, "message", ""),
		Body:        stringField(entry, "body", ""),
		Bullets:     stringSliceField(entry, "bullets"),
		ImagePrompt: stringField(entry, "image_prompt", DefaultImagePrompt),
		Layout:      types.Layout(stringField(entry, "layout", "")),
	}

	if !slide.Layout.Valid() {
		if first {
			// The first slide is canonically the cover.
			slide.Layout = types.LayoutTitle
		} else {
			slide.Layout = types.LayoutTextLeftImageRight
		}
	}

	return slide
}

// repairTheme fills each theme field individually so a partial theme
// object survives with its provided values intact.
func repairTheme(doc map[string]any) types.Theme {
	theme, _ := doc["theme"].(map[string]any)
	return types.Theme{
		PrimaryColor:   stringField(theme, "primary_color", DefaultPrimaryColor),
		SecondaryColor: stringField(theme, "secondary_color", DefaultSecondaryColor),
		Font:           stringField(theme, "font", DefaultFont),
	}
}

// stringField reads a string value from a dynamic map, returning def when
// the key is absent, the wrong type, or empty.
func stringField(m map[string]any, key, def string) string {
	if m == nil {
		return def
	}
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return def
}

// stringSliceField reads a string array from a dynamic map. Non-string
// elements are dropped; a missing or malformed value yields an empty slice.
func stringSliceField(m map[string]any, key string) []string {
	if m == nil {
		return []string{}
	}
	raw, ok := m[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// makeOutcomeSlide synthesizes the expected-outcomes slide appended when a
// deck lacks one. It carries two bullets so the procedural renderer routes
// it to the bar-chart branch rather than the card branch.
func makeOutcomeSlide() types.SlideSpec {
	return types.SlideSpec{
		Title:   "Expected Outcomes",
		Message: "Raise operational quality and efficiency at the same time",
		Body: "Introducing this initiative automates pre-submission checks to sharply " +
			"reduce transcription errors, and digitizes progress tracking to replace " +
			"person-dependent workflows with a standardized process. Response times " +
			"improve and peak-season overtime goes down.",
		Bullets: []string{
			"20-30% less manual effort during peak season",
			"Standardized, auditable workflow",
		},
		ImagePrompt: "A clean flat illustration showing a rising bar chart and " +
			"efficiency icons such as a clock, checkmark, and gears, representing " +
			"business productivity improvement, minimal style, white background, " +
			"no text, no watermark, professional business illustration",
		Layout: types.LayoutTextLeftImageRight,
	}
}
