package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/deck-generator/internal/types"
)

// rawDeck builds a minimal dynamic planning document for repair tests.
func rawDeck(slides ...map[string]any) map[string]any {
	anySlides := make([]any, 0, len(slides))
	for _, s := range slides {
		anySlides = append(anySlides, any(s))
	}
	return map[string]any{"slides": anySlides}
}

func outcomeSlideRaw() map[string]any {
	return map[string]any{
		"title":        "Expected Outcomes",
		"message":      "m",
		"body":         "b",
		"bullets":      []any{},
		"image_prompt": "p",
		"layout":       "TEXT_LEFT_IMAGE_RIGHT",
	}
}

func TestRepairFillsMissingFields(t *testing.T) {
	deck := Repair(rawDeck(
		map[string]any{"title": "Expected Outcomes"},
		map[string]any{},
	), "source")

	require.Len(t, deck.Slides, 2)

	first := deck.Slides[0]
	assert.Equal(t, "Expected Outcomes", first.Title)
	assert.Equal(t, "", first.Message)
	assert.Equal(t, "", first.Body)
	assert.NotNil(t, first.Bullets)
	assert.Empty(t, first.Bullets)
	assert.Equal(t, DefaultImagePrompt, first.ImagePrompt)

	second := deck.Slides[1]
	assert.Equal(t, "", second.Title)
	assert.Equal(t, types.LayoutTextLeftImageRight, second.Layout)
}

func TestRepairLayoutCoercion(t *testing.T) {
	tests := []struct {
		name     string
		layout   any
		first    bool
		expected types.Layout
	}{
		{"Valid layout kept", "IMAGE_FULL_TEXT_BOTTOM", false, types.LayoutImageFullTextBottom},
		{"Unknown layout coerced to default", "SPLIT_VIEW", false, types.LayoutTextLeftImageRight},
		{"Missing layout coerced to default", nil, false, types.LayoutTextLeftImageRight},
		{"Wrong type coerced to default", 42, false, types.LayoutTextLeftImageRight},
		{"Missing layout on first slide is TITLE", nil, true, types.LayoutTitle},
		{"Unknown layout on first slide is TITLE", "COVER", true, types.LayoutTitle},
		{"Valid non-title layout on first slide kept", "TEXT_LEFT_IMAGE_RIGHT", true, types.LayoutTextLeftImageRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slide := map[string]any{"title": "Expected Outcomes"}
			if tt.layout != nil {
				slide["layout"] = tt.layout
			}

			var deck *types.DeckDescription
			if tt.first {
				deck = Repair(rawDeck(slide), "src")
			} else {
				deck = Repair(rawDeck(outcomeSlideRaw(), slide), "src")
			}

			idx := 0
			if !tt.first {
				idx = 1
			}
			assert.Equal(t, tt.expected, deck.Slides[idx].Layout)
		})
	}
}

func TestRepairNoSlidesUsesFallback(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
	}{
		{"Nil document", nil},
		{"Missing slides key", map[string]any{"deck_title": "x"}},
		{"Empty slides array", rawDeck()},
		{"Slides wrong type", map[string]any{"slides": "oops"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := Repair(tt.doc, "src")
			require.NotNil(t, deck)
			assert.Len(t, deck.Slides, 4)
			assert.Equal(t, "Proposal", deck.DeckTitle)
		})
	}
}

func TestRepairAppendsOutcomeSlide(t *testing.T) {
	deck := Repair(rawDeck(
		map[string]any{"title": "Cover"},
		map[string]any{"title": "Current Challenges"},
	), "src")

	require.Len(t, deck.Slides, 3)
	last := deck.Slides[len(deck.Slides)-1]
	assert.True(t, ContainsOutcomeKeyword(last.Title))
	assert.Equal(t, "Expected Outcomes", last.Title)
}

func TestRepairKeepsExistingOutcomeSlide(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"English outcome", "Expected Outcomes"},
		{"English effect", "Effects of the change"},
		{"Mixed case", "EXPECTED BENEFITS"},
		{"Japanese", "期待効果"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deck := Repair(rawDeck(map[string]any{"title": tt.title}), "src")
			assert.Len(t, deck.Slides, 1)
		})
	}
}

func TestRepairTopLevelDefaults(t *testing.T) {
	deck := Repair(rawDeck(outcomeSlideRaw()), "src")

	assert.Equal(t, DefaultDeckTitle, deck.DeckTitle)
	assert.Equal(t, DefaultPrimaryColor, deck.Theme.PrimaryColor)
	assert.Equal(t, DefaultSecondaryColor, deck.Theme.SecondaryColor)
	assert.Equal(t, DefaultFont, deck.Theme.Font)
}

func TestRepairPartialThemeSurvives(t *testing.T) {
	doc := rawDeck(outcomeSlideRaw())
	doc["theme"] = map[string]any{"primary_color": "#112233"}

	deck := Repair(doc, "src")
	assert.Equal(t, "#112233", deck.Theme.PrimaryColor)
	assert.Equal(t, DefaultSecondaryColor, deck.Theme.SecondaryColor)
}

func TestRepairDropsNonStringBullets(t *testing.T) {
	doc := rawDeck(map[string]any{
		"title":   "Expected Outcomes",
		"bullets": []any{"keep", 7, "also keep", map[string]any{}},
	})

	deck := Repair(doc, "src")
	assert.Equal(t, []string{"keep", "also keep"}, deck.Slides[0].Bullets)
}

// Repairing repaired output must be a no-op: all fields populated, layouts
// valid, outcome slide already present.
func TestRepairIdempotent(t *testing.T) {
	once := Repair(rawDeck(
		map[string]any{"title": "Cover"},
		map[string]any{"title": "Plan", "layout": "BOGUS"},
	), "src")

	// Round-trip through the dynamic form the validator accepts.
	doc := map[string]any{
		"deck_title": once.DeckTitle,
		"theme": map[string]any{
			"primary_color":   once.Theme.PrimaryColor,
			"secondary_color": once.Theme.SecondaryColor,
			"font":            once.Theme.Font,
		},
		"slides": func() []any {
			out := make([]any, 0, len(once.Slides))
			for _, s := range once.Slides {
				bullets := make([]any, 0, len(s.Bullets))
				for _, b := range s.Bullets {
					bullets = append(bullets, any(b))
				}
				out = append(out, any(map[string]any{
					"title":        s.Title,
					"message":      s.Message,
					"body":         s.Body,
					"bullets":      bullets,
					"image_prompt": s.ImagePrompt,
					"layout":       string(s.Layout),
				}))
			}
			return out
		}(),
	}

	twice := Repair(doc, "src")
	assert.Equal(t, once, twice)
}

func TestContainsOutcomeKeyword(t *testing.T) {
	tests := []struct {
		title    string
		expected bool
	}{
		{"Expected Outcomes", true},
		{"Business Benefits", true},
		{"Effect on throughput", true},
		{"期待効果", true},
		{"Current Challenges", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, ContainsOutcomeKeyword(tt.title))
		})
	}
}
