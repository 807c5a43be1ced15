package planning

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/deck-generator/internal/schemas"
	"github.com/jonathan/deck-generator/internal/types"
)

func TestFallbackDeckShape(t *testing.T) {
	deck := FallbackDeck("some source text")
	require.NotNil(t, deck)
	require.Len(t, deck.Slides, 4)

	assert.Equal(t, "Proposal", deck.Slides[0].Title)
	assert.Equal(t, types.LayoutTitle, deck.Slides[0].Layout)
	assert.Equal(t, "Current Challenges", deck.Slides[1].Title)
	assert.Equal(t, "Proposed Solution", deck.Slides[2].Title)
	assert.Equal(t, "Expected Outcomes", deck.Slides[3].Title)

	for i, slide := range deck.Slides {
		assert.True(t, slide.Layout.Valid(), "slide %d layout", i)
		assert.NotEmpty(t, slide.ImagePrompt, "slide %d image prompt", i)
		assert.NotNil(t, slide.Bullets, "slide %d bullets", i)
	}
}

func TestFallbackDeckHasOutcomeSlide(t *testing.T) {
	deck := FallbackDeck("")

	found := 0
	for _, slide := range deck.Slides {
		if ContainsOutcomeKeyword(slide.Title) {
			found++
		}
	}
	assert.Equal(t, 1, found)
}

// The fallback deck must itself conform to the deck schema so that saved
// artifacts round-trip cleanly.
func TestFallbackDeckSchemaValid(t *testing.T) {
	deck := FallbackDeck("src")

	raw, err := json.Marshal(deck)
	require.NoError(t, err)
	assert.NoError(t, schemas.DiagnoseDeck(string(raw)))
}

// Repairing the fallback deck's dynamic form changes nothing.
func TestFallbackDeckSurvivesRepair(t *testing.T) {
	deck := FallbackDeck("src")

	raw, err := json.Marshal(deck)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	repaired := Repair(doc, "src")
	assert.Equal(t, deck, repaired)
}
