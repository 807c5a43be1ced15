package planning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// No credentials means no network: planning must degrade to the fallback
// deck without error.
func TestGenerateDeckWithoutAPIKey(t *testing.T) {
	deck := GenerateDeck(context.Background(), "quarterly planning notes", PlanOptions{})

	require.NotNil(t, deck)
	assert.Len(t, deck.Slides, 4)
	assert.Equal(t, "Proposal", deck.DeckTitle)
}

func TestBuildDeckPromptEmbedsInput(t *testing.T) {
	prompt := buildDeckPrompt("UNIQUE-MARKER-42")
	assert.Contains(t, prompt, "UNIQUE-MARKER-42")
	assert.NotContains(t, prompt, "{{.InputText}}")
}
