package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/deck-generator/internal/types"
)

func TestPrintDeck(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	deck := &types.DeckDescription{
		DeckTitle: "Demo Deck",
		Theme:     types.Theme{PrimaryColor: "#2B579A", SecondaryColor: "#4472C4", Font: "Arial"},
		Slides: []types.SlideSpec{
			{Title: "Cover", Layout: types.LayoutTitle},
			{Title: "Detail", Layout: types.LayoutTextLeftImageRight, Bullets: []string{"a", "b"}},
		},
	}

	p.PrintDeck(deck)
	output := buf.String()

	assert.Contains(t, output, "PLANNED DECK")
	assert.Contains(t, output, "Demo Deck")
	assert.Contains(t, output, "Cover")
	assert.Contains(t, output, "TITLE")
	assert.Contains(t, output, "bullets: 2")
}

func TestPrintDeckNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDeck(nil)
	assert.Empty(t, buf.String())
}

func TestPrintVisualManifest(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	manifest := types.VisualManifest{
		0: {SlideIndex: 0, AssetPath: "assets/slide_1.png", Origin: types.OriginGenerated},
		1: {SlideIndex: 1, AssetPath: "assets/slide_2.png", Origin: types.OriginProceduralFallback},
	}

	p.PrintVisualManifest(manifest)
	output := buf.String()

	assert.Contains(t, output, "VISUAL MANIFEST")
	assert.Contains(t, output, "1 generated, 1 procedural")
	assert.Contains(t, output, "procedural_fallback")
}

func TestPrintVisualManifestEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintVisualManifest(types.VisualManifest{})
	assert.Empty(t, buf.String())
}
