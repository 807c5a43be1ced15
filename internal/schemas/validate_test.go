package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnoseDeckValid(t *testing.T) {
	doc := `{
		"deck_title": "Proposal",
		"theme": {"primary_color": "#2B579A", "secondary_color": "#4472C4", "font": "Arial"},
		"slides": [
			{
				"title": "Cover",
				"message": "One sentence",
				"body": "",
				"bullets": [],
				"image_prompt": "A flat illustration",
				"layout": "TITLE"
			}
		]
	}`
	assert.NoError(t, DiagnoseDeck(doc))
}

func TestDiagnoseDeckViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"Missing slides", `{"deck_title": "x", "theme": {"primary_color": "#000000", "secondary_color": "#000000", "font": "Arial"}}`},
		{"Empty slides", `{"deck_title": "x", "theme": {"primary_color": "#000000", "secondary_color": "#000000", "font": "Arial"}, "slides": []}`},
		{"Bad layout", `{"deck_title": "x", "theme": {"primary_color": "#000000", "secondary_color": "#000000", "font": "Arial"}, "slides": [{"title": "a", "message": "b", "body": "c", "bullets": [], "image_prompt": "d", "layout": "SPLIT"}]}`},
		{"Bad color", `{"deck_title": "x", "theme": {"primary_color": "blue", "secondary_color": "#000000", "font": "Arial"}, "slides": [{"title": "a", "message": "b", "body": "c", "bullets": [], "image_prompt": "d", "layout": "TITLE"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DiagnoseDeck(tt.doc)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestDiagnoseDeckMalformedJSON(t *testing.T) {
	err := DiagnoseDeck(`{not json`)
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}
