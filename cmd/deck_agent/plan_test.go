package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/deck-generator/internal/types"
)

func TestRunExtractCmdFlagValidation(t *testing.T) {
	extractInput = ""
	extractPDF = ""
	assert.Error(t, runExtractCmd(nil, nil))

	extractInput = "a.txt"
	extractPDF = "b.pdf"
	assert.Error(t, runExtractCmd(nil, nil))
}

// Offline planning writes the fallback deck as valid JSON.
func TestRunPlanCmdOffline(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(input, []byte("quarterly notes"), 0o644))

	planInput = input
	planPDF = ""
	planOut = filepath.Join(dir, "deck.json")
	planAPIKey = ""
	planTextModel = ""
	t.Setenv("GEMINI_API_KEY", "")

	require.NoError(t, runPlanCmd(nil, nil))

	data, err := os.ReadFile(planOut)
	require.NoError(t, err)

	var deck types.DeckDescription
	require.NoError(t, json.Unmarshal(data, &deck))
	assert.Len(t, deck.Slides, 4)
}

func TestRunImagesCmdMissingDeck(t *testing.T) {
	imagesDeckPath = filepath.Join(t.TempDir(), "nope.json")
	assert.Error(t, runImagesCmd(nil, nil))
}

func TestRunImagesCmdEmptyDeck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"deck_title":"x","slides":[]}`), 0o644))

	imagesDeckPath = path
	assert.Error(t, runImagesCmd(nil, nil))
}
