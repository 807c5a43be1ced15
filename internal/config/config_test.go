package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"input": "notes.md",
		"output": "deck.pptx",
		"api_key": "k",
		"primary_color": "#112233",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "notes.md", cfg.Input)
	assert.Equal(t, "deck.pptx", cfg.Output)
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, "#112233", cfg.PrimaryColor)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("Empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "{not json"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o644))

	t.Run("Valid", func(t *testing.T) {
		cfg := &Config{Input: existing, PrimaryColor: "#2B579A"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Input and PDF mutually exclusive", func(t *testing.T) {
		cfg := &Config{Input: existing, PDF: existing}
		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing input file", func(t *testing.T) {
		cfg := &Config{Input: filepath.Join(dir, "nope.txt")}
		assert.Error(t, cfg.Validate())
	})

	t.Run("Bad hex color", func(t *testing.T) {
		cfg := &Config{PrimaryColor: "blue"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("Empty colors allowed", func(t *testing.T) {
		cfg := &Config{}
		assert.NoError(t, cfg.Validate())
	})
}

func TestMergeWithDefaults(t *testing.T) {
	cli := Config{Output: "from-cli.pptx"}
	file := Config{Output: "from-file.pptx", APIKey: "file-key", Font: "Meiryo"}

	merged := cli.MergeWithDefaults(file)

	assert.Equal(t, "from-cli.pptx", merged.Output)
	assert.Equal(t, "file-key", merged.APIKey)
	assert.Equal(t, "Meiryo", merged.Font)
	assert.Equal(t, DefaultAssetsDir, merged.AssetsDir)
}

func TestMergeWithDefaultsFallbacks(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, DefaultOutput, merged.Output)
	assert.Equal(t, DefaultAssetsDir, merged.AssetsDir)
}
