package assembly

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/deck-generator/internal/types"
)

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		require.NoError(t, err)
		entries[f.Name] = string(data)
	}
	return entries
}

func writeFakePNG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("not-a-real-png-but-nonempty"), 0o644))
	return path
}

func sampleDeck() *types.DeckDescription {
	return &types.DeckDescription{
		DeckTitle: "Demo",
		Theme:     types.Theme{PrimaryColor: "#2B579A", SecondaryColor: "#4472C4", Font: "Arial"},
		Slides: []types.SlideSpec{
			{Title: "Cover", Message: "Hello", Layout: types.LayoutTitle},
			{Title: "Detail", Body: "Body text.", Bullets: []string{"a", "b"}, Layout: types.LayoutTextLeftImageRight},
			{Title: "Vision", Message: "m", Layout: types.LayoutImageFullTextBottom},
		},
	}
}

func TestBuildPPTXEntrySet(t *testing.T) {
	dir := t.TempDir()
	deck := sampleDeck()
	manifest := types.VisualManifest{
		0: {SlideIndex: 0, AssetPath: writeFakePNG(t, dir, "slide_1.png"), Origin: types.OriginGenerated},
		1: {SlideIndex: 1, AssetPath: writeFakePNG(t, dir, "slide_2.png"), Origin: types.OriginProceduralFallback},
		2: {SlideIndex: 2, AssetPath: writeFakePNG(t, dir, "slide_3.png"), Origin: types.OriginGenerated},
	}

	outPath := filepath.Join(dir, "deck.pptx")
	require.NoError(t, BuildPPTX(deck, manifest, outPath))

	entries := readArchive(t, outPath)

	for _, name := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
	} {
		assert.Contains(t, entries, name)
	}

	// One slide part, one rels part, and one media entry per slide.
	for i := 1; i <= 3; i++ {
		assert.Contains(t, entries, fmt.Sprintf("ppt/slides/slide%d.xml", i))
		assert.Contains(t, entries, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i))
		assert.Contains(t, entries, fmt.Sprintf("ppt/media/image%d.png", i))
	}

	assert.Equal(t, 3, strings.Count(entries["ppt/presentation.xml"], "<p:sldId "))
	assert.Equal(t, 3, strings.Count(entries["[Content_Types].xml"], "/ppt/slides/slide"))
}

func TestBuildPPTXMissingImageRendersTextOnly(t *testing.T) {
	dir := t.TempDir()
	deck := sampleDeck()

	emptyPath := filepath.Join(dir, "empty.png")
	require.NoError(t, os.WriteFile(emptyPath, nil, 0o644))

	manifest := types.VisualManifest{
		0: {SlideIndex: 0, AssetPath: filepath.Join(dir, "does-not-exist.png")},
		1: {SlideIndex: 1, AssetPath: emptyPath},
		// slide 2 has no manifest entry at all
	}

	outPath := filepath.Join(dir, "deck.pptx")
	require.NoError(t, BuildPPTX(deck, manifest, outPath))

	entries := readArchive(t, outPath)
	for name := range entries {
		assert.False(t, strings.HasPrefix(name, "ppt/media/"), "unexpected media entry %s", name)
	}

	// Text-only slides carry no image relationship.
	for i := 1; i <= 3; i++ {
		rels := entries[fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i)]
		assert.NotContains(t, rels, "media/image")
	}
}

func TestBuildPPTXEscapesText(t *testing.T) {
	dir := t.TempDir()
	deck := &types.DeckDescription{
		Theme: types.Theme{},
		Slides: []types.SlideSpec{
			{Title: "R&D <Plan>", Layout: types.LayoutTextLeftImageRight},
		},
	}

	outPath := filepath.Join(dir, "deck.pptx")
	require.NoError(t, BuildPPTX(deck, types.VisualManifest{}, outPath))

	entries := readArchive(t, outPath)
	slideXML := entries["ppt/slides/slide1.xml"]
	assert.Contains(t, slideXML, "R&amp;D &lt;Plan&gt;")
	assert.NotContains(t, slideXML, "R&D")
}

func TestBuildPPTXBadOutputPath(t *testing.T) {
	err := BuildPPTX(sampleDeck(), types.VisualManifest{}, filepath.Join(t.TempDir(), "missing-dir", "deck.pptx"))

	var ae *AssemblyError
	require.ErrorAs(t, err, &ae)
}
