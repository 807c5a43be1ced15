package visuals

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/deck-generator/internal/imagegen"
	"github.com/jonathan/deck-generator/internal/types"
)

// Engine acquires one visual per slide. A nil Synth means the synthesis
// capability is unavailable and every slide falls through to the procedural
// renderer.
type Engine struct {
	Synth     imagegen.Synthesizer
	AssetsDir string
	Verbose   bool
}

// NewEngine builds an acquisition engine writing into assetsDir.
func NewEngine(synth imagegen.Synthesizer, assetsDir string, verbose bool) *Engine {
	return &Engine{Synth: synth, AssetsDir: assetsDir, Verbose: verbose}
}

// AssetFileName returns the on-disk name for a slide's visual. Names are
// 1-based; assembly resolves visuals through the manifest, which records
// these paths.
func AssetFileName(index int) string {
	return fmt.Sprintf("slide_%d.png", index+1)
}

// AcquireAll walks the deck in order and produces exactly one visual per
// slide. Slides are processed sequentially so back-end rate limits are not
// tripped by parallel calls. The returned manifest has an entry for every
// slide index; the only error paths are filesystem failures.
func (e *Engine) AcquireAll(ctx context.Context, deck *types.DeckDescription) (types.VisualManifest, error) {
	if err := os.MkdirAll(e.AssetsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create assets directory: %w", err)
	}

	manifest := make(types.VisualManifest, len(deck.Slides))
	for i, slide := range deck.Slides {
		aspect, width, height := targetFor(slide.Layout)
		outPath := filepath.Join(e.AssetsDir, AssetFileName(i))

		if e.acquireOne(ctx, slide.ImagePrompt, aspect, outPath, i) {
			manifest[i] = types.SlideVisual{
				SlideIndex: i,
				AssetPath:  outPath,
				Origin:     types.OriginGenerated,
			}
			fmt.Printf("[IMG] slide=%d origin=%s\n", i+1, types.OriginGenerated)
			continue
		}

		fmt.Printf("[IMG] slide=%d all attempts failed, rendering procedural fallback\n", i+1)
		if err := RenderFallback(slide, width, height, outPath); err != nil {
			return nil, fmt.Errorf("fallback render for slide %d: %w", i+1, err)
		}
		manifest[i] = types.SlideVisual{
			SlideIndex: i,
			AssetPath:  outPath,
			Origin:     types.OriginProceduralFallback,
		}
		fmt.Printf("[IMG] slide=%d origin=%s\n", i+1, types.OriginProceduralFallback)
	}
	return manifest, nil
}

// acquireOne runs the retry ladder for a single slide. It reports success
// only when an attempt produced a non-empty file on disk.
func (e *Engine) acquireOne(ctx context.Context, prompt string, aspect imagegen.Aspect, outPath string, index int) bool {
	if e.Synth == nil {
		return false
	}

	attempts := BuildRetryPrompts(prompt)
	for attempt, p := range attempts {
		if e.Verbose {
			fmt.Printf("[IMG] slide=%d attempt=%d/%d prompt=%q\n", index+1, attempt+1, len(attempts), truncateRunes(p, 80))
		}
		if err := e.Synth.Synthesize(ctx, p, aspect, outPath); err != nil {
			fmt.Printf("[IMG][ERROR] slide=%d attempt=%d failed: %v\n", index+1, attempt+1, err)
			continue
		}
		info, err := os.Stat(outPath)
		if err != nil || info.Size() == 0 {
			fmt.Printf("[IMG][ERROR] slide=%d attempt=%d produced no usable file\n", index+1, attempt+1)
			continue
		}
		return true
	}
	return false
}

// targetFor maps a slide layout to the synthesis aspect ratio and the
// procedural fallback canvas size. Full-bleed layouts get widescreen
// imagery; everything else is square.
func targetFor(layout types.Layout) (imagegen.Aspect, int, int) {
	if layout == types.LayoutImageFullTextBottom {
		return imagegen.AspectWide, 1920, 1080
	}
	return imagegen.AspectSquare, 1024, 1024
}
