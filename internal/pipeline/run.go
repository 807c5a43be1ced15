// Package pipeline provides the high-level orchestration for the deck generation process.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/deck-generator/internal/assembly"
	"github.com/jonathan/deck-generator/internal/db"
	"github.com/jonathan/deck-generator/internal/imagegen"
	"github.com/jonathan/deck-generator/internal/ingestion"
	"github.com/jonathan/deck-generator/internal/observability"
	"github.com/jonathan/deck-generator/internal/planning"
	"github.com/jonathan/deck-generator/internal/types"
	"github.com/jonathan/deck-generator/internal/visuals"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Input          string // path to text/markdown source (mutually exclusive with PDF)
	PDF            string // path to PDF source
	Output         string // path of the .pptx to write
	AssetsDir      string // directory for per-slide image assets
	APIKey         string
	TextModel      string // planning model override
	ImageModel     string // image model override
	PrimaryColor   string // theme overrides, applied after planning
	SecondaryColor string
	Font           string
	DatabaseURL    string
	Verbose        bool
	OnProgress     ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			Content:  content,
		})
	}
}

// RunPipeline orchestrates the full deck generation pipeline: extraction,
// planning, visual acquisition, and assembly. Planning and image synthesis
// degrade internally; the only fatal errors are unusable input and
// filesystem failures.
func RunPipeline(ctx context.Context, opts RunOptions) error {

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(os.Stdout)

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
		} else {
			defer database.Close()
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	// Phase A: extract source text
	var sourceText string
	var meta *ingestion.Metadata
	var err error

	switch {
	case opts.PDF != "":
		fmt.Printf("Phase A/4: Extracting text from PDF: %s...\n", opts.PDF)
		sourceText, meta, err = ingestion.ExtractPDF(opts.PDF)
	case opts.Input != "":
		fmt.Printf("Phase A/4: Extracting text from file: %s...\n", opts.Input)
		sourceText, meta, err = ingestion.ExtractFile(opts.Input)
	default:
		return fmt.Errorf("no input: provide a text/markdown file or a PDF")
	}
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	emitProgress(&opts, db.StepSourceText, db.CategoryExtraction,
		fmt.Sprintf("Extracted %d chars", len(sourceText)), nil)

	if database != nil {
		runID, err = database.CreateRun(ctx, "Presentation", meta.Kind)
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
			runID = uuid.Nil
		} else {
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
			}
			_ = database.SaveTextArtifact(ctx, runID, db.StepSourceText, db.CategoryExtraction, sourceText)
			_ = database.SaveArtifact(ctx, runID, db.StepSourceMetadata, db.CategoryExtraction, meta)
		}
	}

	// Phase B: plan the deck (degrades to the fallback deck internally)
	fmt.Printf("Phase B/4: Planning deck structure...\n")
	deck := planning.GenerateDeck(ctx, sourceText, planning.PlanOptions{
		APIKey:  opts.APIKey,
		Model:   opts.TextModel,
		Verbose: opts.Verbose,
	})
	applyThemeOverrides(deck, opts)

	if opts.Verbose {
		printer.PrintDeck(deck)
	}
	emitProgress(&opts, db.StepDeckPlan, db.CategoryPlanning,
		fmt.Sprintf("Planned %d slides", len(deck.Slides)), deck)

	if database != nil && runID != uuid.Nil {
		_ = database.UpdateRunTitle(ctx, runID, deck.DeckTitle)
		_ = database.SaveArtifact(ctx, runID, db.StepDeckPlan, db.CategoryPlanning, deck)
	}

	// Phase C: acquire one visual per slide
	fmt.Printf("Phase C/4: Acquiring slide visuals...\n")
	if err := resetAssetsDir(opts.AssetsDir); err != nil {
		return err
	}

	var synth imagegen.Synthesizer
	if opts.APIKey != "" {
		gemini, synthErr := imagegen.NewGeminiSynthesizer(ctx, opts.APIKey, opts.ImageModel)
		if synthErr != nil {
			fmt.Printf("Warning: image synthesis unavailable: %v\n", synthErr)
		} else {
			synth = gemini
			defer func() { _ = gemini.Close() }()
		}
	} else {
		fmt.Printf("[IMG] No API key configured, all visuals will be procedural\n")
	}

	engine := visuals.NewEngine(synth, opts.AssetsDir, opts.Verbose)
	manifest, err := engine.AcquireAll(ctx, deck)
	if err != nil {
		failRun(ctx, database, runID)
		return fmt.Errorf("visual acquisition failed: %w", err)
	}

	if opts.Verbose {
		printer.PrintVisualManifest(manifest)
	}
	emitProgress(&opts, db.StepVisualManifest, db.CategoryVisuals,
		fmt.Sprintf("Acquired %d visuals", len(manifest)), manifest)

	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepVisualManifest, db.CategoryVisuals, manifest)
	}

	// Phase D: assemble the presentation
	fmt.Printf("Phase D/4: Assembling presentation...\n")
	if err := assembly.BuildPPTX(deck, manifest, opts.Output); err != nil {
		failRun(ctx, database, runID)
		return fmt.Errorf("assembly failed: %w", err)
	}

	if database != nil && runID != uuid.Nil {
		_ = database.CompleteRun(ctx, runID, db.StatusCompleted)
	}

	fmt.Printf("Done: %s\n", opts.Output)
	return nil
}

// applyThemeOverrides lets CLI/config theme values win over planned ones.
func applyThemeOverrides(deck *types.DeckDescription, opts RunOptions) {
	if opts.PrimaryColor != "" {
		deck.Theme.PrimaryColor = opts.PrimaryColor
	}
	if opts.SecondaryColor != "" {
		deck.Theme.SecondaryColor = opts.SecondaryColor
	}
	if opts.Font != "" {
		deck.Theme.Font = opts.Font
	}
}

// resetAssetsDir clears stale slide assets from previous runs.
func resetAssetsDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to clear assets directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create assets directory: %w", err)
	}
	return nil
}

func failRun(ctx context.Context, database *db.DB, runID uuid.UUID) {
	if database != nil && runID != uuid.Nil {
		_ = database.CompleteRun(ctx, runID, db.StatusFailed)
	}
}
