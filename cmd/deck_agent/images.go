package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/deck-generator/internal/imagegen"
	"github.com/jonathan/deck-generator/internal/types"
	"github.com/jonathan/deck-generator/internal/visuals"
)

var imagesCommand = &cobra.Command{
	Use:   "images",
	Short: "Acquire slide visuals for a saved deck (phase C only)",
	Long:  "Reads a deck description JSON (as written by the plan subcommand) and produces one visual per slide in the assets directory.",
	RunE:  runImagesCmd,
}

var (
	imagesDeckPath   string
	imagesAssetsDir  string
	imagesAPIKey     string
	imagesImageModel string
	imagesVerbose    bool
)

func init() {
	imagesCommand.Flags().StringVarP(&imagesDeckPath, "deck", "d", "deck.json", "Path to deck description JSON")
	imagesCommand.Flags().StringVar(&imagesAssetsDir, "assets-dir", "assets", "Directory for per-slide image assets")
	imagesCommand.Flags().StringVar(&imagesAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	imagesCommand.Flags().StringVar(&imagesImageModel, "image-model", "", "Image model override")
	imagesCommand.Flags().BoolVarP(&imagesVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(imagesCommand)
}

func runImagesCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	data, err := os.ReadFile(imagesDeckPath)
	if err != nil {
		return fmt.Errorf("failed to read deck JSON: %w", err)
	}
	var deck types.DeckDescription
	if err := json.Unmarshal(data, &deck); err != nil {
		return fmt.Errorf("failed to parse deck JSON: %w", err)
	}
	if len(deck.Slides) == 0 {
		return fmt.Errorf("deck has no slides")
	}

	var synth imagegen.Synthesizer
	if apiKey := envDefault(imagesAPIKey, "GEMINI_API_KEY"); apiKey != "" {
		gemini, synthErr := imagegen.NewGeminiSynthesizer(ctx, apiKey, imagesImageModel)
		if synthErr != nil {
			fmt.Printf("Warning: image synthesis unavailable: %v\n", synthErr)
		} else {
			synth = gemini
			defer func() { _ = gemini.Close() }()
		}
	} else {
		fmt.Printf("[IMG] No API key configured, all visuals will be procedural\n")
	}

	engine := visuals.NewEngine(synth, imagesAssetsDir, imagesVerbose)
	manifest, err := engine.AcquireAll(ctx, &deck)
	if err != nil {
		return err
	}

	fmt.Printf("Acquired %d visuals in %s\n", len(manifest), imagesAssetsDir)
	return nil
}
