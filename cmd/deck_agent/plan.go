package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/deck-generator/internal/ingestion"
	"github.com/jonathan/deck-generator/internal/planning"
)

var planCommand = &cobra.Command{
	Use:   "plan",
	Short: "Extract source text and plan the deck (phases A+B)",
	Long:  "Runs extraction and planning, then writes the deck description JSON to a file. The deck can later be fed to the images subcommand.",
	RunE:  runPlanCmd,
}

var (
	planInput     string
	planPDF       string
	planOut       string
	planAPIKey    string
	planTextModel string
	planVerbose   bool
)

func init() {
	planCommand.Flags().StringVarP(&planInput, "input", "i", "", "Path to text/markdown source file (mutually exclusive with --pdf)")
	planCommand.Flags().StringVar(&planPDF, "pdf", "", "Path to PDF source file (mutually exclusive with --input)")
	planCommand.Flags().StringVarP(&planOut, "out", "o", "deck.json", "Path of the deck JSON to write")
	planCommand.Flags().StringVar(&planAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	planCommand.Flags().StringVar(&planTextModel, "text-model", "", "Planning model override")
	planCommand.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(planCommand)
}

func runPlanCmd(_ *cobra.Command, _ []string) error {
	if planInput == "" && planPDF == "" {
		return fmt.Errorf("either --input or --pdf must be provided")
	}
	if planInput != "" && planPDF != "" {
		return fmt.Errorf("--input and --pdf are mutually exclusive; provide only one")
	}

	var text string
	var err error
	if planPDF != "" {
		text, _, err = ingestion.ExtractPDF(planPDF)
	} else {
		text, _, err = ingestion.ExtractFile(planInput)
	}
	if err != nil {
		return err
	}

	deck := planning.GenerateDeck(context.Background(), text, planning.PlanOptions{
		APIKey:  envDefault(planAPIKey, "GEMINI_API_KEY"),
		Model:   planTextModel,
		Verbose: planVerbose,
	})

	data, err := json.MarshalIndent(deck, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal deck: %w", err)
	}
	if err := os.WriteFile(planOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write deck JSON: %w", err)
	}

	fmt.Printf("Wrote %s (%d slides)\n", planOut, len(deck.Slides))
	return nil
}
