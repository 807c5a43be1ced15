package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/deck-generator/internal/ingestion"
)

var extractCommand = &cobra.Command{
	Use:   "extract",
	Short: "Extract and clean source text (phase A only)",
	Long:  "Runs only the extraction phase and prints the cleaned text to stdout. Useful for checking what the planner will see.",
	RunE:  runExtractCmd,
}

var (
	extractInput string
	extractPDF   string
)

func init() {
	extractCommand.Flags().StringVarP(&extractInput, "input", "i", "", "Path to text/markdown source file (mutually exclusive with --pdf)")
	extractCommand.Flags().StringVar(&extractPDF, "pdf", "", "Path to PDF source file (mutually exclusive with --input)")

	rootCmd.AddCommand(extractCommand)
}

func runExtractCmd(_ *cobra.Command, _ []string) error {
	if extractInput == "" && extractPDF == "" {
		return fmt.Errorf("either --input or --pdf must be provided")
	}
	if extractInput != "" && extractPDF != "" {
		return fmt.Errorf("--input and --pdf are mutually exclusive; provide only one")
	}

	var text string
	var err error
	if extractPDF != "" {
		text, _, err = ingestion.ExtractPDF(extractPDF)
	} else {
		text, _, err = ingestion.ExtractFile(extractInput)
	}
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}
