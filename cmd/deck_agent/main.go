// Package main provides the entry point for the deck generation CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deck_agent",
	Short: "AI slide deck generator",
	Long:  "deck_agent turns text, markdown, or PDF source material into a themed .pptx presentation: an AI-planned deck with one generated or procedurally drawn visual per slide.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// envDefault returns the value of the environment variable when the given
// value is empty.
func envDefault(value, envVar string) string {
	if value != "" {
		return value
	}
	return os.Getenv(envVar)
}
