package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/deck-generator/internal/config"
	"github.com/jonathan/deck-generator/internal/pipeline"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Run the full deck generation pipeline end-to-end",
	Long: `Orchestrates the entire deck generation process: extraction -> planning -> visual acquisition -> assembly.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath     string
	genInput          string
	genPDF            string
	genOutput         string
	genAssetsDir      string
	genAPIKey         string
	genTextModel      string
	genImageModel     string
	genPrimaryColor   string
	genSecondaryColor string
	genFont           string
	genDatabaseURL    string
	genVerbose        bool
)

func init() {
	// Config file flag (processed first)
	generateCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVarP(&genInput, "input", "i", "", "Path to text/markdown source file (mutually exclusive with --pdf)")
	generateCommand.Flags().StringVar(&genPDF, "pdf", "", "Path to PDF source file (mutually exclusive with --input)")
	generateCommand.Flags().StringVarP(&genOutput, "out", "o", "", "Path of the .pptx to write (default presentation.pptx)")
	generateCommand.Flags().StringVar(&genAssetsDir, "assets-dir", "", "Directory for per-slide image assets (default assets)")
	generateCommand.Flags().StringVar(&genTextModel, "text-model", "", "Planning model override")
	generateCommand.Flags().StringVar(&genImageModel, "image-model", "", "Image model override")
	generateCommand.Flags().StringVar(&genPrimaryColor, "primary-color", "", "Theme primary color override (#RRGGBB)")
	generateCommand.Flags().StringVar(&genSecondaryColor, "secondary-color", "", "Theme secondary color override (#RRGGBB)")
	generateCommand.Flags().StringVar(&genFont, "font", "", "Theme font override")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCommand.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	generateCommand.Flags().StringVar(&genDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if genVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", genConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("input") {
		cfg.Input = genInput
	}
	if cmd.Flags().Changed("pdf") {
		cfg.PDF = genPDF
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = genOutput
	}
	if cmd.Flags().Changed("assets-dir") {
		cfg.AssetsDir = genAssetsDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("text-model") {
		cfg.TextModel = genTextModel
	}
	if cmd.Flags().Changed("image-model") {
		cfg.ImageModel = genImageModel
	}
	if cmd.Flags().Changed("primary-color") {
		cfg.PrimaryColor = genPrimaryColor
	}
	if cmd.Flags().Changed("secondary-color") {
		cfg.SecondaryColor = genSecondaryColor
	}
	if cmd.Flags().Changed("font") {
		cfg.Font = genFont
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = genDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{})
	cfg.APIKey = envDefault(cfg.APIKey, "GEMINI_API_KEY")
	cfg.DatabaseURL = envDefault(cfg.DatabaseURL, "DATABASE_URL")

	// Step 4: Validate required fields
	if cfg.Input == "" && cfg.PDF == "" {
		return fmt.Errorf("either --input or --pdf must be provided (via flag or config)")
	}
	if cfg.Input != "" && cfg.PDF != "" {
		return fmt.Errorf("--input and --pdf are mutually exclusive; provide only one")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return pipeline.RunPipeline(ctx, pipeline.RunOptions{
		Input:          cfg.Input,
		PDF:            cfg.PDF,
		Output:         cfg.Output,
		AssetsDir:      cfg.AssetsDir,
		APIKey:         cfg.APIKey,
		TextModel:      cfg.TextModel,
		ImageModel:     cfg.ImageModel,
		PrimaryColor:   cfg.PrimaryColor,
		SecondaryColor: cfg.SecondaryColor,
		Font:           cfg.Font,
		DatabaseURL:    cfg.DatabaseURL,
		Verbose:        cfg.Verbose,
	})
}
