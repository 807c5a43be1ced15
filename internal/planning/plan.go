package planning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/deck-generator/internal/llm"
	"github.com/jonathan/deck-generator/internal/prompts"
	"github.com/jonathan/deck-generator/internal/schemas"
	"github.com/jonathan/deck-generator/internal/types"
)

// PlanOptions configures the planning-model call.
type PlanOptions struct {
	APIKey  string
	Model   string // optional override for the standard-tier model
	Verbose bool
}

// GenerateDeck plans a deck from extracted source text. Every failure mode
// of the planning capability (no credentials, request error, unparsable or
// empty output) degrades to the fallback deck; this function never returns
// an error and never returns a deck with zero slides.
func GenerateDeck(ctx context.Context, extractedText string, opts PlanOptions) *types.DeckDescription {
	if opts.APIKey == "" {
		fmt.Printf("[PLAN] No API key configured, using fallback deck\n")
		return FallbackDeck(extractedText)
	}

	config := llm.DefaultConfig()
	if opts.Model != "" {
		config = config.WithModel(llm.TierStandard, opts.Model)
	}

	client, err := llm.NewClient(ctx, config, opts.APIKey)
	if err != nil {
		fmt.Printf("[PLAN][ERROR] Failed to create planning client: %v\n", err)
		return FallbackDeck(extractedText)
	}
	defer func() { _ = client.Close() }()

	prompt := buildDeckPrompt(extractedText)

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		fmt.Printf("[PLAN][ERROR] Planning call failed: %v\n", err)
		return FallbackDeck(extractedText)
	}
	raw = llm.CleanJSONBlock(raw)

	// Advisory structural diagnosis; repair proceeds regardless.
	if err := schemas.DiagnoseDeck(raw); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			fmt.Printf("[PLAN] Schema diagnosis: %d violation(s), repairing\n", len(ve.Errors))
			if opts.Verbose {
				fmt.Printf("[PLAN] %v", ve)
			}
		}
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		fmt.Printf("[PLAN][ERROR] Planning output is not valid JSON: %v\n", err)
		return FallbackDeck(extractedText)
	}

	deck := Repair(doc, extractedText)
	fmt.Printf("[PLAN] slides=%d\n", len(deck.Slides))
	return deck
}

// buildDeckPrompt constructs the deck-planning prompt from the embedded
// template.
func buildDeckPrompt(extractedText string) string {
	template := prompts.MustGet("planning.json", "generate-deck")
	return prompts.Format(template, map[string]string{
		"InputText": extractedText,
	})
}
