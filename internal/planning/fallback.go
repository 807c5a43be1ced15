package planning

import (
	"fmt"

	"github.com/jonathan/deck-generator/internal/types"
)

// FallbackDeck returns a complete, fixed-content deck used when the
// planning model is unavailable or its output is unusable. It is a pure
// function aside from logging and must never fail: the document-assembly
// collaborator can always rely on receiving a non-empty deck.
//
// The source text is accepted for interface symmetry with the planned
// path but is not mined for content; fallback decks are deliberately
// generic.
func FallbackDeck(sourceText string) *types.DeckDescription {
	_ = sourceText
	fmt.Printf("[PLAN] Creating fallback deck (no AI)\n")

	return &types.DeckDescription{
		DeckTitle: "Proposal",
		Theme: types.Theme{
			PrimaryColor:   DefaultPrimaryColor,
			SecondaryColor: DefaultSecondaryColor,
			Font:           DefaultFont,
		},
		Slides: []types.SlideSpec{
			{
				Title:   "Proposal",
				Message: "An overview of our operational improvement proposal",
				Body:    "",
				Bullets: []string{},
				ImagePrompt: "A clean flat illustration of a professional business " +
					"presentation setting, minimal, white background, no text",
				Layout: types.LayoutTitle,
			},
			{
				Title:   "Current Challenges",
				Message: "Manual workflows are driving quality risk",
				Body: "Today's operations rely on manual transcription and document " +
					"checks, and each owner follows their own process. Errors climb " +
					"during busy periods and handovers are difficult because the " +
					"workflow lives in individual heads.",
				Bullets: []string{
					"Heavy manual transcription and cross-checking",
					"Workflow depends on individual owners",
					"Errors are caught late, after the fact",
				},
				ImagePrompt: "A flat illustration of an overwhelmed office worker " +
					"surrounded by stacks of paper documents and spreadsheets, " +
					"minimal style, white background, no text, no watermark",
				Layout: types.LayoutTextLeftImageRight,
			},
			{
				Title:   "Proposed Solution",
				Message: "Transform operations with AI, automation, and cloud",
				Body: "Introduce AI-based document capture and cloud integration to " +
					"automate data entry, and run pre-submission checks twice: once " +
					"rule-based and once AI-assisted. Errors are prevented up front " +
					"while the workflow is standardized and accelerated.",
				Bullets: []string{
					"AI-based capture digitizes source documents",
					"Cloud integration auto-generates entries",
					"Rule-based plus AI double-check before submission",
				},
				ImagePrompt: "A flat illustration of a digital transformation concept " +
					"with cloud computing icons, AI brain symbol, and automated " +
					"workflow arrows, minimal style, white background, no text, " +
					"no watermark",
				Layout: types.LayoutTextLeftImageRight,
			},
			makeOutcomeSlide(),
		},
	}
}
