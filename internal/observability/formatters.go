// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/deck-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDeck outputs a human-readable summary of the planned deck.
func (p *Printer) PrintDeck(deck *types.DeckDescription) {
	if deck == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:  %s\n", deck.DeckTitle))
	sb.WriteString(fmt.Sprintf("Theme:  %s / %s, %s\n",
		deck.Theme.PrimaryColor, deck.Theme.SecondaryColor, deck.Theme.Font))
	sb.WriteString(fmt.Sprintf("Slides: %d\n\n", len(deck.Slides)))

	count := min(len(deck.Slides), maxItemsToShow)
	for i := 0; i < count; i++ {
		slide := deck.Slides[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, slide.Title))
		sb.WriteString(fmt.Sprintf("    Layout: %s", slide.Layout))
		if len(slide.Bullets) > 0 {
			sb.WriteString(fmt.Sprintf(", bullets: %d", len(slide.Bullets)))
		}
		sb.WriteString("\n")
	}
	if len(deck.Slides) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(deck.Slides)-maxItemsToShow))
	}

	p.printBox("PLANNED DECK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVisualManifest outputs the per-slide visual origins.
func (p *Printer) PrintVisualManifest(manifest types.VisualManifest) {
	if len(manifest) == 0 {
		return
	}

	generated := 0
	for _, v := range manifest {
		if v.Origin == types.OriginGenerated {
			generated++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Visuals: %d (%d generated, %d procedural)\n\n",
		len(manifest), generated, len(manifest)-generated))

	for i := 0; i < len(manifest); i++ {
		visual, ok := manifest[i]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("#%d  %-20s %s\n", i+1, visual.Origin, visual.AssetPath))
	}

	p.printBox("VISUAL MANIFEST", strings.TrimSuffix(sb.String(), "\n"))
}
