package visuals

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/jonathan/deck-generator/internal/types"
)

// renderKind identifies which procedural composition a slide receives.
type renderKind int

const (
	kindCards renderKind = iota
	kindChart
	kindWarning
	kindFlow
)

// Slide-content keywords that route slides to the chart and warning
// compositions. Decks are planned in English or Japanese, so both sets
// carry both languages.
var (
	outcomeTitleKeywords = []string{"outcome", "effect", "benefit", "期待", "効果"}
	problemTitleKeywords = []string{"challenge", "problem", "issue", "課題", "問題"}
)

// classify picks the composition for a slide. Bullet-heavy slides become
// card grids; otherwise the title decides between a rising chart, a warning
// motif, and a generic process flow.
func classify(slide types.SlideSpec) renderKind {
	if len(slide.Bullets) >= 3 {
		return kindCards
	}
	if containsAnyFold(slide.Title, outcomeTitleKeywords) {
		return kindChart
	}
	if containsAnyFold(slide.Title, problemTitleKeywords) {
		return kindWarning
	}
	return kindFlow
}

// RenderFallback draws a deterministic procedural visual for a slide and
// writes it as a PNG. It has no failure modes beyond filesystem errors.
func RenderFallback(slide types.SlideSpec, width, height int, outPath string) error {
	dc := gg.NewContext(width, height)
	dc.SetColor(palette.Background)
	dc.Clear()
	dc.SetFontFace(labelFace(float64(height) / 40))

	w := float64(width)
	h := float64(height)

	switch classify(slide) {
	case kindCards:
		drawCards(dc, w, h, slide.Bullets)
	case kindChart:
		drawChart(dc, w, h, slide.Bullets)
	case kindWarning:
		drawWarning(dc, w, h, slide.Bullets)
	default:
		drawFlow(dc, w, h, slide.Bullets)
	}

	// Brand strip along the bottom edge.
	dc.SetColor(palette.Primary)
	dc.DrawRectangle(0, h-6, w, 6)
	dc.Fill()

	if err := dc.SavePNG(outPath); err != nil {
		return fmt.Errorf("failed to write fallback visual: %w", err)
	}
	return nil
}

// drawCards lays out up to four rounded cards with icon circles, one per
// bullet.
func drawCards(dc *gg.Context, w, h float64, bullets []string) {
	n := len(bullets)
	if n > 4 {
		n = 4
	}
	gap := 24.0
	margin := 60.0
	cardW := (w - 2*margin - float64(n-1)*gap) / float64(n)
	cardH := h - 200
	y := 100.0

	for i := 0; i < n; i++ {
		x := margin + float64(i)*(cardW+gap)

		dc.SetColor(palette.Card)
		dc.DrawRoundedRectangle(x, y, cardW, cardH, 18)
		dc.FillPreserve()
		dc.SetColor(palette.Light)
		dc.SetLineWidth(2)
		dc.Stroke()

		cx := x + cardW/2
		cy := y + 70.0
		dc.SetColor(iconCycle[i%len(iconCycle)])
		dc.DrawCircle(cx, cy, 30)
		dc.Fill()
		dc.SetColor(palette.Card)
		dc.DrawRectangle(cx-11, cy-11, 22, 22)
		dc.Fill()

		dc.SetColor(palette.Text)
		dc.DrawStringAnchored(truncateRunes(bullets[i], 18), cx, cy+70, 0.5, 0.5)
	}
}

// drawChart draws an ascending bar chart topped with an upward arrow on the
// final bar.
func drawChart(dc *gg.Context, w, h float64, bullets []string) {
	n := len(bullets)
	if n < 3 {
		n = 3
	}
	margin := 90.0
	gap := 18.0
	barW := (w - 2*margin - float64(n-1)*gap) / float64(n)
	baseY := h - 90

	for i := 0; i < n; i++ {
		frac := 0.3 + 0.7*float64(i+1)/float64(n)
		barH := (h - 220) * frac
		x := margin + float64(i)*(barW+gap)
		y := baseY - barH

		if i%2 == 0 {
			dc.SetColor(palette.Secondary)
		} else {
			dc.SetColor(palette.Accent)
		}
		dc.DrawRoundedRectangle(x, y, barW, barH, 8)
		dc.Fill()

		if i == n-1 {
			ax := x + barW/2
			ay := y - 18
			dc.SetColor(palette.Primary)
			dc.MoveTo(ax-14, ay+14)
			dc.LineTo(ax+14, ay+14)
			dc.LineTo(ax, ay-10)
			dc.ClosePath()
			dc.Fill()
		}
	}

	dc.SetColor(palette.TextLight)
	dc.SetLineWidth(3)
	dc.DrawLine(margin-20, baseY, w-margin+20, baseY)
	dc.Stroke()
}

// drawWarning draws a central warning triangle with satellite circles, one
// per bullet.
func drawWarning(dc *gg.Context, w, h float64, bullets []string) {
	cx := w / 2
	cy := h / 2
	size := math.Min(w, h) / 3

	dc.MoveTo(cx, cy-size/2)
	dc.LineTo(cx-size/2, cy+size/2)
	dc.LineTo(cx+size/2, cy+size/2)
	dc.ClosePath()
	dc.SetColor(palette.Light)
	dc.FillPreserve()
	dc.SetColor(palette.Secondary)
	dc.SetLineWidth(4)
	dc.Stroke()

	// Exclamation mark.
	dc.SetColor(palette.Primary)
	dc.DrawRectangle(cx-6, cy-size/6, 12, size/4)
	dc.Fill()
	dc.DrawCircle(cx, cy+size/4+20, 8)
	dc.Fill()

	n := len(bullets)
	if n > 5 {
		n = 5
	}
	for i := 0; i < n; i++ {
		angle := (-90.0 + float64(i)*360.0/float64(n)) * math.Pi / 180.0
		sx := cx + 0.85*size*math.Cos(angle)
		sy := cy + 0.85*size*math.Sin(angle)

		dc.SetColor(palette.Accent)
		dc.DrawCircle(sx, sy, 22)
		dc.FillPreserve()
		dc.SetColor(palette.Secondary)
		dc.SetLineWidth(2)
		dc.Stroke()
	}
}

// drawFlow draws left-to-right process boxes joined by arrows, labeled from
// the bullets or with step numbers when there are none.
func drawFlow(dc *gg.Context, w, h float64, bullets []string) {
	n := len(bullets)
	if n < 3 {
		n = 3
	}
	if n > 4 {
		n = 4
	}
	margin := 70.0
	gap := 50.0
	boxW := (w - 2*margin - float64(n-1)*gap) / float64(n)
	boxH := 110.0
	y := h/2 - boxH/2

	for i := 0; i < n; i++ {
		x := margin + float64(i)*(boxW+gap)

		switch {
		case i == 0:
			dc.SetColor(palette.Primary)
		case i == n-1:
			dc.SetColor(palette.Secondary)
		default:
			dc.SetColor(palette.Accent)
		}
		dc.DrawRoundedRectangle(x, y, boxW, boxH, 14)
		dc.Fill()

		label := fmt.Sprintf("Step %d", i+1)
		if i < len(bullets) {
			label = truncateRunes(bullets[i], 14)
		}
		dc.SetColor(palette.Card)
		dc.DrawStringAnchored(label, x+boxW/2, y+boxH/2, 0.5, 0.5)

		if i < n-1 {
			ax := x + boxW + 8
			ay := y + boxH/2
			dc.SetColor(palette.Secondary)
			dc.MoveTo(ax, ay-12)
			dc.LineTo(ax+gap-16, ay)
			dc.LineTo(ax, ay+12)
			dc.ClosePath()
			dc.Fill()
		}
	}
}

// labelFace returns the face used for fallback labels. A TTF can be
// supplied via DECK_FONT for CJK coverage; otherwise the built-in bitmap
// face is used.
func labelFace(size float64) font.Face {
	path := os.Getenv("DECK_FONT")
	if path == "" {
		return basicfont.Face7x13
	}
	face, err := loadFontFace(path, size)
	if err != nil {
		fmt.Printf("[IMG] Could not load font %s, using built-in face: %v\n", path, err)
		return basicfont.Face7x13
	}
	return face
}

func loadFontFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font file: %w", err)
	}
	return truetype.NewFace(parsed, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}

func containsAnyFold(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
