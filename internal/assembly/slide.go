package assembly

import (
	"fmt"
	"regexp"

	"github.com/jonathan/deck-generator/internal/types"
)

// Geometry is expressed in EMU (914400 per inch) on a 13.333 x 7.5 inch
// widescreen canvas.
const (
	emuPerInch = 914400
	slideW     = 12192000
	slideH     = 6858000
)

// shape is one drawable element of a slide part: a filled rectangle, a text
// box, or an embedded picture.
type shape struct {
	ID         int
	Name       string
	Kind       string // "rect", "text", "pic"
	X, Y, W, H int64
	Fill       string // hex without '#', rects only
	RelID      string // pics only
	Paragraphs []paragraph
}

// paragraph is one run of styled text inside a text box.
type paragraph struct {
	Text  string
	Size  int // hundredths of a point
	Bold  bool
	Color string
	Font  string
}

// slideData is the execution context for slideTemplate.
type slideData struct {
	Background string
	Shapes     []shape
}

func emu(inches float64) int64 {
	return int64(inches * emuPerInch)
}

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// colorVal normalizes a "#RRGGBB" theme color to the bare hex OOXML wants,
// falling back when the value is malformed.
func colorVal(hex, fallback string) string {
	if !hexColorPattern.MatchString(hex) {
		hex = fallback
	}
	return hex[1:]
}

// slideBuilder accumulates shapes with monotonically increasing element IDs
// (id 1 is reserved for the group shape).
type slideBuilder struct {
	data   slideData
	nextID int
}

func newSlideBuilder() *slideBuilder {
	return &slideBuilder{nextID: 2}
}

func (b *slideBuilder) add(s shape) {
	s.ID = b.nextID
	b.nextID++
	b.data.Shapes = append(b.data.Shapes, s)
}

func (b *slideBuilder) rect(name string, x, y, w, h float64, fill string) {
	b.add(shape{Name: name, Kind: "rect", X: emu(x), Y: emu(y), W: emu(w), H: emu(h), Fill: fill})
}

func (b *slideBuilder) text(name string, x, y, w, h float64, paras ...paragraph) {
	b.add(shape{Name: name, Kind: "text", X: emu(x), Y: emu(y), W: emu(w), H: emu(h), Paragraphs: paras})
}

func (b *slideBuilder) picture(name, relID string, x, y, w, h float64) {
	b.add(shape{Name: name, Kind: "pic", RelID: relID, X: emu(x), Y: emu(y), W: emu(w), H: emu(h)})
}

// buildSlide produces the shape list for one slide. hasImage reports
// whether a usable image file will be embedded as rId2; when false the
// slide renders text-only.
func buildSlide(slide types.SlideSpec, theme types.Theme, hasImage bool) slideData {
	primary := colorVal(theme.PrimaryColor, "#2B579A")
	secondary := colorVal(theme.SecondaryColor, "#4472C4")
	font := theme.Font
	if font == "" {
		font = "Arial"
	}

	switch slide.Layout {
	case types.LayoutTitle:
		return buildTitleSlide(slide, primary, font, hasImage)
	case types.LayoutImageFullTextBottom:
		return buildImageFullSlide(slide, font, hasImage)
	default:
		return buildTextLeftImageRightSlide(slide, primary, secondary, font, hasImage)
	}
}

// buildTitleSlide renders the cover: primary background (or full-bleed
// image), white accent line, large title, message subtitle.
func buildTitleSlide(slide types.SlideSpec, primary, font string, hasImage bool) slideData {
	b := newSlideBuilder()
	b.data.Background = primary

	if hasImage {
		b.picture("Cover Image", "rId2", 0, 0, 13.333, 7.5)
		// Dark band keeps the title legible over arbitrary imagery.
		b.rect("Title Scrim", 0, 1.8, 13.333, 3.0, "1F3864")
	}

	b.rect("Accent Line", 1.2, 4.2, 2.5, 0.06, "FFFFFF")
	b.text("Title", 1.2, 2.0, 10, 2.0, paragraph{
		Text: slide.Title, Size: 4400, Bold: true, Color: "FFFFFF", Font: font,
	})
	if slide.Message != "" {
		b.text("Subtitle", 1.2, 4.6, 10, 1.0, paragraph{
			Text: slide.Message, Size: 2200, Color: "DCE1F0", Font: font,
		})
	}
	return b.data
}

// buildImageFullSlide renders a full-bleed image with a dark text strip
// along the bottom.
func buildImageFullSlide(slide types.SlideSpec, font string, hasImage bool) slideData {
	b := newSlideBuilder()
	b.data.Background = "1F3864"

	if hasImage {
		b.picture("Hero Image", "rId2", 0, 0, 13.333, 7.5)
	}

	stripY := 7.5 - 2.8
	b.rect("Bottom Strip", 0, stripY, 13.333, 2.8, "000000")
	b.text("Title", 1.0, stripY+0.2, 11, 0.7, paragraph{
		Text: slide.Title, Size: 3200, Bold: true, Color: "FFFFFF", Font: font,
	})
	if slide.Message != "" {
		b.text("Message", 1.0, stripY+0.9, 11, 0.5, paragraph{
			Text: slide.Message, Size: 1800, Bold: true, Color: "C8D2E6", Font: font,
		})
	}
	if slide.Body != "" {
		b.text("Body", 1.0, stripY+1.4, 11, 1.2, paragraph{
			Text: slide.Body, Size: 1400, Color: "C8D2DC", Font: font,
		})
	}
	return b.data
}

// buildTextLeftImageRightSlide renders the default content layout: colored
// title bar, message/body/bullets on the left, image on the right. With no
// image the text column widens to fill the slide.
func buildTextLeftImageRightSlide(slide types.SlideSpec, primary, secondary, font string, hasImage bool) slideData {
	b := newSlideBuilder()

	b.rect("Title Bar", 0, 0, 13.333, 1.1, primary)
	b.text("Title", 0.7, 0.15, 13.333-1.4, 0.8, paragraph{
		Text: slide.Title, Size: 2800, Bold: true, Color: "FFFFFF", Font: font,
	})

	textWidth := 11.5
	if hasImage {
		textWidth = 7.2
	}
	contentTop := 1.4

	if slide.Message != "" {
		b.text("Message", 0.7, contentTop, textWidth, 0.6, paragraph{
			Text: slide.Message, Size: 1800, Bold: true, Color: secondary, Font: font,
		})
	}

	bodyTop := contentTop + 0.7
	bulletsTop := bodyTop
	if slide.Body != "" {
		b.text("Body", 0.7, bodyTop, textWidth, 1.8, paragraph{
			Text: slide.Body, Size: 1400, Color: "3C3C46", Font: font,
		})
		bulletsTop = bodyTop + 1.8
	}

	if len(slide.Bullets) > 0 {
		paras := make([]paragraph, 0, len(slide.Bullets))
		for _, bullet := range slide.Bullets {
			paras = append(paras, paragraph{
				Text: fmt.Sprintf("• %s", bullet), Size: 1600, Color: "333333", Font: font,
			})
		}
		b.text("Bullets", 0.7, bulletsTop, textWidth, 3.5, paras...)
	}

	if hasImage {
		b.picture("Slide Image", "rId2", 8.2, contentTop, 4.8, 5.5)
	}
	return b.data
}
