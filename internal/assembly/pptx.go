package assembly

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/jonathan/deck-generator/internal/types"
)

var (
	tmplContentTypes     = mustPart("content-types", contentTypesTemplate)
	tmplPresentation     = mustPart("presentation", presentationTemplate)
	tmplPresentationRels = mustPart("presentation-rels", presentationRelsTemplate)
	tmplSlideRels        = mustPart("slide-rels", slideRelsTemplate)
	tmplSlide            = mustPart("slide", slideTemplate)
)

func mustPart(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(template.FuncMap{
		"escape": EscapeXML,
	}).Parse(text))
}

// slideRef ties one slide to its presentation-level identifiers.
type slideRef struct {
	Number  int // 1-based part number
	SlideID int // p:sldId, 256-based
	RelID   string
}

// BuildPPTX writes the final presentation. Slides whose manifest entry is
// missing, or whose image file is absent or empty, render text-only; image
// trouble never fails the build.
func BuildPPTX(deck *types.DeckDescription, manifest types.VisualManifest, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return &AssemblyError{Message: fmt.Sprintf("failed to create %s", outPath), Cause: err}
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	refs := make([]slideRef, len(deck.Slides))
	for i := range deck.Slides {
		refs[i] = slideRef{
			Number:  i + 1,
			SlideID: 256 + i,
			RelID:   fmt.Sprintf("rId%d", i+2),
		}
	}
	numbers := make([]int, len(refs))
	for i, ref := range refs {
		numbers[i] = ref.Number
	}

	if err := writePart(zw, "[Content_Types].xml", tmplContentTypes, map[string]any{"SlideNumbers": numbers}); err != nil {
		return err
	}
	if err := writeStatic(zw, "_rels/.rels", rootRelsPart); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/presentation.xml", tmplPresentation, map[string]any{"Slides": refs}); err != nil {
		return err
	}
	if err := writePart(zw, "ppt/_rels/presentation.xml.rels", tmplPresentationRels, map[string]any{"Slides": refs}); err != nil {
		return err
	}
	if err := writeStatic(zw, "ppt/slideMasters/slideMaster1.xml", slideMasterPart); err != nil {
		return err
	}
	if err := writeStatic(zw, "ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsPart); err != nil {
		return err
	}
	if err := writeStatic(zw, "ppt/slideLayouts/slideLayout1.xml", slideLayoutPart); err != nil {
		return err
	}
	if err := writeStatic(zw, "ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsPart); err != nil {
		return err
	}
	if err := writeStatic(zw, "ppt/theme/theme1.xml", themePart); err != nil {
		return err
	}

	for i, slide := range deck.Slides {
		ref := refs[i]

		imageData := usableImage(manifest, i)
		if imageData == nil {
			fmt.Printf("[PPTX] slide=%d image file missing/empty, rendering text-only\n", ref.Number)
		} else {
			name := fmt.Sprintf("ppt/media/image%d.png", ref.Number)
			w, err := zw.Create(name)
			if err != nil {
				return &AssemblyError{Message: fmt.Sprintf("failed to create %s", name), Cause: err}
			}
			if _, err := w.Write(imageData); err != nil {
				return &AssemblyError{Message: fmt.Sprintf("failed to write %s", name), Cause: err}
			}
		}

		relsName := fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", ref.Number)
		if err := writePart(zw, relsName, tmplSlideRels, map[string]any{
			"Number":   ref.Number,
			"HasImage": imageData != nil,
		}); err != nil {
			return err
		}

		slideName := fmt.Sprintf("ppt/slides/slide%d.xml", ref.Number)
		if err := writePart(zw, slideName, tmplSlide, buildSlide(slide, deck.Theme, imageData != nil)); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return &AssemblyError{Message: "failed to finalize archive", Cause: err}
	}
	if err := f.Close(); err != nil {
		return &AssemblyError{Message: "failed to flush archive", Cause: err}
	}

	fmt.Printf("[PPTX] saved=%s\n", outPath)
	return nil
}

// usableImage returns the image bytes for a slide, or nil when the slide
// has no usable image file.
func usableImage(manifest types.VisualManifest, index int) []byte {
	visual, ok := manifest[index]
	if !ok || visual.AssetPath == "" {
		return nil
	}
	data, err := os.ReadFile(visual.AssetPath)
	if err != nil || len(data) == 0 {
		return nil
	}
	return data
}

func writePart(zw *zip.Writer, name string, tmpl *template.Template, data any) error {
	w, err := zw.Create(name)
	if err != nil {
		return &AssemblyError{Message: fmt.Sprintf("failed to create %s", name), Cause: err}
	}
	if err := tmpl.Execute(w, data); err != nil {
		return &TemplateError{Part: name, Message: "failed to execute template", Cause: err}
	}
	return nil
}

func writeStatic(zw *zip.Writer, name, content string) error {
	w, err := zw.Create(name)
	if err != nil {
		return &AssemblyError{Message: fmt.Sprintf("failed to create %s", name), Cause: err}
	}
	if _, err := io.WriteString(w, content); err != nil {
		return &AssemblyError{Message: fmt.Sprintf("failed to write %s", name), Cause: err}
	}
	return nil
}
