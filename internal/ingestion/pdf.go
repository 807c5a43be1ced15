package ingestion

import (
	"fmt"
	"math"
	"strings"

	rpdf "rsc.io/pdf"
)

// ExtractPDF extracts text from every page of a PDF, joining pages with
// blank lines. The underlying reader panics on some malformed documents, so
// extraction is fenced with a recover.
func ExtractPDF(path string) (text string, meta *Metadata, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			meta = nil
			err = &ExtractionError{Source: path, Message: fmt.Sprintf("PDF reader panic: %v", r)}
		}
	}()

	doc, openErr := rpdf.Open(path)
	if openErr != nil {
		return "", nil, &ExtractionError{Source: path, Message: "failed to open PDF", Cause: openErr}
	}

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		if content := strings.TrimSpace(pageText(page)); content != "" {
			pages = append(pages, content)
		}
	}

	result := CleanText(strings.Join(pages, "\n\n"))
	if result == "" {
		return "", nil, &ExtractionError{Source: path, Message: "no extractable text in PDF"}
	}
	fmt.Printf("[EXTRACT] PDF pages=%d, chars=%d\n", numPages, len(result))

	meta = NewMetadata(result, "pdf")
	meta.Pages = numPages
	return result, meta, nil
}

// pageText flattens a page's positioned text runs, inserting line breaks on
// vertical position changes.
func pageText(page rpdf.Page) string {
	var b strings.Builder
	lastY := math.NaN()
	for _, t := range page.Content().Text {
		if !math.IsNaN(lastY) && math.Abs(t.Y-lastY) > 0.5 {
			b.WriteString("\n")
		}
		b.WriteString(t.S)
		lastY = t.Y
	}
	return b.String()
}
