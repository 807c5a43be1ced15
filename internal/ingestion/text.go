// Package ingestion implements input extraction: plain text, markdown, and
// PDF sources are reduced to one cleaned text block for deck planning.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Split into lines for processing
	lines := strings.Split(content, "\n")

	// 3. Process each line
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	// 4. Join lines
	result := strings.Join(cleanedLines, "\n")

	// 5. Remove excessive blank lines (max 2 consecutive)
	result = removeExcessiveBlankLines(result)

	// 6. Trim leading/trailing whitespace from entire content
	return strings.TrimSpace(result)
}

// cleanLine cleans a single line while preserving structure
func cleanLine(line string) string {
	// Trim trailing whitespace
	line = strings.TrimRight(line, " \t")

	// Handle empty lines
	if strings.TrimSpace(line) == "" {
		return ""
	}

	// Preserve headings (Markdown # or ## etc.)
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		// Keep markdown headings as-is, normalize leading spaces to 0
		return trimmed
	}

	// Preserve bullet lists (Markdown - or *)
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		// Preserve indentation before bullet, but normalize
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	// For regular lines, normalize multiple spaces to single space
	// but preserve intentional indentation at start of line
	leadingSpace := len(line) - len(trimmed)
	content := strings.TrimSpace(line)
	content = regexp.MustCompile(`\s+`).ReplaceAllString(content, " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

// removeExcessiveBlankLines reduces consecutive blank lines to max 2
func removeExcessiveBlankLines(content string) string {
	re := regexp.MustCompile(`\n\n\n+`)
	return re.ReplaceAllString(content, "\n\n")
}

// ExtractText cleans inline text or markdown input. Empty input after
// cleaning is an error: there is nothing to plan a deck from.
func ExtractText(text string) (string, *Metadata, error) {
	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil, &ExtractionError{Source: "text", Message: "input is empty"}
	}
	fmt.Printf("[EXTRACT] text input, chars=%d\n", len(cleaned))
	return cleaned, NewMetadata(cleaned, "text"), nil
}

// ExtractFile reads a text or markdown file and cleans it.
func ExtractFile(path string) (string, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, &ExtractionError{Source: path, Message: "failed to read input file", Cause: err}
	}

	cleaned := CleanText(string(data))
	if cleaned == "" {
		return "", nil, &ExtractionError{Source: path, Message: "input file is empty"}
	}
	fmt.Printf("[EXTRACT] text input, chars=%d\n", len(cleaned))
	return cleaned, NewMetadata(cleaned, kindFor(path)), nil
}

func kindFor(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".md") {
		return "markdown"
	}
	return "text"
}
