package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractPDFMissingFile(t *testing.T) {
	_, _, err := ExtractPDF(filepath.Join(t.TempDir(), "nope.pdf"))

	var ee *ExtractionError
	require.ErrorAs(t, err, &ee)
}

// Garbage bytes must come back as a typed error, not a panic.
func TestExtractPDFInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 this is not a real pdf"), 0o644))

	_, _, err := ExtractPDF(path)

	var ee *ExtractionError
	require.ErrorAs(t, err, &ee)
}
