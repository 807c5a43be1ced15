package ingestion

import "fmt"

// ExtractionError represents a failure to obtain usable text from an input
// source
type ExtractionError struct {
	Source  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error (%s): %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error (%s): %s", e.Source, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
