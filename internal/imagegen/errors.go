package imagegen

import "fmt"

// SynthesisError represents a failed image-generation attempt.
type SynthesisError struct {
	Model   string
	Message string
	Cause   error
}

func (e *SynthesisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("image synthesis failed (%s): %s: %v", e.Model, e.Message, e.Cause)
	}
	return fmt.Sprintf("image synthesis failed (%s): %s", e.Model, e.Message)
}

func (e *SynthesisError) Unwrap() error {
	return e.Cause
}
