// Package assembly builds the final .pptx document from a planned deck and
// the per-slide visual manifest.
package assembly

import "fmt"

// TemplateError represents an error parsing or executing an OOXML part
// template
type TemplateError struct {
	Part    string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error in %s: %s: %v", e.Part, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error in %s: %s", e.Part, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// AssemblyError represents a failure writing the presentation archive
type AssemblyError struct {
	Message string
	Cause   error
}

func (e *AssemblyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("assembly error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("assembly error: %s", e.Message)
}

func (e *AssemblyError) Unwrap() error {
	return e.Cause
}
