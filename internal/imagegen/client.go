// Package imagegen provides the image-synthesis capability consumed by the
// image acquisition engine. The engine only talks to the Synthesizer
// interface; the Gemini implementation here can be swapped for another
// provider in configuration.
package imagegen

import (
	"context"
	"fmt"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Aspect is the target aspect ratio for a synthesized image.
type Aspect string

const (
	// AspectSquare is used for side images (1024x1024)
	AspectSquare Aspect = "1:1"
	// AspectWide is used for full-bleed images (1920x1080)
	AspectWide Aspect = "16:9"
)

// Synthesizer is an abstraction over image-generation providers. Synthesize
// writes the resulting image to outPath. A nil error only means the
// provider reported success; callers must still verify the written file
// (providers have been observed to report success with no usable payload).
type Synthesizer interface {
	Synthesize(ctx context.Context, prompt string, aspect Aspect, outPath string) error
	Close() error
}

// DefaultModel is the image model used when none is configured.
const DefaultModel = "gemini-2.5-flash-image"

// GeminiSynthesizer implements Synthesizer using the Gemini image model.
type GeminiSynthesizer struct {
	client *genai.Client
	model  string
}

// NewGeminiSynthesizer creates a Gemini-backed synthesizer.
func NewGeminiSynthesizer(ctx context.Context, apiKey, model string) (*GeminiSynthesizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSynthesizer{client: client, model: model}, nil
}

// Synthesize generates one image for the prompt and writes it to outPath.
func (s *GeminiSynthesizer) Synthesize(ctx context.Context, prompt string, aspect Aspect, outPath string) error {
	model := s.client.GenerativeModel(s.model)

	resp, err := model.GenerateContent(ctx, genai.Text(withAspectHint(prompt, aspect)))
	if err != nil {
		return &SynthesisError{Model: s.model, Message: "generation request failed", Cause: err}
	}

	data, err := extractImageBytes(resp)
	if err != nil {
		return &SynthesisError{Model: s.model, Message: "no image in response", Cause: err}
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}

// Close releases resources held by the synthesizer.
func (s *GeminiSynthesizer) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// withAspectHint appends a composition hint, since the text-to-image
// endpoint takes no explicit aspect parameter.
func withAspectHint(prompt string, aspect Aspect) string {
	switch aspect {
	case AspectWide:
		return prompt + ", wide 16:9 composition"
	default:
		return prompt + ", square 1:1 composition"
	}
}

// extractImageBytes pulls the first inline image payload out of a response.
func extractImageBytes(resp *genai.GenerateContentResponse) ([]byte, error) {
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, fmt.Errorf("no content in response")
	}
	for _, part := range candidate.Content.Parts {
		if blob, ok := part.(genai.Blob); ok && len(blob.Data) > 0 {
			return blob.Data, nil
		}
	}
	return nil, fmt.Errorf("no image parts in response")
}
