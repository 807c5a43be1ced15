package visuals

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRetryPromptsShape(t *testing.T) {
	prompts := BuildRetryPrompts("a photorealistic city skyline at dusk")

	require.Len(t, prompts, 3)
	assert.Equal(t, "a photorealistic city skyline at dusk", prompts[0])
	assert.Equal(t, SafePrompt, prompts[2])
}

func TestBuildRetryPromptsStripsHeavyAdjectives(t *testing.T) {
	tests := []struct {
		name     string
		original string
		expected string
	}{
		{
			"Single adjective",
			"A detailed city skyline",
			"A city skyline, minimal style, no text",
		},
		{
			"Compound adjective removed whole",
			"A highly detailed diagram",
			"A diagram, minimal style, no text",
		},
		{
			"Case insensitive",
			"Photorealistic render of a server room",
			"render of a server room, minimal style, no text",
		},
		{
			"Multiple adjectives",
			"An intricate, elaborate, sophisticated mechanism",
			"An , , mechanism, minimal style, no text",
		},
		{
			"No adjectives unchanged but suffixed",
			"A flat blue icon",
			"A flat blue icon, minimal style, no text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompts := BuildRetryPrompts(tt.original)
			assert.Equal(t, tt.expected, prompts[1])
		})
	}
}

func TestBuildRetryPromptsDoesNotDuplicateSuffixes(t *testing.T) {
	prompts := BuildRetryPrompts("simple scene, minimal style, no text")

	assert.Equal(t, 1, strings.Count(prompts[1], "minimal"))
	assert.Equal(t, 1, strings.Count(prompts[1], "no text"))
}

// The second prompt never reintroduces a stripped adjective and the third
// is content-independent.
func TestBuildRetryPromptsMonotonicDegradation(t *testing.T) {
	prompts := BuildRetryPrompts("hyper-realistic ultra-realistic complex machinery")

	for _, adj := range heavyAdjectives {
		assert.NotContains(t, strings.ToLower(prompts[1]), adj)
		assert.NotContains(t, strings.ToLower(prompts[2]), adj)
	}
	assert.NotContains(t, prompts[2], "machinery")
}
