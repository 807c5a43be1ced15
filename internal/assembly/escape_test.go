package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeXML_EmptyString(t *testing.T) {
	assert.Equal(t, "", EscapeXML(""))
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"No special characters", "plain title", "plain title"},
		{"Ampersand", "R&D roadmap", "R&amp;D roadmap"},
		{"Angle brackets", "<2 weeks>", "&lt;2 weeks&gt;"},
		{"Quotes", `say "go"`, "say &quot;go&quot;"},
		{"Apostrophe", "it's done", "it&apos;s done"},
		{"Multibyte untouched", "課題と効果", "課題と効果"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapeXML(tt.input))
		})
	}
}
