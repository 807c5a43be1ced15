// Package visuals acquires one rendered visual per slide: a bounded retry
// ladder against the image-synthesis capability with progressively safer
// prompts, and a procedural shape renderer that guarantees a visual exists
// for every slide even when every external call fails.
package visuals

import (
	"regexp"
	"strings"
)

// SafePrompt is the content-independent final rung of the retry ladder.
// Image back-ends reject certain prompt vocabulary unpredictably; this
// prompt avoids everything that has been observed to trip filters.
const SafePrompt = "A clean flat illustration for a business presentation, " +
	"simple geometric shapes, professional color palette, minimal design, " +
	"white background, no text, no watermark, no people, corporate style"

// heavyAdjectives are stripped on the second attempt. Multi-word entries
// come first so "highly detailed" is removed before "detailed" matches.
var heavyAdjectives = []string{
	"highly detailed",
	"ultra-realistic",
	"hyper-realistic",
	"photorealistic",
	"detailed",
	"intricate",
	"elaborate",
	"complex",
	"sophisticated",
}

var (
	adjectivePatterns = compileAdjectivePatterns()
	whitespaceRun     = regexp.MustCompile(`\s{2,}`)
)

func compileAdjectivePatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(heavyAdjectives))
	for _, adj := range heavyAdjectives {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(adj)))
	}
	return patterns
}

// BuildRetryPrompts returns the three prompt variants of the retry ladder:
//  1. the original prompt, unmodified
//  2. the original with heavy adjectives removed, whitespace collapsed,
//     and minimal-style / no-text safety suffixes appended when absent
//  3. the fixed ultra-safe prompt
func BuildRetryPrompts(original string) []string {
	shortened := original
	for _, re := range adjectivePatterns {
		shortened = re.ReplaceAllString(shortened, "")
	}
	shortened = strings.TrimSpace(whitespaceRun.ReplaceAllString(shortened, " "))

	if !strings.Contains(strings.ToLower(shortened), "minimal") {
		shortened += ", minimal style"
	}
	if !strings.Contains(strings.ToLower(shortened), "no text") {
		shortened += ", no text"
	}

	return []string{original, shortened, SafePrompt}
}
