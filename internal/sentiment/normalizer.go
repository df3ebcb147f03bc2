package sentiment

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	punctRe      = regexp.MustCompile(`[^\w\s.!?]`)
)

// Normalize lowercases text, collapses whitespace runs to a single space
// and strips everything except word characters, whitespace and basic
// punctuation. It always succeeds; empty input yields empty output.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = punctRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
