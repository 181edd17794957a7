// Package slug derives stable identifiers from human-written names.
package slug

import (
	"regexp"
	"strings"
)

// nonSlugRe matches everything that is not a lower-case letter, digit,
// whitespace or dash.
var nonSlugRe = regexp.MustCompile(`[^a-z0-9\s-]`)

// whitespaceRe matches runs of whitespace.
var whitespaceRe = regexp.MustCompile(`\s+`)

// multiDash collapses runs of dashes.
var multiDash = regexp.MustCompile(`-{2,}`)

// FromTitle converts a title into a URL-safe id ("Retargeting & Sequencer"
// -> "retargeting-sequencer"). Punctuation is dropped, whitespace becomes a
// dash and dash runs collapse.
func FromTitle(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	if s == "" {
		return ""
	}
	s = nonSlugRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = multiDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Key lower-cases name and replaces each whitespace run with sep. It keeps
// every other character, so "Unreal_Engine_Works" -> "unreal_engine_works"
// and "Demo Reel" -> "demo-reel" with sep "-".
func Key(name string, sep string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return whitespaceRe.ReplaceAllString(s, sep)
}
