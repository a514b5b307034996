// Package sanitize strips markup from user-generated text before it is
// stored. Plain fields (names, titles, room labels) allow no markup at
// all; body fields (posts, answers, messages, bios) keep the formatting
// subset bluemonday considers safe for user-generated content.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict = bluemonday.StrictPolicy()
	ugc    = bluemonday.UGCPolicy()
)

// Text removes all markup and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Body keeps safe formatting markup and trims surrounding whitespace.
func Body(s string) string {
	return strings.TrimSpace(ugc.Sanitize(s))
}

// Slice applies Text to every element, dropping entries that end up empty.
func Slice(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := Text(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
