package pipeline

import (
	"strings"

	"github.com/nrois/readably/internal/dom"
)

// Render serializes the merged container to HTML and plain text, and
// estimates the reading time from the plain text (spec §4.8).
//
// content is the outer-HTML serialization of container; text is the
// concatenated descendant text; readingMinutes is max(1, word_count/200)
// when text is non-empty, and 0 (absent) otherwise (spec §3 invariant:
// "text non-empty iff estimated_reading_time present").
func Render(container dom.Element) (content, text string, readingMinutes int) {
	content = container.OuterHTML()
	text = strings.TrimSpace(container.Text())
	if text == "" {
		return content, "", 0
	}
	minutes := wordCount(text) / 200
	if minutes < 1 {
		minutes = 1
	}
	return content, text, minutes
}
