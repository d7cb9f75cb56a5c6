package pipeline

import (
	"regexp"
	"strings"

	"github.com/nrois/readably/internal/dom"
)

// regexpNormalizeSpace collapses runs of whitespace, matching the
// teacher's RegexpNormalize.
var regexpNormalizeSpace = regexp.MustCompile(`\s+`)

// normalizeSpace trims and collapses internal whitespace.
func normalizeSpace(s string) string {
	return strings.TrimSpace(regexpNormalizeSpace.ReplaceAllString(s, " "))
}

// textLength is len(strings.TrimSpace(e.Text())), the length measure used
// throughout the scorer, merger, and noise stripper (spec §4.3–§4.5).
func textLength(e dom.Element) int {
	return len(strings.TrimSpace(e.Text()))
}

// linkDensity is the ratio of descendant anchor text to total element
// text, 0 when the element has no text (spec §4.3 step 6, §4.4, §4.5).
func linkDensity(e dom.Element) float64 {
	total := textLength(e)
	if total == 0 {
		return 0
	}
	var linkChars int
	for _, a := range e.Find("a") {
		linkChars += len(strings.TrimSpace(a.Text()))
	}
	return float64(linkChars) / float64(total)
}

// containsInlineMedia reports whether selector "img, picture img" matches
// a descendant of e (spec §4.4 step 3's M).
func containsInlineMedia(e dom.Element) bool {
	if len(e.Find("img")) > 0 {
		return true
	}
	for _, pic := range e.Find("picture") {
		if len(pic.Find("img")) > 0 {
			return true
		}
	}
	return false
}

// styleHidesElement reports whether a (lowercased) inline style string
// contains display:none or visibility:hidden, with or without a space
// after the colon (spec §4.1).
func styleHidesElement(style string) bool {
	s := strings.ToLower(style)
	s = strings.ReplaceAll(s, " ", "")
	return strings.Contains(s, "display:none") || strings.Contains(s, "visibility:hidden")
}

// wordCount splits text on non-letter boundaries (Unicode letter class),
// per spec §4.8.
var regexpWord = regexp.MustCompile(`\p{L}+`)

func wordCount(text string) int {
	return len(regexpWord.FindAllString(text, -1))
}
