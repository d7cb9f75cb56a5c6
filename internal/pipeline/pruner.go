package pipeline

import (
	"strings"

	"github.com/nrois/readably/internal/dom"
)

// PruneSelectors removes every element matching the fixed non-content
// selector list (spec §4.2, §6), then every short-text anchor (trimmed
// text length in the open interval (0, 20)). Both passes snapshot their
// matches before removing anything, so removing a parent never
// invalidates the walk over its former children (spec §9).
func PruneSelectors(doc *dom.Document) {
	for _, e := range doc.Query(PrunerSelector) {
		e.Remove()
	}
	pruneShortLinks(doc)
}

func pruneShortLinks(doc *dom.Document) {
	var toRemove []dom.Element
	for _, a := range doc.Query("a") {
		n := len(strings.TrimSpace(a.Text()))
		if n > 0 && n < ShortLinkMaxLength {
			toRemove = append(toRemove, a)
		}
	}
	for _, a := range toRemove {
		a.Remove()
	}
}
