package pipeline

import "github.com/nrois/readably/internal/dom"

// MergeSiblings wraps top in a fresh "readability-content" container and
// appends sibling elements of top's original parent that pass the
// text-length-or-media and link-density gates (spec §4.4). It returns the
// container, which is now the sole owner of top (and of any siblings
// selected).
func MergeSiblings(doc *dom.Document, top dom.Element) dom.Element {
	container := doc.NewElement("div")
	container.SetAttr("id", ReadabilityContentID)

	parent, hasParent := top.Parent()
	var siblings []dom.Element
	if hasParent {
		siblings = parent.Children()
	}

	container.Append(top)

	for _, s := range siblings {
		if dom.Same(s, top) {
			continue
		}
		l := textLength(s)
		m := containsInlineMedia(s)
		d := linkDensity(s)
		if (l >= MinSiblingTextLength || m) && (d < SiblingLinkDensityThreshold || m) {
			container.Append(s)
		}
	}

	return container
}
