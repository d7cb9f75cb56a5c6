package pipeline

import (
	"strings"

	"github.com/nrois/readably/internal/dom"
)

// StripNoise runs the three post-merge noise-removal passes over the
// merged container (spec §4.5). Each pass snapshots its selector match in
// document order, then removes in reverse order so that removing a parent
// never invalidates remaining removals in the same pass (spec §9).
func StripNoise(container dom.Element) {
	stripShareAndComment(container)
	stripHighLinkDensityBlocks(container)
	stripNoiseMarkers(container)
}

// stripShareAndComment removes elements whose class, id, or aria-label
// matches the share/comment regex, or whose aria-label contains "share"
// (spec §4.5 step 1).
func stripShareAndComment(container dom.Element) {
	all := container.Find("*")
	for i := len(all) - 1; i >= 0; i-- {
		e := all[i]
		class := e.ClassName()
		id := e.ID()
		ariaLabel, _ := e.Attr("aria-label")
		if RegexpShareOrComment.MatchString(class) ||
			RegexpShareOrComment.MatchString(id) ||
			RegexpShareOrComment.MatchString(ariaLabel) ||
			strings.Contains(strings.ToLower(ariaLabel), "share") {
			e.Remove()
		}
	}
}

// stripHighLinkDensityBlocks removes high-link-density utility blocks among
// ul/ol/nav/section/div elements (spec §4.5 step 2). Its exact-ad-label
// branch never fires with the current AdExactLabels: every label is shorter
// than the 20-character floor checked first. A div holding only such a label
// is removed by stripNoiseMarkers instead.
func stripHighLinkDensityBlocks(container dom.Element) {
	matches := container.Find("ul, ol, nav, section, div")
	for i := len(matches) - 1; i >= 0; i-- {
		e := matches[i]
		text := strings.TrimSpace(e.Text())
		l := len(text)
		if l < 20 {
			continue
		}
		if l < 80 && AdExactLabels[strings.ToLower(text)] {
			e.Remove()
			continue
		}
		d := linkDensity(e)
		anchorCount := len(e.Find("a"))
		if d > 0.6 && (l < 500 || anchorCount >= 5) {
			e.Remove()
			continue
		}
		if containsAny(strings.ToLower(text), RelatedPhrases) && d > 0.3 && l < 800 {
			e.Remove()
		}
	}
}

// stripNoiseMarkers removes headings/paragraphs/divs whose trimmed
// lowercased text exactly matches or begins with a known noise label, and
// removes the immediately following link-heavy list/section/div sibling
// when it qualifies (spec §4.5 step 3).
func stripNoiseMarkers(container dom.Element) {
	matches := container.Find("h1, h2, h3, h4, h5, h6, p, div")
	for i := len(matches) - 1; i >= 0; i-- {
		e := matches[i]
		text := strings.ToLower(strings.TrimSpace(e.Text()))
		if !isNoiseMarkerLabel(text) {
			continue
		}
		sibling, hasSibling := e.NextSibling()
		if hasSibling && isNoiseSibling(sibling) {
			sibling.Remove()
		}
		e.Remove()
	}
}

func isNoiseMarkerLabel(text string) bool {
	for _, label := range NoiseMarkerLabels {
		if text == label || strings.HasPrefix(text, label) {
			return true
		}
	}
	return false
}

var noiseSiblingTags = map[string]bool{"ul": true, "ol": true, "section": true, "div": true}

func isNoiseSibling(e dom.Element) bool {
	if !noiseSiblingTags[e.TagName()] {
		return false
	}
	return linkDensity(e) > 0.4 && textLength(e) < 800
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

