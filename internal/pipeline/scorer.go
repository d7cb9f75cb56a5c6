package pipeline

import (
	"math"
	"strings"

	"github.com/nrois/readably/internal/dom"
)

// tagBaseScore is the per-tag base delta from spec §4.3 step 2.
var tagBaseScore = map[string]float64{
	"article": 15,
	"main":    12,
	"section": 4,
	"p":       5,
	"div":     3,
	"ul":      -3,
	"ol":      -3,
	"nav":     -6,
	"h1":      -1,
	"h2":      -1,
	"h3":      -1,
	"h4":      -1,
	"h5":      -1,
	"h6":      -1,
}

// CandidateSelector is the set of tags considered for top-level scoring
// (spec §4.3, GLOSSARY "Candidate element").
const CandidateSelector = "article, div, section, p"

// scoreElement implements spec §4.3 steps 2–6 for a single element that
// has already passed the minimum-text-length gate (step 1).
func scoreElement(e dom.Element, weightClasses bool) float64 {
	score := tagBaseScore[e.TagName()]

	if weightClasses {
		class := strings.ToLower(e.ClassName())
		if strings.Contains(class, "article") {
			score += 10
		}
		if strings.Contains(class, "comment") {
			score -= 10
		}
	}

	text := e.Text()
	score += float64(strings.Count(text, ","))

	length := textLength(e)
	score += math.Min(math.Floor(float64(length)/100), 3)

	score *= 1 - linkDensity(e)

	return score
}

// FindTopCandidate returns the candidate element with the strictly
// greatest content score, document order breaking ties in favor of the
// earlier element (spec §4.3: "the scorer updates only on strict
// greater-than"). ok is false when no candidate scores above 0, or when
// the document has no candidate with text length >= MinCandidateTextLength.
func FindTopCandidate(doc *dom.Document, weightClasses bool) (top dom.Element, score float64, ok bool) {
	best := math.Inf(-1)
	for _, e := range doc.Query(CandidateSelector) {
		if textLength(e) < MinCandidateTextLength {
			continue
		}
		s := scoreElement(e, weightClasses)
		if s > best {
			best = s
			top = e
			ok = true
		}
	}
	if !ok || best <= 0 {
		return dom.Element{}, 0, false
	}
	return top, best, true
}
