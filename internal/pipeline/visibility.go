package pipeline

import "github.com/nrois/readably/internal/dom"

// unlikelyRoles are removed outright regardless of any other attribute
// (spec §4.1, second pass).
var unlikelyRoles = map[string]bool{
	"navigation":   true,
	"menubar":      true,
	"complementary": true,
	"dialog":       true,
	"alertdialog":  true,
}

// hiddenRoles are consulted in the first, attribute-combining pass
// (spec §4.1, first pass). They overlap unlikelyRoles; "menu" appears only
// here.
var hiddenRoles = map[string]bool{
	"navigation":   true,
	"menu":         true,
	"complementary": true,
}

// FilterVisibilityAndRole removes, in order, elements whose role marks them
// as chrome, then elements the user would never see (spec §4.1). It walks
// the whole document once per pass, collecting matches before removing them
// so that mutation never invalidates the walk (spec §9).
func FilterVisibilityAndRole(doc *dom.Document) {
	removeByRole(doc)
	removeByVisibility(doc)
}

func removeByRole(doc *dom.Document) {
	for _, e := range doc.Query("*") {
		if role, ok := e.Attr("role"); ok && unlikelyRoles[role] {
			e.Remove()
		}
	}
}

func removeByVisibility(doc *dom.Document) {
	for _, e := range doc.Query("*") {
		if isHidden(e) {
			e.Remove()
		}
	}
}

func isHidden(e dom.Element) bool {
	if _, ok := e.Attr("hidden"); ok {
		return true
	}
	if style, ok := e.Attr("style"); ok && styleHidesElement(style) {
		return true
	}
	if ariaHidden, ok := e.Attr("aria-hidden"); ok && ariaHidden == "true" {
		return true
	}
	if role, ok := e.Attr("role"); ok && hiddenRoles[role] {
		return true
	}
	return false
}
