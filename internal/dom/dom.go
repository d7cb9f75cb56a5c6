// Package dom wraps goquery behind the narrow capability the rest of the
// engine is written against: parse, CSS-selector query, and per-element
// attribute/text/child/sibling access. Nothing outside this package touches
// *goquery.Selection or *html.Node directly.
package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed HTML document that can be queried by CSS selector.
type Document struct {
	gq *goquery.Document
}

// Parse parses raw HTML bytes into a Document.
func Parse(htmlStr string) (*Document, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{gq: gq}, nil
}

// Root returns the document node itself, the parent of <html>; Find on it
// searches the whole document.
func (d *Document) Root() Element {
	return Element{sel: d.gq.Selection}
}

// Query returns every element in document order matching the given CSS
// selector. An invalid selector yields a nil slice rather than a panic or
// error — selector failures degrade to "nothing found".
func (d *Document) Query(selector string) (out []Element) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()
	d.gq.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, Element{sel: s})
	})
	return out
}

// QueryOne returns the first element matching selector, if any.
func (d *Document) QueryOne(selector string) (Element, bool) {
	matches := d.Query(selector)
	if len(matches) == 0 {
		return Element{}, false
	}
	return matches[0], true
}

// NewElement creates a detached element with the given tag name, not yet
// attached anywhere in the document. Used by the sibling merger to build
// the synthetic "readability-content" container.
func (d *Document) NewElement(tagName string) Element {
	node := &html.Node{
		Type: html.ElementNode,
		Data: strings.ToLower(tagName),
	}
	return Element{sel: goquery.NewDocumentFromNode(node).Selection}
}

// Element is a single DOM element. The zero value is not usable; Elements
// are produced by Document/Element query methods.
type Element struct {
	sel *goquery.Selection
}

// Valid reports whether e wraps an actual node.
func (e Element) Valid() bool {
	return e.sel != nil && e.sel.Length() > 0 && e.sel.Get(0) != nil
}

// TagName returns the lowercased tag name, e.g. "div", "article".
func (e Element) TagName() string {
	if !e.Valid() {
		return ""
	}
	return strings.ToLower(goquery.NodeName(e.sel))
}

// Attr returns the named attribute's value and whether it was present.
func (e Element) Attr(name string) (string, bool) {
	if !e.Valid() {
		return "", false
	}
	return e.sel.Attr(name)
}

// ID returns the element's id attribute, or "".
func (e Element) ID() string {
	v, _ := e.Attr("id")
	return v
}

// ClassName returns the element's raw class attribute string, or "".
func (e Element) ClassName() string {
	v, _ := e.Attr("class")
	return v
}

// Children returns the element's direct element children, in document order.
func (e Element) Children() []Element {
	if !e.Valid() {
		return nil
	}
	var out []Element
	e.sel.Children().Each(func(_ int, s *goquery.Selection) {
		out = append(out, Element{sel: s})
	})
	return out
}

// Parent returns the element's parent, if any.
func (e Element) Parent() (Element, bool) {
	if !e.Valid() {
		return Element{}, false
	}
	p := e.sel.Parent()
	if p.Length() == 0 {
		return Element{}, false
	}
	return Element{sel: p}, true
}

// NextSibling returns the next sibling element (skipping text nodes), if any.
func (e Element) NextSibling() (Element, bool) {
	if !e.Valid() {
		return Element{}, false
	}
	n := e.sel.Next()
	if n.Length() == 0 {
		return Element{}, false
	}
	return Element{sel: n}, true
}

// Text returns the concatenated text of the element and all its descendants.
func (e Element) Text() string {
	if !e.Valid() {
		return ""
	}
	return e.sel.Text()
}

// OuterHTML serializes the element, including its own tag, to HTML.
func (e Element) OuterHTML() string {
	if !e.Valid() {
		return ""
	}
	out, err := goquery.OuterHtml(e.sel)
	if err != nil {
		return ""
	}
	return out
}

// Find returns descendants matching selector, in document order.
func (e Element) Find(selector string) (out []Element) {
	if !e.Valid() {
		return nil
	}
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()
	e.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		out = append(out, Element{sel: s})
	})
	return out
}

// Is reports whether the element itself matches selector.
func (e Element) Is(selector string) (matched bool) {
	if !e.Valid() {
		return false
	}
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	return e.sel.Is(selector)
}

// Append detaches child from its current location (if any) and appends it
// as the last child of e.
func (e Element) Append(child Element) {
	if !e.Valid() || !child.Valid() {
		return
	}
	e.sel.AppendSelection(child.sel)
}

// Remove detaches the element from the document.
func (e Element) Remove() {
	if !e.Valid() {
		return
	}
	e.sel.Remove()
}

// SetAttr sets an attribute on the element.
func (e Element) SetAttr(name, value string) {
	if !e.Valid() {
		return
	}
	e.sel.SetAttr(name, value)
}

// Node exposes the underlying *html.Node for identity comparisons
// (e.g. "is this sibling the same element as the top candidate").
func (e Element) Node() *html.Node {
	if !e.Valid() {
		return nil
	}
	return e.sel.Get(0)
}

// Same reports whether two elements refer to the same underlying node.
func Same(a, b Element) bool {
	return a.Node() != nil && a.Node() == b.Node()
}
