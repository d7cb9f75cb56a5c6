package pipeline

import (
	"testing"

	"github.com/nrois/readably/internal/dom"
)

func TestNormalizeSpace(t *testing.T) {
	got := normalizeSpace("  a   b\n\tc  ")
	if got != "a b c" {
		t.Errorf("normalizeSpace = %q, want %q", got, "a b c")
	}
}

func TestLinkDensity(t *testing.T) {
	doc, _ := dom.Parse(`<p>0123456789<a href="#">abcde</a></p>`)
	e, _ := doc.QueryOne("p")
	// total text = "0123456789abcde" = 15 chars, link text = "abcde" = 5 chars
	got := linkDensity(e)
	want := 5.0 / 15.0
	if got != want {
		t.Errorf("linkDensity = %v, want %v", got, want)
	}
}

func TestLinkDensityEmptyElement(t *testing.T) {
	doc, _ := dom.Parse(`<p></p>`)
	e, _ := doc.QueryOne("p")
	if got := linkDensity(e); got != 0 {
		t.Errorf("linkDensity of empty element = %v, want 0", got)
	}
}

func TestContainsInlineMedia(t *testing.T) {
	doc, _ := dom.Parse(`<div><p>text</p><picture><img src="x.jpg"></picture></div>`)
	e, _ := doc.QueryOne("div")
	if !containsInlineMedia(e) {
		t.Error("expected containsInlineMedia true for picture>img")
	}

	doc2, _ := dom.Parse(`<div><p>no media here</p></div>`)
	e2, _ := doc2.QueryOne("div")
	if containsInlineMedia(e2) {
		t.Error("expected containsInlineMedia false")
	}
}

func TestStyleHidesElement(t *testing.T) {
	cases := map[string]bool{
		"display:none":          true,
		"display: none":         true,
		"color:red;display:none;": true,
		"visibility:hidden":     true,
		"color:red":             false,
		"":                      false,
	}
	for style, want := range cases {
		if got := styleHidesElement(style); got != want {
			t.Errorf("styleHidesElement(%q) = %v, want %v", style, got, want)
		}
	}
}

func TestWordCount(t *testing.T) {
	if got := wordCount("hello, world! this-is fine."); got != 5 {
		t.Errorf("wordCount = %d, want 5", got)
	}
	if got := wordCount(""); got != 0 {
		t.Errorf("wordCount(\"\") = %d, want 0", got)
	}
}
