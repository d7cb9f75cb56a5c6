package pipeline

import (
	"testing"

	"github.com/nrois/readably/internal/dom"
)

func TestExtractMetadataPrefersMetaTagsOverFallback(t *testing.T) {
	html := `<html><head>
		<title>Home</title>
		<meta property="og:title" content="The Actual Title">
		<meta name="description" content="A fine description of the article.">
		<meta name="author" content="Jane Doe">
		<meta property="article:published_time" content="2026-03-01T00:00:00Z">
		<meta name="keywords" content="alpha, beta, ">
	</head><body><h1>Fallback Heading</h1><p>para</p></body></html>`
	doc, _ := dom.Parse(html)
	m := ExtractMetadata(doc)

	if m.Title != "The Actual Title" {
		t.Errorf("Title = %q", m.Title)
	}
	if m.Description != "A fine description of the article." {
		t.Errorf("Description = %q", m.Description)
	}
	if m.Author != "Jane Doe" {
		t.Errorf("Author = %q", m.Author)
	}
	if m.DatePublished != "2026-03-01T00:00:00Z" {
		t.Errorf("DatePublished = %q", m.DatePublished)
	}
	if len(m.Keywords) != 2 || m.Keywords[0] != "alpha" || m.Keywords[1] != "beta" {
		t.Errorf("Keywords = %v", m.Keywords)
	}
}

func TestExtractMetadataTitleFallsBackToH1WhenGeneric(t *testing.T) {
	html := `<html><head><title>Home</title></head><body><h1>Real Article Title</h1></body></html>`
	doc, _ := dom.Parse(html)
	m := ExtractMetadata(doc)
	if m.Title != "Real Article Title" {
		t.Errorf("Title = %q, want rescue to h1", m.Title)
	}
}

func TestExtractMetadataDescriptionFallsBackToFirstLongParagraph(t *testing.T) {
	html := `<html><body><p>short</p><p>this paragraph is long enough to qualify as a description fallback.</p></body></html>`
	doc, _ := dom.Parse(html)
	m := ExtractMetadata(doc)
	if m.Description == "" {
		t.Fatal("expected a description fallback")
	}
}

func TestExtractMetadataAuthorDOMFallback(t *testing.T) {
	html := `<html><body><span class="byline">By John Smith</span></body></html>`
	doc, _ := dom.Parse(html)
	m := ExtractMetadata(doc)
	if m.Author != "By John Smith" {
		t.Errorf("Author = %q", m.Author)
	}
}

func TestExtractMetadataDateNormalizedToRFC3339(t *testing.T) {
	html := `<html><head><meta name="date" content="March 1, 2026"></head><body></body></html>`
	doc, _ := dom.Parse(html)
	m := ExtractMetadata(doc)
	if m.DatePublished != "2026-03-01T00:00:00Z" {
		t.Errorf("DatePublished = %q, want normalized RFC3339", m.DatePublished)
	}
}

func TestExtractMetadataUnparseableDateKeptVerbatim(t *testing.T) {
	html := `<html><head><meta name="date" content="not-a-real-date"></head><body></body></html>`
	doc, _ := dom.Parse(html)
	m := ExtractMetadata(doc)
	if m.DatePublished != "not-a-real-date" {
		t.Errorf("DatePublished = %q, want raw string kept on parse failure", m.DatePublished)
	}
}

func TestExtractMetadataTopImageFallback(t *testing.T) {
	html := `<html><body><img data-src="https://example.com/a.jpg"></body></html>`
	doc, _ := dom.Parse(html)
	m := ExtractMetadata(doc)
	if m.TopImage != "https://example.com/a.jpg" {
		t.Errorf("TopImage = %q", m.TopImage)
	}
}

func TestFirstSrcsetURL(t *testing.T) {
	got := firstSrcsetURL("https://example.com/a.jpg 1x, https://example.com/b.jpg 2x")
	if got != "https://example.com/a.jpg" {
		t.Errorf("firstSrcsetURL = %q", got)
	}
}
