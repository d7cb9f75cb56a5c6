package pipeline

import (
	"strings"

	"github.com/araddon/dateparse"
	"github.com/nrois/readably/internal/dom"
)

// genericTitles are <title> values rescued in favor of the page's first
// <h1> when that heading has text, per spec §4.6 and the boundary behavior in spec §8.
var genericTitles = map[string]bool{
	"home": true, "menu": true, "index": true, "untitled": true, "page not found": true,
}

// Metadata is the result of the full metadata-extraction chain: structured
// data, then meta-tag fallbacks, then DOM fallbacks (spec §4.6).
type Metadata struct {
	Title         string
	Description   string
	Author        string
	DatePublished string
	Keywords      []string
	TopImage      string
	TopVideo      string
}

// ExtractMetadata runs the full chain described in spec §4.6 against the
// pre-merge document. It never fails: every field independently falls back
// to "absent" (empty string / nil slice) rather than erroring.
func ExtractMetadata(doc *dom.Document) Metadata {
	sd, _ := ExtractStructuredData(scriptLDJSONBodies(doc))

	var m Metadata
	m.Title = firstNonEmpty(sd.Title, metaContent(doc, TitleMetaSelectors))
	if m.Title == "" {
		m.Title = titleFallback(doc)
	}

	m.Description = firstNonEmpty(sd.Description, metaContent(doc, DescriptionMetaSelectors))
	if m.Description == "" {
		m.Description = descriptionFallback(doc)
	}

	m.Author = firstNonEmpty(sd.Author, metaContent(doc, AuthorMetaSelectors))
	if m.Author == "" {
		m.Author = authorFallback(doc)
	}

	m.DatePublished = firstNonEmpty(sd.DatePublished, metaContent(doc, DateMetaSelectors))
	if m.DatePublished == "" {
		m.DatePublished = dateFallback(doc)
	}
	m.DatePublished = normalizeDate(m.DatePublished)

	if len(sd.Keywords) > 0 {
		m.Keywords = sd.Keywords
	} else if raw := metaContent(doc, KeywordsMetaSelectors); raw != "" {
		m.Keywords = splitKeywords(raw)
	}

	m.TopImage = firstNonEmpty(sd.Image, metaContent(doc, []string{
		"meta[property='og:image']", "meta[name='twitter:image']", "meta[property='og:image:url']",
	}))
	if m.TopImage == "" {
		m.TopImage = topImageFallback(doc)
	}

	m.TopVideo = metaContent(doc, []string{"meta[property='og:video:url']"})

	return m
}

func scriptLDJSONBodies(doc *dom.Document) []string {
	var out []string
	for _, s := range doc.Query("script[type='application/ld+json']") {
		out = append(out, s.Text())
	}
	return out
}

// metaContent returns the content attribute of the first matching
// selector in the ladder, skipping selectors whose content is empty.
func metaContent(doc *dom.Document, selectors []string) string {
	for _, sel := range selectors {
		if e, ok := doc.QueryOne(sel); ok {
			if content, has := e.Attr("content"); has && content != "" {
				return content
			}
		}
	}
	return ""
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func titleFallback(doc *dom.Document) string {
	title := ""
	if e, ok := doc.QueryOne("title"); ok {
		title = strings.TrimSpace(e.Text())
	}
	if genericTitles[strings.ToLower(title)] {
		if h1, ok := doc.QueryOne("h1"); ok {
			if h1Text := strings.TrimSpace(h1.Text()); h1Text != "" {
				return h1Text
			}
		}
	}
	return title
}

func descriptionFallback(doc *dom.Document) string {
	for _, p := range doc.Query("p") {
		text := strings.TrimSpace(p.Text())
		if len(text) > 40 {
			return text
		}
	}
	return ""
}

func authorFallback(doc *dom.Document) string {
	if e, ok := doc.QueryOne(AuthorDOMSelector); ok {
		return strings.TrimSpace(e.Text())
	}
	return ""
}

func dateFallback(doc *dom.Document) string {
	if e, ok := doc.QueryOne("time[datetime]"); ok {
		if v, ok := e.Attr("datetime"); ok && v != "" {
			return v
		}
	}
	if e, ok := doc.QueryOne("time"); ok {
		return strings.TrimSpace(e.Text())
	}
	return ""
}

// topImageFallback finds the first <img> in the body and resolves its URL
// from src/data-src/data-original/data-lazy-src/data-srcset, taking the
// first URL of a srcset (spec §4.6).
func topImageFallback(doc *dom.Document) string {
	body, ok := doc.QueryOne("body")
	if !ok {
		body = doc.Root()
	}
	for _, img := range body.Find("img") {
		for _, attr := range ImageSrcAttributes {
			v, has := img.Attr(attr)
			if !has || v == "" {
				continue
			}
			if attr == "data-srcset" {
				v = firstSrcsetURL(v)
			}
			if v != "" {
				return v
			}
		}
	}
	return ""
}

func firstSrcsetURL(srcset string) string {
	first := strings.Split(strings.TrimSpace(srcset), ",")[0]
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// normalizeDate attempts to parse raw with dateparse and, on success,
// canonicalizes it to RFC3339. Parse failure keeps the raw string
// verbatim — this is a best-effort smoothing pass, not validation.
func normalizeDate(raw string) string {
	if raw == "" {
		return raw
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02T15:04:05Z07:00")
}
