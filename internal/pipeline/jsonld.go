package pipeline

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// StructuredData is the subset of a JSON-LD article object the metadata
// extractor consults (spec §4.6).
type StructuredData struct {
	Title         string
	Description   string
	Author        string
	DatePublished string
	Image         string
	Keywords      []string
}

// ExtractStructuredData parses every script[type='application/ld+json']
// body in scriptBodies, recursively searching (including through @graph, depth
// capped at MaxJSONDepth per spec §9) for the first object whose @type
// case-insensitively contains "article" or "blogposting", and returns the
// fields extracted from it. ok is false when no such object is found or no
// body parses as JSON — malformed or absent structured data degrades to
// "field absent" (spec §7), never an error.
func ExtractStructuredData(scriptBodies []string) (StructuredData, bool) {
	for _, body := range scriptBodies {
		body = strings.TrimSpace(body)
		body = strings.TrimPrefix(body, "<![CDATA[")
		body = strings.TrimSuffix(body, "]]>")

		var doc any
		if err := json.UnmarshalFromString(body, &doc); err != nil {
			continue
		}
		if obj, ok := findArticleObject(doc, 0); ok {
			return fieldsFromObject(obj), true
		}
	}
	return StructuredData{}, false
}

// findArticleObject recursively searches v (a decoded JSON value) for an
// object whose @type matches RegexpJSONLDArticleType, descending into
// @graph arrays and, as a fallback, any nested array/object.
func findArticleObject(v any, depth int) (map[string]any, bool) {
	if depth > MaxJSONDepth {
		return nil, false
	}
	switch node := v.(type) {
	case map[string]any:
		if isArticleType(node["@type"]) {
			return node, true
		}
		if graph, ok := node["@graph"]; ok {
			if obj, ok := findArticleObject(graph, depth+1); ok {
				return obj, true
			}
		}
		for key, val := range node {
			if key == "@graph" {
				continue
			}
			if obj, ok := findArticleObject(val, depth+1); ok {
				return obj, true
			}
		}
	case []any:
		for _, item := range node {
			if obj, ok := findArticleObject(item, depth+1); ok {
				return obj, true
			}
		}
	}
	return nil, false
}

func isArticleType(v any) bool {
	switch t := v.(type) {
	case string:
		return RegexpJSONLDArticleType.MatchString(t)
	case []any:
		for _, item := range t {
			if isArticleType(item) {
				return true
			}
		}
	}
	return false
}

func fieldsFromObject(obj map[string]any) StructuredData {
	var d StructuredData
	d.Title = firstNonEmptyString(obj["headline"], obj["name"])
	d.Description, _ = obj["description"].(string)
	d.Author = stringFromAuthor(obj["author"])
	d.DatePublished = firstNonEmptyString(obj["datePublished"], obj["dateCreated"])
	d.Image = stringFromImage(obj["image"])
	d.Keywords = keywordsFromField(obj["keywords"])
	return d
}

func firstNonEmptyString(vals ...any) string {
	for _, v := range vals {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func stringFromAuthor(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if name, ok := t["name"].(string); ok {
			return name
		}
	case []any:
		for _, item := range t {
			if s := stringFromAuthor(item); s != "" {
				return s
			}
		}
	}
	return ""
}

func stringFromImage(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if url, ok := t["url"].(string); ok {
			return url
		}
	case []any:
		for _, item := range t {
			if s := stringFromImage(item); s != "" {
				return s
			}
		}
	}
	return ""
}

func keywordsFromField(v any) []string {
	switch t := v.(type) {
	case []any:
		var out []string
		for _, item := range t {
			if s, ok := item.(string); ok {
				s = strings.TrimSpace(s)
				if s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	case string:
		return splitKeywords(t)
	}
	return nil
}

// splitKeywords comma-splits, trims, and drops empty keyword entries
// (spec §3 invariant, §4.6).
func splitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
