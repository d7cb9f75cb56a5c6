package pipeline

import (
	"strings"

	"github.com/nrois/readably/internal/dom"
)

// ExtractComments walks the original (pre-merge) document for comment-
// shaped nodes and deduplicates them (spec §4.7). It never errors: a
// selector ladder that matches nothing simply yields no comments.
func ExtractComments(doc *dom.Document) []Comment {
	nodes := selectCommentNodes(doc)

	seen := make(map[string]bool, len(nodes))
	var out []Comment
	for _, node := range nodes {
		c, ok := commentFromNode(node)
		if !ok {
			continue
		}
		key := c.Author + "|" + c.Date + "|" + c.Content
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
		if len(out) >= MaxComments {
			break
		}
	}
	return out
}

// Comment mirrors the package-level readably.Comment shape without
// importing the root package (which would create an import cycle).
type Comment struct {
	Author  string
	Date    string
	Content string
}

func selectCommentNodes(doc *dom.Document) []dom.Element {
	if nodes := doc.Query(strings.Join(CommentPrimarySelectors, ", ")); len(nodes) > 0 {
		return nodes
	}
	if nodes := doc.Query(strings.Join(CommentSecondarySelectors, ", ")); len(nodes) > 0 {
		return nodes
	}
	return doc.Query(CommentFallbackSelector)
}

func commentFromNode(e dom.Element) (Comment, bool) {
	content := commentContent(e)
	if len(content) < 20 {
		return Comment{}, false
	}
	return Comment{
		Author:  commentAuthor(e),
		Date:    commentDate(e),
		Content: content,
	}, true
}

func commentContent(e dom.Element) string {
	var parts []string
	for _, d := range e.Find(CommentContentSelector) {
		if t := strings.TrimSpace(d.Text()); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// commentAuthor looks for the first matching author element and returns
// its text, defaulting to "Anonymous" whether the selector matched
// nothing or matched an element with no usable text — the source
// behavior this spec retains (spec §9).
func commentAuthor(e dom.Element) string {
	matches := e.Find(CommentAuthorSelector)
	if len(matches) > 0 {
		if text := strings.TrimSpace(matches[0].Text()); text != "" {
			return text
		}
	}
	return "Anonymous"
}

func commentDate(e dom.Element) string {
	matches := e.Find(CommentDateSelector)
	if len(matches) == 0 {
		return ""
	}
	if v, ok := matches[0].Attr("datetime"); ok && v != "" {
		return v
	}
	return ""
}
