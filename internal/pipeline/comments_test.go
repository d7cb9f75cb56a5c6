package pipeline

import (
	"strconv"
	"testing"

	"github.com/nrois/readably/internal/dom"
)

func TestExtractCommentsPrimarySelector(t *testing.T) {
	html := `<div class="comments">
		<div class="comment">
			<span class="comment-author">Alice</span>
			<time datetime="2026-01-01T00:00:00Z"></time>
			<div class="comment-content">This is a perfectly good comment body.</div>
		</div>
	</div>`
	doc, _ := dom.Parse(html)
	comments := ExtractComments(doc)
	if len(comments) != 1 {
		t.Fatalf("got %d comments, want 1", len(comments))
	}
	if comments[0].Author != "Alice" {
		t.Errorf("Author = %q", comments[0].Author)
	}
	if comments[0].Date != "2026-01-01T00:00:00Z" {
		t.Errorf("Date = %q", comments[0].Date)
	}
}

func TestExtractCommentsDefaultsAuthorToAnonymous(t *testing.T) {
	html := `<div class="comment">
		<div class="comment-content">A comment with no named author at all here.</div>
	</div>`
	doc, _ := dom.Parse(html)
	comments := ExtractComments(doc)
	if len(comments) != 1 {
		t.Fatalf("got %d comments, want 1", len(comments))
	}
	if comments[0].Author != "Anonymous" {
		t.Errorf("Author = %q, want Anonymous", comments[0].Author)
	}
}

func TestExtractCommentsDropsTooShort(t *testing.T) {
	html := `<div class="comment"><div class="comment-content">short</div></div>`
	doc, _ := dom.Parse(html)
	if comments := ExtractComments(doc); len(comments) != 0 {
		t.Errorf("expected short comment to be dropped, got %d", len(comments))
	}
}

func TestExtractCommentsDeduplicates(t *testing.T) {
	html := `
		<div class="comment"><div class="comment-content">The exact same comment text twice over.</div></div>
		<div class="comment"><div class="comment-content">The exact same comment text twice over.</div></div>
	`
	doc, _ := dom.Parse(html)
	comments := ExtractComments(doc)
	if len(comments) != 1 {
		t.Errorf("expected duplicates to be collapsed, got %d", len(comments))
	}
}

func TestExtractCommentsRespectsMaxComments(t *testing.T) {
	html := "<div>"
	for i := 0; i < MaxComments+10; i++ {
		html += `<div class="comment"><div class="comment-content">Comment number ` + strconv.Itoa(i) + ` with enough length to pass the minimum threshold check.</div></div>`
	}
	html += "</div>"
	doc, _ := dom.Parse(html)
	comments := ExtractComments(doc)
	if len(comments) > MaxComments {
		t.Errorf("got %d comments, want at most %d", len(comments), MaxComments)
	}
}
