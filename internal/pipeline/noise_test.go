package pipeline

import (
	"strings"
	"testing"

	"github.com/nrois/readably/internal/dom"
)

func TestStripShareAndComment(t *testing.T) {
	html := `<div id="readability-content">
		<p>real content</p>
		<div class="sharedaddy">share this</div>
		<div aria-label="Share on Twitter">share</div>
	</div>`
	doc, _ := dom.Parse(html)
	container, _ := doc.QueryOne("#readability-content")
	StripNoise(container)

	if matches := container.Find(".sharedaddy"); len(matches) != 0 {
		t.Error("sharedaddy widget should be stripped")
	}
	if text := container.Text(); !strings.Contains(text, "real content") {
		t.Error("real content should survive")
	}
}

func TestStripHighLinkDensityBlocks(t *testing.T) {
	longLinks := strings.Repeat(`<a href="#">link text here</a>`, 6)
	html := `<div id="readability-content">
		<p>real paragraph with enough length to survive stripping passes here.</p>
		<div>` + longLinks + `</div>
	</div>`
	doc, _ := dom.Parse(html)
	container, _ := doc.QueryOne("#readability-content")
	StripNoise(container)

	if text := container.Text(); strings.Contains(text, "link text here") {
		t.Error("high-link-density div should have been stripped")
	}
}

func TestStripNoiseRemovesExactAdLabelDiv(t *testing.T) {
	// "Advertisement" is 13 characters, under the 20-character floor of the
	// link-density pass, so it is the noise-marker pass that removes it.
	html := `<div id="readability-content">
		<p>a real paragraph of sufficient length to remain after stripping.</p>
		<div>Advertisement</div>
	</div>`
	doc, _ := dom.Parse(html)
	container, _ := doc.QueryOne("#readability-content")
	StripNoise(container)

	for _, d := range container.Find("div") {
		if strings.TrimSpace(d.Text()) == "Advertisement" {
			t.Error("exact ad label div should have been stripped")
		}
	}
}

func TestStripNoiseMarkersRemovesMarkerAndLinkySibling(t *testing.T) {
	links := strings.Repeat(`<a href="#">x</a>`, 3)
	html := `<div id="readability-content">
		<p>the real article body, long enough to be kept around here.</p>
		<h3>Related Stories</h3>
		<ul>` + links + `</ul>
	</div>`
	doc, _ := dom.Parse(html)
	container, _ := doc.QueryOne("#readability-content")
	StripNoise(container)

	if matches := container.Find("h3"); len(matches) != 0 {
		t.Error("noise-marker heading should be removed")
	}
	if matches := container.Find("ul"); len(matches) != 0 {
		t.Error("link-heavy sibling following a noise marker should be removed")
	}
}

func TestIsNoiseMarkerLabel(t *testing.T) {
	if !isNoiseMarkerLabel("advertisement") {
		t.Error("exact label should match")
	}
	if !isNoiseMarkerLabel("related stories about this topic") {
		t.Error("prefix match should count")
	}
	if isNoiseMarkerLabel("a real heading") {
		t.Error("unrelated text should not match")
	}
}
