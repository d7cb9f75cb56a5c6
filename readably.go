package readably

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/nrois/readably/internal/dom"
	"github.com/nrois/readably/internal/fetch"
	"github.com/nrois/readably/internal/pipeline"
)

// Readability holds a parsed document ready for extraction. Construct one
// with New or obtain a finished ReadabilityData directly via Parse.
type Readability struct {
	cfg ExtractionConfig

	// doc is pruned eagerly in New (visibility/role filter, selector
	// pruner, short-link removal) and is what the scorer, metadata
	// extractor, merger, and noise stripper operate on.
	doc *dom.Document

	// commentDoc is parsed from the same HTML but never mutated, so that
	// the comment extractor sees nodes the pruning pass may have removed
	// (spec §4.7: comments are mined from the original document).
	commentDoc *dom.Document
}

// New parses html and eagerly prunes chrome: role/visibility filtering,
// the fixed non-content selector list, and short anchor text (spec §4.1,
// §4.2). The selector list and short-anchor passes run only when
// FlagStripUnlikelies is set. It returns ParsingFailed if html cannot be
// parsed at all.
func New(html string, opts ...Option) (*Readability, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	doc, err := dom.Parse(html)
	if err != nil {
		return nil, wrapErr(ParsingFailed, "New", err)
	}
	commentDoc, err := dom.Parse(html)
	if err != nil {
		return nil, wrapErr(ParsingFailed, "New", err)
	}

	pipeline.FilterVisibilityAndRole(doc)
	if cfg.Flags.Has(FlagStripUnlikelies) {
		pipeline.PruneSelectors(doc)
	}

	r := &Readability{cfg: cfg, doc: doc, commentDoc: commentDoc}
	r.debugf("parsed and pruned document", nil)
	return r, nil
}

// debugf emits a debug-level diagnostic only when verbose logging is on
// (spec §3's ExtractionConfig.verbose_logging).
func (r *Readability) debugf(msg string, fields map[string]any) {
	if r.cfg.VerboseLogging {
		r.cfg.Logger.Debug(msg, fields)
	}
}

// ExtractReadabilityData runs the remaining pipeline — candidate scoring,
// metadata extraction (run concurrently, spec §4.11), sibling merging,
// noise stripping, rendering, and optional comment extraction — and
// returns the assembled result. It returns ParsingFailed if no candidate
// scores above zero (spec §4.3).
func (r *Readability) ExtractReadabilityData(includeComments bool) (*ReadabilityData, error) {
	var (
		top   dom.Element
		topOK bool
		meta  pipeline.Metadata
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		var s float64
		top, s, topOK = pipeline.FindTopCandidate(r.doc, r.cfg.Flags.Has(FlagWeightClasses))
		r.debugf("scored candidates", map[string]any{"score": s, "found": topOK})
		return nil
	})
	g.Go(func() error {
		meta = pipeline.ExtractMetadata(r.doc)
		return nil
	})
	_ = g.Wait() // neither goroutine returns an error; kept for the errgroup idiom

	if !topOK {
		return nil, wrapErr(ParsingFailed, "ExtractReadabilityData", errors.New("no candidate element scored above zero"))
	}

	container := pipeline.MergeSiblings(r.doc, top)
	if r.cfg.Flags.Has(FlagCleanConditionally) {
		pipeline.StripNoise(container)
	}

	content, text, readingTime := pipeline.Render(container)

	data := &ReadabilityData{
		Title:                meta.Title,
		Description:          meta.Description,
		Author:               meta.Author,
		DatePublished:        meta.DatePublished,
		Keywords:             meta.Keywords,
		TopImage:             meta.TopImage,
		TopVideo:             meta.TopVideo,
		Content:              content,
		Text:                 text,
		EstimatedReadingTime: readingTime,
	}

	if includeComments {
		data.Comments = r.extractComments()
	}

	r.cfg.Logger.Info("extraction complete", map[string]any{
		"title":         data.Title,
		"comment_count": len(data.Comments),
	})

	return data, nil
}

func (r *Readability) extractComments() []Comment {
	if r.cfg.CommentExtractor != nil {
		return r.cfg.CommentExtractor(r.commentDoc)
	}
	raw := pipeline.ExtractComments(r.commentDoc)
	out := make([]Comment, len(raw))
	for i, c := range raw {
		out[i] = Comment{Author: c.Author, Date: c.Date, Content: c.Content}
	}
	return out
}

// Parse fetches rawURL, then runs New and ExtractReadabilityData against
// the response body (spec §6.1). Pass WithGetter to inject a custom
// fetch.Getter (e.g. for tests).
func Parse(ctx context.Context, rawURL string, opts ...Option) (*ReadabilityData, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	getter := cfg.getter
	if getter == nil {
		getter = fetch.NewHTTPGetter(nil)
	}

	body, err := getter.Get(ctx, rawURL)
	if err != nil {
		var fe *fetch.Error
		if errors.As(err, &fe) {
			switch fe.Kind {
			case fetch.KindInvalidURL:
				return nil, wrapErr(InvalidURL, "Parse", err)
			case fetch.KindDecodingFailed:
				return nil, wrapErr(DecodingFailed, "Parse", err)
			}
		}
		return nil, wrapErr(UnknownError, "Parse", err)
	}

	r, err := New(string(body), opts...)
	if err != nil {
		return nil, err
	}
	return r.ExtractReadabilityData(r.cfg.IncludeComments)
}
