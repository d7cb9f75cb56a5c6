package readably

import (
	"net/http"

	"github.com/nrois/readably/internal/dom"
	"github.com/nrois/readably/internal/fetch"
)

// Flags is a bit-set of the algorithm toggles described in spec §3/§6.
// The default (all three set) matches Readability.js's own default.
type Flags uint8

const (
	FlagStripUnlikelies Flags = 1 << iota
	FlagWeightClasses
	FlagCleanConditionally

	AllFlags = FlagStripUnlikelies | FlagWeightClasses | FlagCleanConditionally
)

// Has reports whether all bits in want are set in f.
func (f Flags) Has(want Flags) bool { return f&want == want }

// CommentExtractorFunc, when supplied via WithCommentExtractor, overrides
// the built-in comment extractor (§4.7). It receives the pre-merge
// document and returns comment triples.
type CommentExtractorFunc func(doc *dom.Document) []Comment

// ExtractionConfig is the immutable configuration produced once per
// extraction (spec §3).
type ExtractionConfig struct {
	Flags            Flags
	VerboseLogging   bool
	CommentExtractor CommentExtractorFunc
	IncludeComments  bool
	Logger           Logger
	getter           fetch.Getter
}

// Option configures an ExtractionConfig using the functional-options
// pattern (mirrors the teacher's own Option/New shape).
type Option func(*ExtractionConfig)

// WithFlags overrides which of strip_unlikelies/weight_classes/clean_conditionally
// are enabled. Default is AllFlags.
func WithFlags(f Flags) Option {
	return func(c *ExtractionConfig) { c.Flags = f }
}

// WithVerboseLogging toggles debug-level diagnostic emission.
func WithVerboseLogging(enable bool) Option {
	return func(c *ExtractionConfig) { c.VerboseLogging = enable }
}

// WithCommentExtractor supplies a custom comment extractor, overriding the
// built-in selector-based one.
func WithCommentExtractor(fn CommentExtractorFunc) Option {
	return func(c *ExtractionConfig) { c.CommentExtractor = fn }
}

// WithIncludeComments sets whether Parse runs comment extraction (default
// true). ExtractReadabilityData does not read this setting; it uses only its
// own includeComments argument.
func WithIncludeComments(enable bool) Option {
	return func(c *ExtractionConfig) { c.IncludeComments = enable }
}

// WithLogger supplies the logging sink. Defaults to a no-op sink.
func WithLogger(l Logger) Option {
	return func(c *ExtractionConfig) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithGetter overrides how Parse fetches a URL's body, e.g. for tests or
// for a caller-supplied *http.Client wrapper. Has no effect on New or
// ExtractReadabilityData, which never perform network access.
func WithGetter(g fetch.Getter) Option {
	return func(c *ExtractionConfig) { c.getter = g }
}

// WithHTTPClient is a convenience over WithGetter for the common case of
// just wanting a custom *http.Client (timeouts, proxies, transport).
func WithHTTPClient(client *http.Client) Option {
	return func(c *ExtractionConfig) { c.getter = fetch.NewHTTPGetter(client) }
}

func defaultConfig() ExtractionConfig {
	return ExtractionConfig{
		Flags:           AllFlags,
		IncludeComments: true,
		Logger:          noopLogger{},
	}
}

// Comment is a single reader comment (spec §3, §4.7).
type Comment struct {
	Author  string `json:"author"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// ReadabilityData is the output payload of an extraction (spec §3). Every
// field except Title is optional; zero values (empty string, nil slice,
// zero int) mean "absent".
type ReadabilityData struct {
	Title                string    `json:"title"`
	Description          string    `json:"description,omitempty"`
	Author               string    `json:"author,omitempty"`
	DatePublished        string    `json:"date_published,omitempty"`
	Keywords             []string  `json:"keywords,omitempty"`
	TopImage             string    `json:"top_image,omitempty"`
	TopVideo             string    `json:"top_video,omitempty"`
	Content              string    `json:"content,omitempty"`
	Text                 string    `json:"text,omitempty"`
	EstimatedReadingTime int       `json:"estimated_reading_time,omitempty"`
	Comments             []Comment `json:"comments,omitempty"`
}
