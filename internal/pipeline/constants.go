// Package pipeline implements the scoring and cleanup engine: visibility
// filtering, selector pruning, metadata extraction, candidate scoring,
// sibling merging, noise stripping, comment extraction, and rendering.
// Every component here is written only against internal/dom's Document
// and Element capability, never against goquery or golang.org/x/net/html
// directly.
package pipeline

import "regexp"

// PrunerSelector is the fixed list of non-content selectors removed
// eagerly by the Selector Pruner (spec §4.2, §6). Bit-exact: downstream
// consumers may rely on this list for compatibility.
const PrunerSelector = "header, nav, footer, aside, " +
	".advertisement, .sponsored, .subscribe, .related, .breadcrumbs, " +
	".combx, .community, .cover-wrap, .disqus, .extra, .gdpr, .legends, " +
	".menu, .remark, .replies, .rss, .shoutbox, .sidebar, .skyscraper, " +
	".social, .sponsor, .supplemental, .ad-break, .agegate, .pagination, " +
	".pager, .popup, .yom-remote, .newsletter, .cookie, .cookie-banner, " +
	".modal, .overlay, .promo, .trending, .signup, .cta, .outbrain, " +
	".taboola, [data-component='header'], [data-component='footer']"

// Meta-tag selector ladders, ordered by preference (spec §6).
var (
	TitleMetaSelectors = []string{
		"meta[property='og:title']",
		"meta[name='twitter:title']",
		"meta[name='title']",
	}
	DescriptionMetaSelectors = []string{
		"meta[name='description']",
		"meta[property='og:description']",
		"meta[name='twitter:description']",
	}
	KeywordsMetaSelectors = []string{
		"meta[name='keywords']",
		"meta[name='news_keywords']",
		"meta[name='parsely-tags']",
		"meta[name='article:tag']",
	}
	AuthorMetaSelectors = []string{
		"meta[name='author']",
		"meta[property='article:author']",
		"meta[name='byl']",
		"meta[name='sailthru.author']",
		"meta[name='parsely-author']",
		"meta[property='og:article:author']",
	}
	DateMetaSelectors = []string{
		"meta[property='article:published_time']",
		"meta[name='pubdate']",
		"meta[name='date']",
		"meta[name='parsely-pub-date']",
		"meta[name='DC.date']",
		"meta[itemprop='datePublished']",
	}
)

// Author DOM fallback selector (spec §4.6), tried after meta tags.
const AuthorDOMSelector = ".byline, .by-author, .author, [rel='author'], .posted-by, .article-author, [itemprop='author']"

// Top-image DOM fallback selector (spec §4.6): first <img> in the body.
const TopImageFallbackSelector = "img"

// Image attributes consulted, in order, for the top-image DOM fallback.
var ImageSrcAttributes = []string{"src", "data-src", "data-original", "data-lazy-src", "data-srcset"}

// RegexpShareOrComment matches share/comment widget class/id/aria-label
// text (spec §4.5, §6).
var RegexpShareOrComment = regexp.MustCompile(`(?i)(\b|_)(share|sharedaddy|coral|comments-link)(\b|_)`)

// Noise-stripper ad-label exact matches (spec §4.5 step 2).
var AdExactLabels = map[string]bool{
	"advertisement":     true,
	"sponsored":         true,
	"sponsored content": true,
	"ad":                true,
}

// Noise-stripper "recommended/related" phrase set (spec §4.5 step 2).
var RelatedPhrases = []string{
	"recommended", "related", "more stories", "read more", "you may also like",
}

// Noise-marker exact/prefix labels (spec §4.5 step 3).
var NoiseMarkerLabels = []string{
	"advertisement", "recommended", "recommended stories", "related stories",
	"more stories", "sponsored",
}

// Comment selector ladders (spec §4.7, §6).
var (
	CommentPrimarySelectors = []string{
		".comment-list .comment", ".comments .comment", ".comment", "li.comment", "[itemprop='comment']",
	}
	CommentSecondarySelectors = []string{
		"[class*=comment]", "[id*=comment]", "[class*=reply]", "[id*=reply]",
		"[class*=discussion]", "[id*=discussion]", ".comment-list", ".comment-body",
		".comment-content", "#disqus_thread", ".fb-comments",
	}
	CommentFallbackSelector = "div.comment, li.comment"
)

// Comment body/author/date selectors (spec §4.7).
const (
	CommentContentSelector = "div.post-body, p, .comment-content, .comment-body, .content"
	CommentAuthorSelector  = ".author, .user, .username, span.post-author, .comment-author, [itemprop='author'], .fn"
	CommentDateSelector    = "time[datetime], time, [data-datetime], .comment-date, .date, [itemprop='datePublished']"
)

// MaxComments bounds the number of deduplicated comments returned (spec §3).
const MaxComments = 50

// ReadabilityContentID is the synthetic merged-container id; part of the
// external interface (spec §6) — downstream consumers style/query by it.
const ReadabilityContentID = "readability-content"

// MinCandidateTextLength is the scorer's minimum text length to consider
// an element at all (spec §4.3 step 1).
const MinCandidateTextLength = 25

// MinSiblingTextLength is the sibling-merge text-length-or-media gate
// (spec §4.4 step 3).
const MinSiblingTextLength = 25

// SiblingLinkDensityThreshold is the sibling-merge link-density gate
// (spec §4.4 step 3).
const SiblingLinkDensityThreshold = 0.2

// RegexpJSONLDArticleType matches @type values considered "an article" for the
// structured-data walk (spec §4.6): case-insensitive "article" or
// "blogposting" anywhere in the string.
var RegexpJSONLDArticleType = regexp.MustCompile(`(?i)article|blogposting`)

// MaxJSONDepth bounds recursion in the structured-data walker (spec §9).
const MaxJSONDepth = 64

// ShortLinkMaxLength is the open-interval upper bound for removing short
// anchor text during pruning (spec §4.2): (0, 20).
const ShortLinkMaxLength = 20
