// Package readably extracts the primary article from a raw HTML document:
// cleaned HTML content, plain text, metadata (title, description, author,
// publication date, keywords, top image/video), an estimated reading time,
// and optionally deduplicated reader comments.
//
// Usage:
//
//	r, err := readably.New(htmlString)
//	if err != nil {
//	    // ParsingFailed: the HTML could not be parsed at all
//	}
//	data, err := r.ExtractReadabilityData(true)
//	fmt.Println(data.Title)
//	fmt.Println(data.Content)
//
// Or, to fetch and extract in one call:
//
//	data, err := readably.Parse(ctx, "https://example.com/article")
package readably
