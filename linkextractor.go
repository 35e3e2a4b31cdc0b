package bfscrawl

// SkippedLink is an href that could not be turned into an absolute URL.
type SkippedLink struct {
	Href string
	Err  error
}

// Extraction holds the links found on a page.
type Extraction struct {
	// Links are absolute URLs without fragments, in document order.
	// Duplicates are kept.
	Links []string

	// Skipped lists hrefs dropped because they failed to parse or resolve.
	// Other links on the page are unaffected.
	Skipped []SkippedLink
}

// LinkExtractor finds anchor links in HTML.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns the href of every anchor,
	// resolved against baseURL. Returns EINVALID if baseURL is not absolute.
	ExtractLinks(html string, baseURL string) (*Extraction, error)
}
