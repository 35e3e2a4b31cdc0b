package bfscrawl

import "context"

// Response is the result of a successful fetch.
type Response struct {
	// URL is the final URL after redirects. Relative links on the page
	// resolve against it.
	URL string

	// StatusCode is the HTTP status. Fetchers that cannot observe it
	// (e.g. browser automation) report 200.
	StatusCode int

	// Body is the page HTML.
	Body string
}

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the URL and returns the response.
	// Transport and body-read failures are reported as EUNAVAILABLE,
	// non-2xx responses as EUPSTREAM.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases resources held by the fetcher.
	Close() error
}
