package mock

import "github.com/fwojciec/bfscrawl"

var _ bfscrawl.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of bfscrawl.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) (*bfscrawl.Extraction, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) (*bfscrawl.Extraction, error) {
	return e.ExtractLinksFn(html, baseURL)
}
