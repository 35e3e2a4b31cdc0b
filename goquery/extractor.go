// Package goquery extracts anchor links from HTML using goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bfscrawl"
)

// Ensure LinkExtractor implements bfscrawl.LinkExtractor at compile time.
var _ bfscrawl.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor returns the href of every anchor element on a page.
//
// Links are kept in document order and are not deduplicated. Relative
// hrefs are resolved against the base URL and fragments are stripped, so
// two links that differ only in fragment name the same node.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses HTML and returns the resolved link of every a[href].
// Hrefs that fail to parse are reported in Extraction.Skipped.
func (e *LinkExtractor) ExtractLinks(html string, baseURL string) (*bfscrawl.Extraction, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, bfscrawl.Errorf(bfscrawl.EINVALID, "invalid base URL: %v", err)
	}
	if !base.IsAbs() {
		return nil, bfscrawl.Errorf(bfscrawl.EINVALID, "base URL %q is not absolute", baseURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bfscrawl.Errorf(bfscrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	extraction := &bfscrawl.Extraction{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")

		resolved, err := resolveURL(base, href)
		if err != nil {
			extraction.Skipped = append(extraction.Skipped, bfscrawl.SkippedLink{Href: href, Err: err})
			return
		}
		extraction.Links = append(extraction.Links, resolved)
	})

	return extraction, nil
}

// resolveURL resolves href against base and returns it in node form.
func resolveURL(base *url.URL, href string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", err
	}
	return bfscrawl.NormalizeURL(base.ResolveReference(ref)), nil
}
