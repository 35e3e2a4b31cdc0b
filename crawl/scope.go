package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/bfscrawl"
	"golang.org/x/net/publicsuffix"
)

// Ensure ScopedProvider implements bfscrawl.AdjacencyProvider at compile time.
var _ bfscrawl.AdjacencyProvider[string] = (*ScopedProvider)(nil)

// Scope reports whether a URL belongs to the crawl.
type Scope func(rawURL string) bool

// SameHost accepts URLs whose host, including any port, equals host.
func SameHost(host string) Scope {
	return func(rawURL string) bool {
		u, err := url.Parse(rawURL)
		if err != nil {
			return false
		}
		return u.Host == host
	}
}

// SameSite accepts URLs under the same registrable domain as host, so
// "docs.example.com" and "www.example.com" share a scope. Ports are ignored.
// Hosts without a public suffix, such as IP addresses, must match exactly.
func SameSite(host string) Scope {
	site := registrableDomain(host)
	return func(rawURL string) bool {
		u, err := url.Parse(rawURL)
		if err != nil || u.Host == "" {
			return false
		}
		return registrableDomain(u.Host) == site
	}
}

func registrableDomain(host string) string {
	name := strings.ToLower(host)
	if u, err := url.Parse("//" + host); err == nil {
		name = strings.ToLower(u.Hostname())
	}
	site, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil || strings.Trim(name, "0123456789.") == "" {
		return name
	}
	return site
}

// ScopedProvider drops neighbors that fall outside the crawl scope.
// A node outside the scope is never queued, so it is never fetched.
type ScopedProvider struct {
	next   bfscrawl.AdjacencyProvider[string]
	filter *bfscrawl.URLFilter
	scope  Scope
}

// NewScopedProvider wraps next. A nil filter or nil scope accepts every URL.
func NewScopedProvider(next bfscrawl.AdjacencyProvider[string], filter *bfscrawl.URLFilter, scope Scope) *ScopedProvider {
	return &ScopedProvider{next: next, filter: filter, scope: scope}
}

// AdjacentNodes returns the in-scope neighbors of v, keeping their order.
func (p *ScopedProvider) AdjacentNodes(ctx context.Context, v string) []string {
	links := p.next.AdjacentNodes(ctx, v)
	inScope := links[:0:0]
	for _, link := range links {
		if p.scope != nil && !p.scope(link) {
			continue
		}
		if !p.filter.Match(link) {
			continue
		}
		inScope = append(inScope, link)
	}
	return inScope
}
