package crawl_test

import (
	"context"
	"testing"

	"github.com/fwojciec/bfscrawl"
	"github.com/fwojciec/bfscrawl/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopedProvider_AdjacentNodes(t *testing.T) {
	t.Parallel()

	links := []string{
		"https://example.com/docs/a",
		"https://other.com/docs/b",
		"https://example.com/blog/c",
		"mailto:someone@example.com",
		"https://example.com:8080/docs/d",
	}
	next := bfscrawl.AdjacencyFunc[string](func(_ context.Context, _ string) []string {
		return links
	})

	t.Run("passes everything without scope", func(t *testing.T) {
		t.Parallel()

		p := crawl.NewScopedProvider(next, nil, nil)

		assert.Equal(t, links, p.AdjacentNodes(context.Background(), "https://example.com/"))
	})

	t.Run("keeps only same host", func(t *testing.T) {
		t.Parallel()

		p := crawl.NewScopedProvider(next, nil, crawl.SameHost("example.com"))

		got := p.AdjacentNodes(context.Background(), "https://example.com/")

		assert.Equal(t, []string{"https://example.com/docs/a", "https://example.com/blog/c"}, got)
	})

	t.Run("applies include and exclude patterns", func(t *testing.T) {
		t.Parallel()

		filter, err := bfscrawl.NewURLFilter([]string{`/docs/`}, []string{`/d$`})
		require.NoError(t, err)
		p := crawl.NewScopedProvider(next, filter, nil)

		got := p.AdjacentNodes(context.Background(), "https://example.com/")

		assert.Equal(t, []string{"https://example.com/docs/a", "https://other.com/docs/b"}, got)
	})

	t.Run("does not modify the wrapped provider's slice", func(t *testing.T) {
		t.Parallel()

		p := crawl.NewScopedProvider(next, nil, crawl.SameHost("other.com"))
		p.AdjacentNodes(context.Background(), "https://example.com/")

		assert.Equal(t, "https://example.com/docs/a", links[0])
	})
}

func TestSameSite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		host string
		url  string
		want bool
	}{
		{name: "same host", host: "example.com", url: "https://example.com/a", want: true},
		{name: "subdomain", host: "www.example.com", url: "https://docs.example.com/a", want: true},
		{name: "port ignored", host: "example.com", url: "https://example.com:8443/a", want: true},
		{name: "host case ignored", host: "Example.COM", url: "https://example.com/", want: true},
		{name: "other domain", host: "example.com", url: "https://example.org/", want: false},
		{name: "multi-label suffix", host: "a.example.co.uk", url: "https://b.example.co.uk/", want: true},
		{name: "sibling under public suffix", host: "example.co.uk", url: "https://other.co.uk/", want: false},
		{name: "IP address must match", host: "127.0.0.1:8080", url: "http://127.0.0.1:9090/", want: true},
		{name: "different IP address", host: "127.0.0.1", url: "http://127.0.0.2/", want: false},
		{name: "mailto has no host", host: "example.com", url: "mailto:someone@example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, crawl.SameSite(tt.host)(tt.url))
		})
	}
}

func TestSameHost(t *testing.T) {
	t.Parallel()

	scope := crawl.SameHost("example.com:8080")

	assert.True(t, scope("http://example.com:8080/a"))
	assert.False(t, scope("http://example.com/a"))
	assert.False(t, scope("http://www.example.com:8080/a"))
	assert.False(t, scope("http://[::1"))
}
