package bfscrawl

import (
	"net/url"
	"strings"
)

// NormalizeURL returns the node form of an absolute URL: fragment removed,
// host lowercased, and an empty path on a hierarchical URL written as "/".
// u is not modified.
func NormalizeURL(u *url.URL) string {
	n := *u
	n.Fragment = ""
	n.RawFragment = ""
	n.Host = strings.ToLower(n.Host)
	if n.Host != "" && n.Path == "" && n.Opaque == "" {
		n.Path = "/"
		n.RawPath = ""
	}
	return n.String()
}

// ParseStartURL parses the node a crawl starts from. It must be an absolute
// http or https URL with a host. Returns EINVALID otherwise.
func ParseStartURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", Errorf(EINVALID, "invalid start URL %q: %v", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", Errorf(EINVALID, "start URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "start URL %q has no host", raw)
	}
	return NormalizeURL(u), nil
}
