package goquery

import (
	"net/url"
	"strings"
)

// resolveRef resolves a possibly-relative reference against the base URL.
// Returns "" when the reference is empty or cannot produce a valid http(s)
// URL; callers absorb the failure as "no candidate" rather than an error.
func resolveRef(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(u)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}
