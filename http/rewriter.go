package http

import (
	"net/url"
	"strings"

	"github.com/fwojciec/brandsight"
)

// DefaultProxyPath is where gin.Server mounts the asset proxy.
const DefaultProxyPath = "/api/proxy-image"

// Ensure Rewriter implements brandsight.Rewriter at compile time.
var _ brandsight.Rewriter = (*Rewriter)(nil)

// Rewriter converts absolute remote URLs into same-origin references that
// dereference through the asset proxy.
type Rewriter struct {
	path string
}

// NewRewriter creates a Rewriter targeting the given proxy mount path.
// An empty path defaults to DefaultProxyPath.
func NewRewriter(path string) *Rewriter {
	if path == "" {
		path = DefaultProxyPath
	}
	return &Rewriter{path: path}
}

// Rewrite returns a same-origin proxied reference for remote URLs. Inline
// data references pass through unchanged; empty input yields empty output.
func (r *Rewriter) Rewrite(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	if strings.HasPrefix(rawURL, "data:") {
		return rawURL
	}
	return r.path + "?url=" + url.QueryEscape(rawURL)
}
