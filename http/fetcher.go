// Package http provides the HTTP-based fetch gateway and asset proxy
// gateway. The fetcher resolves an input URL to final markup and final
// URL; the gateway performs pass-through asset fetches and reachability
// probes on behalf of same-origin callers.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/brandsight"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for page fetches.
const DefaultFetchTimeout = 10 * time.Second

// Browser-like request headers. Many sites serve reduced or blocked
// content to unknown user agents.
const (
	browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptHTML       = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptImage      = "image/*,*/*"
)

// Ensure Fetcher implements brandsight.Fetcher at compile time.
var _ brandsight.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page markup over plain HTTP. It does not execute
// JavaScript; use rod.Fetcher for script-rendered sites.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for page fetches.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithClient sets the underlying HTTP client. Redirects must remain
// enabled: the final URL after redirects becomes the analysis base URL.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: f.timeout}
	}
	return f
}

// Fetch retrieves the page at rawURL. Inputs without a scheme default to
// https. The returned page carries the URL after following redirects.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*brandsight.Page, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, brandsight.Errorf(brandsight.EINVALID, "url required")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, brandsight.Errorf(brandsight.EINVALID, "invalid url %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", acceptHTML)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "fetching %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	// Decode to UTF-8 based on the declared charset and content sniffing.
	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "reading %s: %v", rawURL, err)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, brandsight.Errorf(brandsight.EUNAVAILABLE, "reading %s: %v", rawURL, err)
	}

	return &brandsight.Page{
		HTML:     string(body),
		FinalURL: resp.Request.URL.String(),
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
