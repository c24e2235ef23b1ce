// Package rod implements page fetching with a headless Chrome browser.
// It produces the DOM after JavaScript execution, which matters for
// single-page applications where the server response carries no usable
// brand markup.
package rod

import (
	"context"
	"strings"

	"github.com/fwojciec/brandsight"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements brandsight.Fetcher at compile time.
var _ brandsight.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
}

// NewFetcher launches a headless Chrome browser. Close must be called
// when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...ManagerOption) (*Fetcher, error) {
	manager, err := NewBrowserManager(opts...)
	if err != nil {
		return nil, err
	}
	return &Fetcher{manager: manager}, nil
}

// Fetch navigates to the URL and returns the rendered HTML together with
// the final URL after any redirects. Inputs without a scheme default to
// https.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*brandsight.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rawURL, err := normalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(rawURL); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	info, err := page.Info()
	if err != nil {
		return nil, err
	}

	f.manager.PageRendered()

	return &brandsight.Page{
		HTML:     html,
		FinalURL: info.URL,
	}, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// normalizeURL prepends https to scheme-less inputs so the browser
// navigates instead of treating them as search terms.
func normalizeURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", brandsight.Errorf(brandsight.EINVALID, "url required")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}
	return rawURL, nil
}
