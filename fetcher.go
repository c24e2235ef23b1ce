package brandsight

import "context"

// Page is a fetched web page.
type Page struct {
	// HTML is the page markup, decoded to UTF-8.
	HTML string

	// FinalURL is the URL after following redirects. It becomes the base
	// URL for all relative reference resolution during analysis.
	FinalURL string
}

// Fetcher resolves an input URL to final markup and final URL.
// Implementations may use plain HTTP or browser automation to handle
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the page at url. Inputs without a scheme are
	// defaulted to https. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
