// Package readability implements main content extraction using Mozilla's
// readability algorithm. It is an alternative to the trafilatura
// extractor for pages where article-style heuristics work better.
package readability

import (
	"strings"

	"github.com/fwojciec/brandsight"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements brandsight.Extractor at compile time.
var _ brandsight.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*brandsight.ExtractResult, error) {
	if rawHTML == "" {
		return nil, brandsight.Errorf(brandsight.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &brandsight.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
