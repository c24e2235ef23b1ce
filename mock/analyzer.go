package mock

import (
	"context"

	"github.com/fwojciec/brandsight"
)

var _ brandsight.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of brandsight.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, html string, baseURL string) (*brandsight.Signal, error)
}

func (a *Analyzer) Analyze(ctx context.Context, html string, baseURL string) (*brandsight.Signal, error) {
	return a.AnalyzeFn(ctx, html, baseURL)
}
