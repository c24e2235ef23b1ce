// Package mock provides hand-written mock implementations of the
// brandsight interfaces for use in tests.
package mock

import (
	"context"

	"github.com/fwojciec/brandsight"
)

var _ brandsight.Prober = (*Prober)(nil)

// Prober is a mock implementation of brandsight.Prober.
type Prober struct {
	ProbeFn func(ctx context.Context, url string) error

	// ProbedURLs records every probe in call order.
	ProbedURLs []string
}

func (p *Prober) Probe(ctx context.Context, url string) error {
	p.ProbedURLs = append(p.ProbedURLs, url)
	return p.ProbeFn(ctx, url)
}

var _ brandsight.Gateway = (*Gateway)(nil)

// Gateway is a mock implementation of brandsight.Gateway.
type Gateway struct {
	ProbeFn      func(ctx context.Context, url string) error
	FetchAssetFn func(ctx context.Context, url string) (*brandsight.Asset, error)
}

func (g *Gateway) Probe(ctx context.Context, url string) error {
	return g.ProbeFn(ctx, url)
}

func (g *Gateway) FetchAsset(ctx context.Context, url string) (*brandsight.Asset, error) {
	return g.FetchAssetFn(ctx, url)
}

var _ brandsight.Rewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of brandsight.Rewriter.
type Rewriter struct {
	RewriteFn func(url string) string
}

func (r *Rewriter) Rewrite(url string) string {
	return r.RewriteFn(url)
}
