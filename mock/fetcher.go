package mock

import (
	"context"

	"github.com/fwojciec/brandsight"
)

var _ brandsight.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of brandsight.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*brandsight.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*brandsight.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
