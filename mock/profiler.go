package mock

import (
	"context"

	"github.com/fwojciec/brandsight"
)

var _ brandsight.Profiler = (*Profiler)(nil)

// Profiler is a mock implementation of brandsight.Profiler.
type Profiler struct {
	ProfileFn func(ctx context.Context, req brandsight.ProfileRequest) (*brandsight.BrandProfile, error)
}

func (p *Profiler) Profile(ctx context.Context, req brandsight.ProfileRequest) (*brandsight.BrandProfile, error) {
	return p.ProfileFn(ctx, req)
}
