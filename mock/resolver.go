package mock

import (
	"context"

	"github.com/previewkit/tme"
)

var _ tme.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of tme.Resolver.
type Resolver struct {
	ResolveFn func(ctx context.Context, input string) (*tme.Resource, error)
	PostsFn   func(ctx context.Context, username string) ([]*tme.PostSummary, error)
}

func (r *Resolver) Resolve(ctx context.Context, input string) (*tme.Resource, error) {
	return r.ResolveFn(ctx, input)
}

func (r *Resolver) Posts(ctx context.Context, username string) ([]*tme.PostSummary, error) {
	return r.PostsFn(ctx, username)
}
