// Package zerolog provides logging decorators for tme interfaces.
package zerolog

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/previewkit/tme"
)

// Ensure LoggingResolver implements tme.Resolver at compile time.
var _ tme.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with per-operation logging.
type LoggingResolver struct {
	next   tme.Resolver
	logger zerolog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next tme.Resolver, logger zerolog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(ctx context.Context, input string) (res *tme.Resource, err error) {
	defer func(begin time.Time) {
		var evt *zerolog.Event
		if err != nil {
			evt = r.logger.Warn().Str("error_type", tme.ErrorCode(err)).Err(err)
		} else {
			evt = r.logger.Info()
		}
		kind := ""
		if res != nil {
			kind = res.Kind()
		}
		evt.Str("op", "resolve").
			Str("input", input).
			Str("kind", kind).
			Dur("duration", time.Since(begin)).
			Msg("resolve")
	}(time.Now())
	return r.next.Resolve(ctx, input)
}

// Posts delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Posts(ctx context.Context, username string) (posts []*tme.PostSummary, err error) {
	defer func(begin time.Time) {
		var evt *zerolog.Event
		if err != nil {
			evt = r.logger.Warn().Str("error_type", tme.ErrorCode(err)).Err(err)
		} else {
			evt = r.logger.Info()
		}
		evt.Str("op", "posts").
			Str("username", username).
			Int("count", len(posts)).
			Dur("duration", time.Since(begin)).
			Msg("posts")
	}(time.Now())
	return r.next.Posts(ctx, username)
}
