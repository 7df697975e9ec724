// Package resolve implements the top-level identifier router. It
// normalizes caller-supplied identifiers, fetches the matching preview
// document and dispatches to profile, post or list extraction.
package resolve

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/previewkit/tme"
)

// Default per-call fetch deadlines. The message-list page is heavier
// than profile and embed pages, so it gets a longer deadline.
const (
	DefaultProfileTimeout = 5 * time.Second
	DefaultListTimeout    = 10 * time.Second
)

// DefaultConcurrency bounds the fan-out of ResolveAll.
const DefaultConcurrency = 5

// Ensure Resolver implements tme.Resolver at compile time.
var _ tme.Resolver = (*Resolver)(nil)

// Resolver routes identifiers to the matching fetch + extraction. Every
// call is one-shot and independent: there is no cache, retry or shared
// state, so a Resolver is safe for concurrent use.
type Resolver struct {
	fetcher        tme.Fetcher
	extractor      tme.Extractor
	baseURL        string
	profileTimeout time.Duration
	listTimeout    time.Duration
	concurrency    int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBaseURL overrides the preview site root. Defaults to tme.BaseURL.
func WithBaseURL(u string) Option {
	return func(r *Resolver) {
		r.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithProfileTimeout sets the deadline for profile and post fetches.
func WithProfileTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		r.profileTimeout = d
	}
}

// WithListTimeout sets the deadline for message-list fetches.
func WithListTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		r.listTimeout = d
	}
}

// WithConcurrency bounds ResolveAll's concurrent fetches.
func WithConcurrency(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewResolver creates a Resolver over the given collaborators.
func NewResolver(fetcher tme.Fetcher, extractor tme.Extractor, opts ...Option) *Resolver {
	r := &Resolver{
		fetcher:        fetcher,
		extractor:      extractor,
		baseURL:        tme.BaseURL,
		profileTimeout: DefaultProfileTimeout,
		listTimeout:    DefaultListTimeout,
		concurrency:    DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Normalize strips surrounding whitespace and the leading @ from a
// caller-supplied identifier.
func Normalize(input string) string {
	return strings.TrimPrefix(strings.TrimSpace(input), "@")
}

// Resolve handles a username or a "username/postId" path. Inputs with a
// leading + are private-group invites, which cannot be previewed and are
// reported as a distinct terminal error.
func (r *Resolver) Resolve(ctx context.Context, input string) (*tme.Resource, error) {
	cleaned := Normalize(input)

	if cleaned == "" {
		return nil, tme.Errorf(tme.EINVALID, "empty identifier")
	}
	if strings.HasPrefix(cleaned, "+") {
		return nil, tme.Errorf(tme.EPRIVATE, "Private group parsing is not possible")
	}
	if strings.Contains(cleaned, "/") {
		return r.resolvePost(ctx, cleaned)
	}
	return r.resolveProfile(ctx, cleaned)
}

// Posts returns the most recent messages of a channel, capped at ten
// entries. This is a separate entry point and never goes through the
// resource classifier.
func (r *Resolver) Posts(ctx context.Context, username string) ([]*tme.PostSummary, error) {
	cleaned := Normalize(username)
	if cleaned == "" {
		return nil, tme.Errorf(tme.EINVALID, "empty username")
	}

	html, err := r.fetch(ctx, r.baseURL+"/s/"+cleaned, r.listTimeout)
	if err != nil {
		return nil, asInternal(err)
	}

	return r.extractor.ExtractPosts(html)
}

// BatchResult is the outcome of resolving one input of a batch.
type BatchResult struct {
	Input    string
	Resource *tme.Resource
	Err      error
}

// ResolveAll resolves inputs concurrently with bounded fan-out. Results
// keep input order; per-input failures are recorded in the result and
// never abort the batch.
func (r *Resolver) ResolveAll(ctx context.Context, inputs []string) []BatchResult {
	results := make([]BatchResult, len(inputs))

	g := new(errgroup.Group)
	g.SetLimit(r.concurrency)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			res, err := r.Resolve(ctx, input)
			results[i] = BatchResult{Input: input, Resource: res, Err: err}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return results
}

func (r *Resolver) resolveProfile(ctx context.Context, username string) (*tme.Resource, error) {
	html, err := r.fetch(ctx, r.baseURL+"/"+username, r.profileTimeout)
	if err != nil {
		return nil, asInternal(err)
	}

	return r.extractor.ExtractProfile(html)
}

func (r *Resolver) resolvePost(ctx context.Context, path string) (*tme.Resource, error) {
	// The embed variant of the post page carries the full widget markup.
	html, err := r.fetch(ctx, r.baseURL+"/"+path+"?embed=1&mode=tme", r.profileTimeout)
	if err != nil {
		return nil, asInternal(err)
	}

	post, err := r.extractor.ExtractPost(html)
	if err != nil {
		return nil, err
	}
	post.URL = r.baseURL + "/" + path

	return &tme.Resource{Post: post}, nil
}

func (r *Resolver) fetch(ctx context.Context, url string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return r.fetcher.Fetch(ctx, url)
}

// asInternal converts a transport failure into the uniform error shape,
// passing the underlying message through verbatim.
func asInternal(err error) error {
	return tme.Errorf(tme.EINTERNAL, "%s", err.Error())
}
