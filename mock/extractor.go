package mock

import "github.com/previewkit/tme"

var _ tme.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of tme.Extractor.
type Extractor struct {
	ExtractProfileFn func(html string) (*tme.Resource, error)
	ExtractPostFn    func(html string) (*tme.Post, error)
	ExtractPostsFn   func(html string) ([]*tme.PostSummary, error)
}

func (e *Extractor) ExtractProfile(html string) (*tme.Resource, error) {
	return e.ExtractProfileFn(html)
}

func (e *Extractor) ExtractPost(html string) (*tme.Post, error) {
	return e.ExtractPostFn(html)
}

func (e *Extractor) ExtractPosts(html string) ([]*tme.PostSummary, error) {
	return e.ExtractPostsFn(html)
}
