package tme

import "context"

// Fetcher retrieves raw HTML from preview page URLs.
// The core never performs I/O itself; every extraction operates on
// markup obtained through this interface.
type Fetcher interface {
	// Fetch retrieves the markup at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	Close() error
}
