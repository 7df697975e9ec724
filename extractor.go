package tme

import "context"

// Extractor turns raw preview page markup into typed records. The three
// methods correspond to the three kinds of document the preview site
// serves: profile pages, single-message embed pages, and the
// message-list page of a channel.
type Extractor interface {
	// ExtractProfile classifies a profile-style document and extracts
	// the matching channel/bot/group record.
	// Returns EUNKNOWN if the page matches no known resource kind.
	ExtractProfile(html string) (*Resource, error)

	// ExtractPost extracts a single message from an embed document.
	// The returned post's URL field is left empty; the caller knows the
	// permalink and fills it in.
	// Returns ENOTFOUND if the document contains no message element.
	ExtractPost(html string) (*Post, error)

	// ExtractPosts extracts up to ten entries from a message-list
	// document. Malformed entries are skipped, never fatal.
	ExtractPosts(html string) ([]*PostSummary, error)
}

// Resolver is the top-level entry point: it normalizes a caller-supplied
// identifier, fetches the right preview document and dispatches to the
// matching extraction.
type Resolver interface {
	// Resolve handles a username ("lepragram", "@lepragram") or a post
	// path ("lepragram/33399").
	// Returns EPRIVATE for "+invite" inputs, ENOTFOUND for missing
	// posts, EUNKNOWN for unclassifiable profiles and EINTERNAL for
	// transport or parse failures.
	Resolve(ctx context.Context, input string) (*Resource, error)

	// Posts returns the most recent messages of a channel, capped at
	// ten entries.
	Posts(ctx context.Context, username string) ([]*PostSummary, error)
}
