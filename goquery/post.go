package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/previewkit/tme"
)

// maxListPosts caps the number of entries extracted from a message-list
// document.
const maxListPosts = 10

// ExtractPost extracts a single message from an embed document. The post
// belongs to a group when the widget renders an author-name element in
// addition to the owner-name element; channel posts render only the
// owner.
func (e *Extractor) ExtractPost(html string) (*tme.Post, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	if doc.Find(selMessage).Length() == 0 {
		return nil, tme.Errorf(tme.ENOTFOUND, "Post not found")
	}

	isGroup := doc.Find(selAuthorName).Length() > 0
	kind := tme.PostKindChannel
	if isGroup {
		kind = tme.PostKindGroup
	}

	return &tme.Post{
		Type:      kind,
		Author:    extractAuthor(doc.Selection, isGroup),
		Text:      strings.TrimSpace(doc.Find(selMessageText).Text()),
		Media:     extractMedia(doc.Selection),
		Reactions: extractReactions(doc.Selection),
		Views:     tme.ParseAbbrevCount(strings.TrimSpace(doc.Find(selMessageViews).Text())),
		Date:      messageDate(doc.Selection),
	}, nil
}

// ExtractPosts extracts up to ten entries from a channel's message-list
// document, in document order. Entries that cannot be parsed are skipped
// so one bad item never fails the whole listing.
func (e *Extractor) ExtractPosts(html string) ([]*tme.PostSummary, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	posts := []*tme.PostSummary{}
	doc.Find(selMessage).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if summary := e.extractSummary(s); summary != nil {
			posts = append(posts, summary)
		}
		return len(posts) < maxListPosts
	})

	return posts, nil
}

// extractSummary parses one message-list entry, or returns nil when the
// entry should be skipped.
func (e *Extractor) extractSummary(s *goquery.Selection) *tme.PostSummary {
	dataPost, ok := s.Attr("data-post")
	if !ok || dataPost == "" {
		e.logger.Debug().Msg("skipping list entry without data-post attribute")
		return nil
	}

	// data-post carries "username/postId"; both segments are required.
	channel, id, ok := strings.Cut(dataPost, "/")
	if !ok || channel == "" || id == "" {
		e.logger.Debug().Str("data_post", dataPost).Msg("skipping list entry with malformed data-post attribute")
		return nil
	}

	name := strings.TrimSpace(s.Find(selOwnerName + " span").Text())
	if name == "" {
		name = strings.TrimSpace(s.Find(selAuthorName + " span").Text())
	}

	return &tme.PostSummary{
		ID:  id,
		URL: e.baseURL + "/" + dataPost,
		Author: tme.Author{
			Name:     name,
			Username: channel,
		},
		Text:      strings.TrimSpace(s.Find(selMessageText).Text()),
		Date:      messageDate(s),
		Views:     tme.ParseAbbrevCount(strings.TrimSpace(s.Find(selMessageViews).Text())),
		Media:     extractMedia(s),
		Forwarded: s.Find(selForwarded).Length() > 0,
	}
}

// extractAuthor reads the author of a message. Group posts carry a
// distinct author-name element; channel posts expose only the owner.
// Username is the last path segment of the name element's link, empty
// when the link is missing.
func extractAuthor(scope *goquery.Selection, isGroup bool) tme.Author {
	sel := selOwnerName
	if isGroup {
		sel = selAuthorName
	}

	name := strings.TrimSpace(scope.Find(sel + " span").Text())
	link, _ := scope.Find(sel).Attr("href")

	return tme.Author{
		Name:     name,
		Username: lastPathSegment(link),
	}
}

// extractReactions reads the reaction list of a message. Entries with an
// empty emoji or a zero count are dropped; the rest keep document order.
func extractReactions(scope *goquery.Selection) []tme.Reaction {
	reactions := []tme.Reaction{}

	scope.Find(selReaction).Each(func(_ int, s *goquery.Selection) {
		emoji := strings.TrimSpace(s.Find(selReactionEmoji).Text())
		countText := strings.TrimSpace(strings.Replace(s.Text(), emoji, "", 1))
		count := tme.ParseAbbrevCount(countText)

		if emoji != "" && count > 0 {
			reactions = append(reactions, tme.Reaction{Emoji: emoji, Count: count})
		}
	})

	return reactions
}

func messageDate(scope *goquery.Selection) string {
	datetime, _ := scope.Find(selMessageDate).Attr("datetime")
	return datetime
}

func lastPathSegment(link string) string {
	if link == "" {
		return ""
	}
	parts := strings.Split(link, "/")
	return parts[len(parts)-1]
}
