// Package goquery implements tme.Extractor on top of the
// github.com/PuerkitoBio/goquery document model. It owns the selector
// contract of the live preview markup: all tgme_* class names below must
// match the served pages exactly.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/previewkit/tme"
)

// Profile page selector targets.
const (
	selPageTitle    = ".tgme_page_title span"
	selPagePhoto    = ".tgme_page_photo_image"
	selPageExtra    = ".tgme_page_extra"
	selPageDesc     = ".tgme_page_description"
	selVerifiedIcon = ".tgme_page_title .verified-icon"
	selActionButton = ".tgme_action_button_new"
)

// Message widget selector targets.
const (
	selMessage       = ".tgme_widget_message"
	selMessageText   = ".tgme_widget_message_text"
	selMessageViews  = ".tgme_widget_message_views"
	selMessageDate   = ".tgme_widget_message_date time"
	selAuthorName    = ".tgme_widget_message_author_name"
	selOwnerName     = ".tgme_widget_message_owner_name"
	selReaction      = ".tgme_widget_message_reactions .tgme_reaction"
	selReactionEmoji = ".emoji b"
	selPhotoWrap     = ".tgme_widget_message_photo_wrap"
	selVideoThumb    = ".tgme_widget_message_video_thumb"
	selForwarded     = ".tgme_widget_message_forwarded_from"
)

// Ensure Extractor implements tme.Extractor at compile time.
var _ tme.Extractor = (*Extractor)(nil)

// Extractor extracts typed records from preview page markup.
type Extractor struct {
	baseURL string
	logger  zerolog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithBaseURL overrides the base URL used when assembling permalinks.
// Defaults to tme.BaseURL.
func WithBaseURL(u string) Option {
	return func(e *Extractor) {
		e.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithLogger sets the logger for skip diagnostics.
// Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		baseURL: tme.BaseURL,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractProfile classifies a profile document and extracts the matching
// channel, bot or group record.
func (e *Extractor) ExtractProfile(html string) (*tme.Resource, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	actionButton := strings.TrimSpace(doc.Find(selActionButton).Text())
	extraInfo := strings.TrimSpace(doc.Find(selPageExtra).Text())

	switch tme.DetectKind(actionButton, extraInfo) {
	case tme.KindChannel:
		return &tme.Resource{Channel: e.extractChannel(doc, extraInfo)}, nil
	case tme.KindBot:
		return &tme.Resource{Bot: e.extractBot(doc, extraInfo)}, nil
	case tme.KindGroup:
		return &tme.Resource{Group: e.extractGroup(doc, extraInfo)}, nil
	}

	return nil, tme.Errorf(tme.EUNKNOWN, "Unknown resource type")
}

// extractChannel reads the channel fields. Subscriber counts on profile
// pages are rendered as full space-grouped digits, unlike the abbreviated
// counts on message widgets, so this uses plain digit-group parsing.
func (e *Extractor) extractChannel(doc *goquery.Document, extraInfo string) *tme.Channel {
	return &tme.Channel{
		Type:        string(tme.KindChannel),
		Name:        pageName(doc),
		Avatar:      pageAvatar(doc),
		Subscribers: tme.ParseCount(extraInfo),
		Description: pageDescription(doc),
		IsVerified:  pageVerified(doc),
	}
}

// extractBot reads the bot fields. The extra-info slot of a bot page
// shows "@handle" instead of a count.
func (e *Extractor) extractBot(doc *goquery.Document, extraInfo string) *tme.Bot {
	return &tme.Bot{
		Type:        string(tme.KindBot),
		Name:        pageName(doc),
		Username:    strings.TrimPrefix(extraInfo, "@"),
		Avatar:      pageAvatar(doc),
		Description: pageDescription(doc),
	}
}

func (e *Extractor) extractGroup(doc *goquery.Document, extraInfo string) *tme.Group {
	members, online := tme.ParseMemberCounts(extraInfo)
	return &tme.Group{
		Type:        string(tme.KindGroup),
		Name:        pageName(doc),
		Avatar:      pageAvatar(doc),
		Members:     members,
		Online:      online,
		Description: pageDescription(doc),
		IsVerified:  pageVerified(doc),
	}
}

func parseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, tme.Errorf(tme.EINTERNAL, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

func pageName(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(selPageTitle).Text())
}

func pageDescription(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find(selPageDesc).Text())
}

// pageAvatar returns the profile photo URL, or nil when the page has no
// photo. The distinction between absent and empty matters to callers, so
// this is a pointer rather than an empty string.
func pageAvatar(doc *goquery.Document) *string {
	src, ok := doc.Find(selPagePhoto).Attr("src")
	if !ok || src == "" {
		return nil
	}
	return &src
}

func pageVerified(doc *goquery.Document) int {
	if doc.Find(selVerifiedIcon).Length() > 0 {
		return 1
	}
	return 0
}
