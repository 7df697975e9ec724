package tme

import (
	"encoding/json"
	"strings"
)

// ResourceKind identifies what a profile-style preview page represents.
type ResourceKind string

// ResourceKind values. The string values appear as the "type" field of
// the JSON output.
const (
	KindChannel ResourceKind = "channel"
	KindBot     ResourceKind = "bot"
	KindGroup   ResourceKind = "group"
	KindUnknown ResourceKind = "unknown"
)

// DetectKind classifies a profile page from its two text signals: the
// primary action-button label and the extra-info line. The action button
// is checked first because a bot's extra-info text may coincidentally
// match the group or channel patterns.
func DetectKind(actionButton, extraInfo string) ResourceKind {
	if strings.Contains(actionButton, "Start Bot") {
		return KindBot
	}
	if strings.Contains(extraInfo, "online") {
		return KindGroup
	}
	if strings.Contains(extraInfo, "subscribers") {
		return KindChannel
	}
	return KindUnknown
}

// Channel holds the fields of a channel profile page.
type Channel struct {
	Type        string  `json:"type"` // always "channel"
	Name        string  `json:"name"`
	Avatar      *string `json:"avatar"`
	Subscribers int     `json:"subscribers"`
	Description string  `json:"description"`
	IsVerified  int     `json:"isVerified"`
}

// Bot holds the fields of a bot profile page. The extra-info slot of a
// bot page shows "@handle" instead of a count, which becomes Username.
type Bot struct {
	Type        string  `json:"type"` // always "bot"
	Name        string  `json:"name"`
	Username    string  `json:"username"`
	Avatar      *string `json:"avatar"`
	Description string  `json:"description"`
}

// Group holds the fields of a public group profile page.
type Group struct {
	Type        string  `json:"type"` // always "group"
	Name        string  `json:"name"`
	Avatar      *string `json:"avatar"`
	Members     int     `json:"members"`
	Online      int     `json:"online"`
	Description string  `json:"description"`
	IsVerified  int     `json:"isVerified"`
}

// Resource is the result of resolving an identifier: exactly one of the
// variant pointers is set. It marshals to the flat JSON shape of the
// populated variant.
type Resource struct {
	Channel *Channel
	Bot     *Bot
	Group   *Group
	Post    *Post
}

// Kind reports which variant is populated. Post variants report the
// post's own type (channel_post or group_post).
func (r *Resource) Kind() string {
	switch {
	case r.Channel != nil:
		return r.Channel.Type
	case r.Bot != nil:
		return r.Bot.Type
	case r.Group != nil:
		return r.Group.Type
	case r.Post != nil:
		return r.Post.Type
	}
	return string(KindUnknown)
}

// MarshalJSON flattens the resource to its populated variant.
func (r *Resource) MarshalJSON() ([]byte, error) {
	switch {
	case r.Channel != nil:
		return json.Marshal(r.Channel)
	case r.Bot != nil:
		return json.Marshal(r.Bot)
	case r.Group != nil:
		return json.Marshal(r.Group)
	case r.Post != nil:
		return json.Marshal(r.Post)
	}
	return nil, Errorf(EINTERNAL, "resource has no populated variant")
}
