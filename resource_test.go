package tme_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previewkit/tme"
)

func TestDetectKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		actionButton string
		extraInfo    string
		want         tme.ResourceKind
	}{
		{"channel from subscribers", "Preview channel", "363 520 subscribers", tme.KindChannel},
		{"group from online", "View in Telegram", "1 739 members, 41 online", tme.KindGroup},
		{"bot from action button", "Start Bot", "@roundifyrobot", tme.KindBot},
		{"bot wins even when extra mentions online", "Start Bot", "always online", tme.KindBot},
		{"group wins over channel when both match", "", "10 subscribers, 2 online", tme.KindGroup},
		{"nothing matches", "Open", "some page", tme.KindUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tme.DetectKind(tt.actionButton, tt.extraInfo))
		})
	}
}

func TestResource_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("flattens to the populated variant", func(t *testing.T) {
		t.Parallel()

		res := &tme.Resource{Channel: &tme.Channel{
			Type:        "channel",
			Name:        "Лепра",
			Subscribers: 363520,
		}}

		data, err := json.Marshal(res)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "channel", got["type"])
		assert.Equal(t, "Лепра", got["name"])
		assert.EqualValues(t, 363520, got["subscribers"])
		assert.Nil(t, got["avatar"]) // nullable, not omitted
	})

	t.Run("empty resource is an error", func(t *testing.T) {
		t.Parallel()

		_, err := json.Marshal(&tme.Resource{})
		assert.Error(t, err)
	})
}

func TestResource_Kind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bot", (&tme.Resource{Bot: &tme.Bot{Type: "bot"}}).Kind())
	assert.Equal(t, "group_post", (&tme.Resource{Post: &tme.Post{Type: "group_post"}}).Kind())
	assert.Equal(t, "unknown", (&tme.Resource{}).Kind())
}
