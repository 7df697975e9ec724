package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previewkit/tme"
	tmegoquery "github.com/previewkit/tme/goquery"
)

func TestExtractor_ExtractPost(t *testing.T) {
	t.Parallel()

	t.Run("extracts channel post", func(t *testing.T) {
		t.Parallel()

		html := `<div class="tgme_widget_message" data-post="lepragram/33399">
	<a class="tgme_widget_message_owner_name" href="https://t.me/Lepragram"><span>Лепра</span></a>
	<div class="tgme_widget_message_text">Это её первый рабочий день</div>
	<video src="https://cdn4.telesco.pe/file/vid.mp4"></video>
	<div class="tgme_widget_message_reactions">
		<span class="tgme_reaction"><i class="emoji"><b>🥰</b></i> 1.47K</span>
		<span class="tgme_reaction"><i class="emoji"><b>🤗</b></i> 237</span>
	</div>
	<span class="tgme_widget_message_views">150K</span>
	<a class="tgme_widget_message_date" href="https://t.me/lepragram/33399"><time datetime="2023-09-18T05:00:38+00:00"></time></a>
</div>`

		e := tmegoquery.NewExtractor()
		post, err := e.ExtractPost(html)
		require.NoError(t, err)

		assert.Equal(t, "channel_post", post.Type)
		assert.Equal(t, tme.Author{Name: "Лепра", Username: "Lepragram"}, post.Author)
		assert.Equal(t, "Это её первый рабочий день", post.Text)
		assert.Equal(t, []tme.MediaItem{{Type: tme.MediaVideo, URL: "https://cdn4.telesco.pe/file/vid.mp4"}}, post.Media)
		assert.Equal(t, []tme.Reaction{
			{Emoji: "🥰", Count: 1470},
			{Emoji: "🤗", Count: 237},
		}, post.Reactions)
		assert.Equal(t, 150000, post.Views)
		assert.Equal(t, "2023-09-18T05:00:38+00:00", post.Date)
	})

	t.Run("extracts group post with distinct author", func(t *testing.T) {
		t.Parallel()

		html := `<div class="tgme_widget_message" data-post="restorecord/207242">
	<a class="tgme_widget_message_owner_name" href="https://t.me/restorecord"><span>RestoreCord</span></a>
	<a class="tgme_widget_message_author_name" href="https://t.me/Glassweaver"><span>Alex Glass</span></a>
	<div class="tgme_widget_message_text">Hi! Support question</div>
	<a class="tgme_widget_message_date" href="https://t.me/restorecord/207242"><time datetime="2025-10-15T15:29:03+00:00"></time></a>
</div>`

		e := tmegoquery.NewExtractor()
		post, err := e.ExtractPost(html)
		require.NoError(t, err)

		assert.Equal(t, "group_post", post.Type)
		assert.Equal(t, tme.Author{Name: "Alex Glass", Username: "Glassweaver"}, post.Author)
		assert.Empty(t, post.Media)
		assert.Empty(t, post.Reactions)
		assert.Zero(t, post.Views)
	})

	t.Run("missing message element reports not_found", func(t *testing.T) {
		t.Parallel()

		e := tmegoquery.NewExtractor()
		_, err := e.ExtractPost(`<html><body><div class="tgme_page">nothing here</div></body></html>`)
		require.Error(t, err)
		assert.Equal(t, tme.ENOTFOUND, tme.ErrorCode(err))
		assert.Equal(t, "Post not found", tme.ErrorMessage(err))
	})

	t.Run("author username empty when profile link missing", func(t *testing.T) {
		t.Parallel()

		html := `<div class="tgme_widget_message">
	<div class="tgme_widget_message_owner_name"><span>No Link</span></div>
</div>`

		e := tmegoquery.NewExtractor()
		post, err := e.ExtractPost(html)
		require.NoError(t, err)
		assert.Equal(t, tme.Author{Name: "No Link", Username: ""}, post.Author)
	})

	t.Run("missing date yields empty string", func(t *testing.T) {
		t.Parallel()

		html := `<div class="tgme_widget_message">
	<a class="tgme_widget_message_owner_name" href="https://t.me/x"><span>X</span></a>
</div>`

		e := tmegoquery.NewExtractor()
		post, err := e.ExtractPost(html)
		require.NoError(t, err)
		assert.Empty(t, post.Date)
	})

	t.Run("drops reactions with empty emoji or zero count", func(t *testing.T) {
		t.Parallel()

		html := `<div class="tgme_widget_message">
	<div class="tgme_widget_message_reactions">
		<span class="tgme_reaction"><i class="emoji"><b>🤣</b></i> 152</span>
		<span class="tgme_reaction"><i class="emoji"><b></b></i> 99</span>
		<span class="tgme_reaction"><i class="emoji"><b>👍</b></i> 0</span>
		<span class="tgme_reaction"><i class="emoji"><b>🔥</b></i> 3</span>
	</div>
</div>`

		e := tmegoquery.NewExtractor()
		post, err := e.ExtractPost(html)
		require.NoError(t, err)

		assert.Equal(t, []tme.Reaction{
			{Emoji: "🤣", Count: 152},
			{Emoji: "🔥", Count: 3},
		}, post.Reactions)
	})
}
