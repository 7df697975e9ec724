package goquery

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/previewkit/tme"
)

// bgImageRE matches the background-image URL inside an inline style
// attribute, e.g. style="background-image:url('https://...')".
var bgImageRE = regexp.MustCompile(`url\('([^']+)'\)`)

// extractMedia collects the attachments of scope. Output order is fixed:
// all videos in document order, then all photos in document order, then
// video thumbnails only when no direct video source was found. Callers
// rely on videos and photos preceding thumbnail fallbacks, regardless of
// their relative position in the markup.
func extractMedia(scope *goquery.Selection) []tme.MediaItem {
	media := []tme.MediaItem{}

	scope.Find("video").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && src != "" {
			media = append(media, tme.MediaItem{Type: tme.MediaVideo, URL: src})
		}
	})
	videos := len(media)

	scope.Find(selPhotoWrap).Each(func(_ int, s *goquery.Selection) {
		if url := backgroundImageURL(s); url != "" {
			media = append(media, tme.MediaItem{Type: tme.MediaPhoto, URL: url})
		}
	})

	if videos == 0 {
		scope.Find(selVideoThumb).Each(func(_ int, s *goquery.Selection) {
			if url := backgroundImageURL(s); url != "" {
				media = append(media, tme.MediaItem{Type: tme.MediaVideoThumb, URL: url})
			}
		})
	}

	return media
}

func backgroundImageURL(s *goquery.Selection) string {
	style, ok := s.Attr("style")
	if !ok {
		return ""
	}
	m := bgImageRE.FindStringSubmatch(style)
	if m == nil {
		return ""
	}
	return m[1]
}
