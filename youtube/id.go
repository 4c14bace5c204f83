// Package youtube extracts video identifiers from YouTube URLs, derives thumbnail URLs,
// scrapes watch-page metadata and downloads thumbnails.
package youtube

import (
	"regexp"

	"github.com/samber/mo"
)

// idPatterns are tried in order; each captures an 11-character identifier.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
}

// SupportedFormats lists the URL shapes ExtractVideoID understands.
var SupportedFormats = []string{
	"https://www.youtube.com/watch?v=VIDEO_ID",
	"https://youtu.be/VIDEO_ID",
	"https://www.youtube.com/embed/VIDEO_ID",
}

// ExtractVideoID finds the video identifier in url.
// The search is unanchored, so surrounding text and extra query parameters are ignored.
func ExtractVideoID(url string) mo.Option[string] {
	for _, pattern := range idPatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return mo.Some(match[1])
		}
	}

	return mo.None[string]()
}
