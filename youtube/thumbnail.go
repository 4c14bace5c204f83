package youtube

import (
	"fmt"

	"github.com/ytthumbs/ytthumbs/constant"
)

// Quality is a thumbnail resolution tier published by YouTube.
type Quality string

const (
	// MaxRes is the highest resolution tier. Not every video has one.
	MaxRes Quality = "maxresdefault"
	// HQ is always present and serves as the fallback tier.
	HQ Quality = "hqdefault"
)

// ThumbnailURL returns the maxresdefault image URL for id.
func ThumbnailURL(id string) string {
	return ThumbnailURLOf(id, MaxRes)
}

// ThumbnailURLOf returns the image URL for id at quality q.
func ThumbnailURLOf(id string, q Quality) string {
	return fmt.Sprintf(constant.ThumbnailURLTemplate, id, q)
}

// WatchURL returns the canonical watch page for id.
func WatchURL(id string) string {
	return fmt.Sprintf(constant.WatchURLTemplate, id)
}
