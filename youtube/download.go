package youtube

import (
	"context"
	"fmt"

	"github.com/ytthumbs/ytthumbs/filesystem"
	"github.com/ytthumbs/ytthumbs/log"
)

// Download saves the best available thumbnail of id to path and reports which tier was saved.
//
// The maxresdefault image is kept only when its declared Content-Length exceeds
// PlaceholderSize. Otherwise, or when that request fails, hqdefault is fetched
// and written as is. The file lands via a temporary sibling and a rename, so a
// failed attempt leaves whatever was at path before untouched.
func (c *Client) Download(ctx context.Context, id, path string) (Quality, error) {
	maxRes := ThumbnailURLOf(id, MaxRes)
	log.Debugf("fetching %s", maxRes)

	resp, err := c.Fetcher.Fetch(ctx, maxRes)
	switch {
	case err != nil:
		log.Warnf("%s failed, falling back to %s: %v", MaxRes, HQ, err)
	case resp.ContentLength <= c.PlaceholderSize:
		log.Infof("%s for %s looks like a placeholder (Content-Length %d), falling back to %s", MaxRes, id, resp.ContentLength, HQ)
	default:
		if err := filesystem.WriteAtomic(path, resp.Body); err != nil {
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		return MaxRes, nil
	}

	hq := ThumbnailURLOf(id, HQ)
	log.Debugf("fetching %s", hq)

	resp, err = c.Fetcher.Fetch(ctx, hq)
	if err != nil {
		return "", fmt.Errorf("download thumbnail %s: %w", id, err)
	}

	if err := filesystem.WriteAtomic(path, resp.Body); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return HQ, nil
}
