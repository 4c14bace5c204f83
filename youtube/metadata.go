package youtube

import (
	"context"

	"github.com/ytthumbs/ytthumbs/log"
)

// Metadata is what the watch page tells us about a video.
type Metadata struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Metadata fetches the watch page for id and scrapes its Open Graph tags.
// It never fails: on any fetch error Title and Description are left empty,
// while ThumbnailURL is always set.
func (c *Client) Metadata(ctx context.Context, id string) Metadata {
	meta := Metadata{ThumbnailURL: ThumbnailURL(id)}

	if c.MetadataTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.MetadataTimeout)
		defer cancel()
	}

	url := WatchURL(id)
	log.Debugf("fetching watch page %s", url)

	resp, err := c.Fetcher.Fetch(ctx, url)
	if err != nil {
		log.Warnf("metadata for %s unavailable: %v", id, err)
		return meta
	}

	meta.Title, meta.Description = c.Scraper.Scrape(resp.Body)
	return meta
}

// Lookup is Metadata for callers that stop on cancellation.
// It returns ctx.Err() when ctx is already done before or after the fetch.
func (c *Client) Lookup(ctx context.Context, id string) (Metadata, error) {
	if err := ctx.Err(); err != nil {
		return Metadata{}, err
	}

	meta := c.Metadata(ctx, id)
	if err := ctx.Err(); err != nil {
		return Metadata{}, err
	}

	return meta, nil
}
