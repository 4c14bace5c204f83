package youtube

import (
	"time"

	"github.com/spf13/viper"
	"github.com/ytthumbs/ytthumbs/key"
	"github.com/ytthumbs/ytthumbs/network"
)

// Client talks to YouTube's watch and image endpoints through a Fetcher.
type Client struct {
	Fetcher network.Fetcher
	Scraper Scraper

	// MetadataTimeout bounds the watch-page request made by Metadata.
	MetadataTimeout time.Duration

	// PlaceholderSize is the Content-Length at or below which a maxresdefault
	// response is treated as YouTube's blank placeholder. This is a heuristic:
	// YouTube answers 200 with a small grey image when no maxres thumbnail exists.
	PlaceholderSize int64
}

// NewClient returns a Client using fetcher with the stock scraper and limits.
func NewClient(fetcher network.Fetcher) *Client {
	return &Client{
		Fetcher:         fetcher,
		Scraper:         RegexScraper{},
		MetadataTimeout: 10 * time.Second,
		PlaceholderSize: 1000,
	}
}

// FromConfig returns a Client over the shared HTTP client, tuned by the global configuration.
func FromConfig() (*Client, error) {
	scraper, err := ScraperByName(viper.GetString(key.MetadataParser))
	if err != nil {
		return nil, err
	}

	c := NewClient(network.NewHTTPFetcher())
	c.Scraper = scraper
	c.MetadataTimeout = time.Duration(viper.GetInt(key.MetadataTimeout)) * time.Second
	c.PlaceholderSize = viper.GetInt64(key.DownloadPlaceholderSize)
	return c, nil
}
