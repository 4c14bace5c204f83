package network

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/ytthumbs/ytthumbs/util"
)

// Response is a fully read HTTP response.
type Response struct {
	URL        string
	StatusCode int

	// ContentLength is the length the server declared, or -1 when it declared none.
	ContentLength int64
	Header        http.Header
	Body          []byte
}

// Fetcher retrieves the resource at a URL.
// Implementations return an error for transport failures and for non-2xx statuses.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Response, error)
}

// FetcherFunc adapts an ordinary function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) (*Response, error)

// Fetch calls f(ctx, url).
func (f FetcherFunc) Fetch(ctx context.Context, url string) (*Response, error) {
	return f(ctx, url)
}

// StatusError reports a response whose status code was not 2xx.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// HTTPFetcher performs plain GET requests with no extra headers.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher returns a fetcher backed by the shared Client.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: Client}
}

// Fetch issues a GET request and reads the whole body.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	client := f.Client
	if client == nil {
		client = Client
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}

	return &Response{
		URL:           url,
		StatusCode:    resp.StatusCode,
		ContentLength: resp.ContentLength,
		Header:        resp.Header,
		Body:          body,
	}, nil
}
