package youtube

import (
	"context"
	"errors"

	"github.com/ytthumbs/ytthumbs/network"
)

var errUnreachable = errors.New("connection refused")

// fixture answers fetches from a fixed table and records every requested URL.
type fixture struct {
	responses map[string]*network.Response
	requested []string
}

func newFixture() *fixture {
	return &fixture{responses: make(map[string]*network.Response)}
}

func (f *fixture) serve(url string, body []byte, declared int64) {
	f.responses[url] = &network.Response{
		URL:           url,
		StatusCode:    200,
		ContentLength: declared,
		Body:          body,
	}
}

func (f *fixture) Fetch(_ context.Context, url string) (*network.Response, error) {
	f.requested = append(f.requested, url)
	resp, ok := f.responses[url]
	if !ok {
		return nil, errUnreachable
	}
	return resp, nil
}
