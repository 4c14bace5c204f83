// Package network provides the HTTP client and the fetch capability used to reach YouTube.
package network

import (
	"net/http"
	"time"
)

// Client is the HTTP client shared across the application.
// It sets no request timeouts; callers bound requests through their context.
var Client = &http.Client{
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	return t
}
