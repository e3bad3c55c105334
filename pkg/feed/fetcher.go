package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultUserAgent is sent with feed requests, some publishers reject non-browser clients
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// DefaultTimeout limits a single feed request
const DefaultTimeout = 5 * time.Second

// Fetcher retrieves raw feed documents via HTTP
type Fetcher struct {
	client  *resty.Client
	timeout time.Duration
}

// NewFetcher creates a feed fetcher with the given per-request timeout and user agent.
// Requests are made once, failed fetches are not retried.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent)

	return &Fetcher{client: client, timeout: timeout}
}

// Fetch returns the body of the feed document at feedURL
func (f *Fetcher) Fetch(ctx context.Context, feedURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req := f.client.R().SetContext(ctx)
	addBrowserHeaders(req)

	resp, err := req.Get(feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	return resp.Body(), nil
}
