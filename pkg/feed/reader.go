package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/ainews/pkg/domain"
)

// Reader fetches a feed and parses it into news items
type Reader struct {
	fetcher *Fetcher
	parser  *Parser
}

// NewReader creates a reader with the given fetch timeout and user agent
func NewReader(timeout time.Duration, userAgent string) *Reader {
	return &Reader{fetcher: NewFetcher(timeout, userAgent), parser: NewParser()}
}

// Read fetches and parses the feed at feedURL
func (r *Reader) Read(ctx context.Context, feedURL string) ([]domain.NewsItem, error) {
	data, err := r.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}

	items, err := r.parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("read feed %s: %w", feedURL, err)
	}
	return items, nil
}
