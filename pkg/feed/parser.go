package feed

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/ainews/pkg/domain"
)

// Parser converts RSS/Atom documents into normalized news items
type Parser struct {
	policy *bluemonday.Policy
}

// NewParser creates a new feed parser
func NewParser() *Parser {
	return &Parser{policy: bluemonday.StrictPolicy().AddSpaceWhenStrippingTag(true)}
}

// Parse parses a feed document. Source is derived from the feed's own title,
// category from the item's title and summary.
func (p *Parser) Parse(data []byte) ([]domain.NewsItem, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	source := detectSource(feed.Title)
	items := make([]domain.NewsItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}

		summary := p.snippet(item.Description)
		if summary == "" {
			summary = p.snippet(item.Content)
		}

		parsed := domain.NewsItem{
			Title:    strings.TrimSpace(item.Title),
			Link:     item.Link,
			Summary:  summary,
			Source:   source,
			Category: Categorize(item.Title, summary),
		}

		// parse publish time
		if item.PublishedParsed != nil {
			parsed.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			parsed.Published = *item.UpdatedParsed
		}

		items = append(items, parsed)
	}

	return items, nil
}

// snippet strips markup from feed html and collapses whitespace
func (p *Parser) snippet(s string) string {
	if s == "" {
		return ""
	}
	text := html.UnescapeString(p.policy.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}

// detectSource maps a feed title to a known publisher
func detectSource(feedTitle string) domain.Source {
	if strings.Contains(feedTitle, "Verge") {
		return domain.SourceTheVerge
	}
	return domain.SourceTechCrunch
}
