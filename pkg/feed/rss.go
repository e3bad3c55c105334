package feed

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/umputun/ainews/pkg/domain"
)

// RSS represents the root RSS 2.0 element
type RSS struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Atom    string      `xml:"xmlns:atom,attr"`
	Channel *RSSChannel `xml:"channel"`
}

// RSSChannel represents an RSS channel
type RSSChannel struct {
	XMLName       xml.Name   `xml:"channel"`
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	Language      string     `xml:"language,omitempty"`
	AtomLink      *AtomLink  `xml:"http://www.w3.org/2005/Atom link"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*RSSItem `xml:"item"`
}

// AtomLink represents an Atom link element within RSS
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// RSSItem represents an item in an RSS feed
type RSSItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	Categories  []string `xml:"category"`
}

// Publisher renders aggregated news back as an RSS feed
type Publisher struct {
	baseURL string
	now     func() time.Time
}

// NewPublisher creates a publisher for a site served at baseURL
func NewPublisher(baseURL string) *Publisher {
	return &Publisher{baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// GenerateRSS creates an RSS 2.0 feed from news items, limited to the given category if not empty
func (p *Publisher) GenerateRSS(items []domain.NewsItem, category domain.Category) (string, error) {
	title := "AI 科技新闻"
	selfLink := p.baseURL + "/rss"
	if category != "" {
		title = fmt.Sprintf("AI 科技新闻 - %s", category)
		selfLink += "?category=" + url.QueryEscape(string(category))
	}

	rssItems := make([]*RSSItem, 0, len(items))
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		rssItems = append(rssItems, convertToRSSItem(item))
	}

	rss := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          p.baseURL + "/",
			Description:   "汇聚 TechCrunch 与 The Verge 最新动态",
			Language:      "zh-cn",
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: p.now().Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(rss, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

func convertToRSSItem(item domain.NewsItem) *RSSItem {
	res := &RSSItem{
		Title:       item.Title,
		Link:        item.Link,
		GUID:        item.Link,
		Description: item.Summary,
		Categories:  []string{string(item.Source)},
	}
	if item.Category != "" {
		res.Categories = append(res.Categories, string(item.Category))
	}
	if !item.Published.IsZero() {
		res.PubDate = item.Published.Format(time.RFC1123Z)
	}
	return res
}
