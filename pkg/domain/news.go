package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Source identifies the publisher a news item came from
type Source string

const (
	SourceTechCrunch Source = "TechCrunch"
	SourceTheVerge   Source = "The Verge"
)

// Category is the coarse topic bucket shown as a filter on the page
type Category string

// categories are serialized with the labels the page filters on
const (
	CategoryModelRelease Category = "大模型发布"
	CategoryDevTools     Category = "开发工具"
	CategoryIndustry     Category = "行业资讯"
)

// Categories lists all categories in display order
var Categories = []Category{CategoryModelRelease, CategoryDevTools, CategoryIndustry}

// NewsItem represents a single normalized news entry
type NewsItem struct {
	Title      string
	Link       string
	Published  time.Time // zero if the feed had no valid date
	Summary    string
	Source     Source
	Category   Category
	Translated bool
}

// newsItemJSON is the wire shape of NewsItem
type newsItemJSON struct {
	Title        string   `json:"title"`
	Link         string   `json:"link"`
	PubDate      string   `json:"pubDate"`
	Summary      string   `json:"summary"`
	Source       Source   `json:"source"`
	Category     Category `json:"category,omitempty"`
	IsTranslated bool     `json:"isTranslated,omitempty"`
}

// MarshalJSON renders the item with pubDate as RFC3339, empty for unknown dates
func (n NewsItem) MarshalJSON() ([]byte, error) {
	w := newsItemJSON{
		Title:        n.Title,
		Link:         n.Link,
		Summary:      n.Summary,
		Source:       n.Source,
		Category:     n.Category,
		IsTranslated: n.Translated,
	}
	if !n.Published.IsZero() {
		w.PubDate = n.Published.UTC().Format(time.RFC3339)
	}
	return json.Marshal(w)
}

// UnmarshalJSON parses the wire shape produced by MarshalJSON
func (n *NewsItem) UnmarshalJSON(data []byte) error {
	var w newsItemJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*n = NewsItem{
		Title:      w.Title,
		Link:       w.Link,
		Summary:    w.Summary,
		Source:     w.Source,
		Category:   w.Category,
		Translated: w.IsTranslated,
	}
	if w.PubDate != "" {
		ts, err := time.Parse(time.RFC3339, w.PubDate)
		if err != nil {
			return fmt.Errorf("parse pubDate %q: %w", w.PubDate, err)
		}
		n.Published = ts
	}
	return nil
}

// Response is the payload of the news endpoint
type Response struct {
	Success       bool       `json:"success"`
	Data          []NewsItem `json:"data"`
	IsMock        bool       `json:"isMock"`
	LastUpdated   string     `json:"lastUpdated"`
	GeminiEnabled bool       `json:"geminiEnabled"`
}
