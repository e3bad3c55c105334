package server

import (
	"fmt"
	"log"
	"net/http"
	"slices"

	"github.com/umputun/ainews/pkg/domain"
	"github.com/umputun/ainews/pkg/feed"
)

// rssHandler serves aggregated news as RSS, optionally limited by ?category=
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))
	if category != "" && !slices.Contains(domain.Categories, category) {
		http.Error(w, fmt.Sprintf("unknown category %q", category), http.StatusBadRequest)
		return
	}

	resp := s.news.News(r.Context())

	rss, err := feed.NewPublisher(baseURL(r)).GenerateRSS(resp.Data, category)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// baseURL returns scheme and host the request was made to
func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
