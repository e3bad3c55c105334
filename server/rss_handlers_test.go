package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/ainews/pkg/domain"
)

func TestServer_rssHandler(t *testing.T) {
	news := testNews(domain.Response{
		Success: true,
		Data: []domain.NewsItem{
			{Title: "GPT-5 发布", Link: "https://example.com/1", Published: time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC),
				Source: domain.SourceTechCrunch, Category: domain.CategoryModelRelease},
			{Title: "New SDK", Link: "https://example.com/2", Source: domain.SourceTheVerge, Category: domain.CategoryDevTools},
		},
	})
	srv := New(testConfig(":8080"), news, "1.2.3", false)

	t.Run("all items", func(t *testing.T) {
		req := httptest.NewRequest("GET", "http://news.example.com/rss", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, `<link>http://news.example.com/</link>`)
		assert.Contains(t, body, `<title>GPT-5 发布</title>`)
		assert.Contains(t, body, `<title>New SDK</title>`)
	})

	t.Run("category filter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/rss?category="+url.QueryEscape(string(domain.CategoryDevTools)), http.NoBody)
		req.Header.Set("X-Forwarded-Proto", "https")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `<link>https://example.com/</link>`)
		assert.Contains(t, body, `<title>New SDK</title>`)
		assert.NotContains(t, body, `GPT-5`)
	})

	t.Run("unknown category", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/rss?category=sports", http.NoBody)
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	assert.Len(t, news.NewsCalls(), 2, "invalid requests don't collect news")
}
