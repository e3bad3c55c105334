package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/umputun/ainews/pkg/domain"
)

// newsHandler returns aggregated news. The response is always 200, failures are
// reported through the demo dataset and isMock flag.
func (s *Server) newsHandler(w http.ResponseWriter, r *http.Request) {
	resp := s.news.News(r.Context())
	if resp.Data == nil {
		resp.Data = []domain.NewsItem{}
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// indexHandler renders the news page, items are loaded by the page itself
func (s *Server) indexHandler(w http.ResponseWriter, _ *http.Request) {
	data := struct {
		Version    string
		Categories []domain.Category
	}{
		Version:    s.version,
		Categories: domain.Categories,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		log.Printf("[ERROR] failed to render page: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}
