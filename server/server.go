package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/ainews/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/news.go -pkg mocks -skip-ensure -fmt goimports . NewsProvider

//go:embed templates/*.html
var templatesFS embed.FS

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	news    NewsProvider
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
	page       *template.Template
}

// NewsProvider returns the aggregated news response, it never fails
type NewsProvider interface {
	News(ctx context.Context) domain.Response
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, news NewsProvider, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		news:    news,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
		page:    template.Must(template.ParseFS(templatesFS, "templates/index.html")),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("ainews", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /news", s.newsHandler)
	})

	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
	})

	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /{$}", s.indexHandler)
}
