// Package api exposes brief generation over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gestion-eventos/briefd/pkg/config"
	"github.com/gestion-eventos/briefd/pkg/database"
	"github.com/gestion-eventos/briefd/pkg/document"
	"github.com/gestion-eventos/briefd/pkg/generator"
	"github.com/gestion-eventos/briefd/pkg/metrics"
	"github.com/gestion-eventos/briefd/pkg/render"
)

// BriefSource loads the raw brief input of a stored event.
type BriefSource interface {
	LoadBriefInput(ctx context.Context, id string) (map[string]any, error)
}

// HealthChecker reports database health.
type HealthChecker interface {
	Health(ctx context.Context) (*database.HealthStatus, error)
}

// Server is the HTTP API server.
type Server struct {
	cfg        *config.Config
	engine     *gin.Engine
	httpServer *http.Server
	metrics    *metrics.Metrics
	renderOpts render.Options
	format     document.Format

	source BriefSource   // nil when the database is disabled
	db     HealthChecker // nil when the database is disabled
}

// NewServer creates the server and registers every route.
func NewServer(cfg *config.Config, m *metrics.Metrics) (*Server, error) {
	format := document.Format(cfg.Document.Format)
	if _, err := document.NewWriter(format); err != nil {
		return nil, err
	}

	engine := gin.New()
	s := &Server{
		cfg:     cfg,
		engine:  engine,
		metrics: m,
		renderOpts: render.Options{
			Creator:     cfg.Document.Creator,
			TitlePrefix: cfg.Document.TitlePrefix,
		},
		format: format,
	}
	s.setupRoutes()
	return s, nil
}

// SetEventSource enables GET /api/v1/events/:id/brief.
func (s *Server) SetEventSource(src BriefSource) {
	s.source = src
}

// SetDatabase adds the database to the health check.
func (s *Server) SetDatabase(db HealthChecker) {
	s.db = db
}

func (s *Server) setupRoutes() {
	s.engine.Use(gin.Recovery(), requestID(), securityHeaders(), accessLog())

	s.engine.GET("/health", s.healthHandler)
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := s.engine.Group("/api/v1")
	v1.Use(bodyLimit(s.cfg.Server.MaxBodyBytes))
	v1.POST("/briefs", s.generateBriefHandler)
	v1.POST("/briefs/preview", s.previewBriefHandler)
	v1.GET("/events/:id/brief", s.eventBriefHandler)
}

// Handler returns the routed handler (used by tests and Start).
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves HTTP on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// generatorFor returns a generator for the requested format, or the
// configured one when format is empty.
func (s *Server) generatorFor(format string) (*generator.Generator, error) {
	f := s.format
	if format != "" {
		f = document.Format(format)
	}
	w, err := document.NewWriter(f)
	if err != nil {
		return nil, err
	}
	return generator.New(w, s.renderOpts), nil
}
