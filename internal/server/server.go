// Package server hosts the page over HTTP. The document is re-rendered on
// every request so the footer year follows the clock.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rohancherukuri/portfolio/internal/content"
	"github.com/Rohancherukuri/portfolio/internal/logger"
	"github.com/Rohancherukuri/portfolio/internal/page"
	"github.com/Rohancherukuri/portfolio/internal/theme"
	"github.com/Rohancherukuri/portfolio/internal/view"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	engine  *gin.Engine
	log     *logger.Logger
	theme   theme.Theme
	profile content.Profile
	now     func() time.Time
}

type Option func(*Server)

// WithClock sets the clock passed to every render.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New wires the routes for t and p.
func New(t theme.Theme, p content.Profile, log *logger.Logger, opts ...Option) *Server {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Named("server")
	s := &Server{
		log:     log,
		theme:   t,
		profile: p,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/", s.index)
	r.HEAD("/", s.index)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.engine = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) index(c *gin.Context) {
	var buf bytes.Buffer
	b := view.New(s.theme, s.profile, view.WithClock(s.now))
	if err := page.Render(&buf, b); err != nil {
		s.log.Error(err, "render page")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.With("addr", addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
