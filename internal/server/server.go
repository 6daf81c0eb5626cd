// Package server serves the rendered portfolio over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/render"
)

const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	Store    *content.Store
	Renderer *render.Renderer
	// AssetsDir holds the résumé, portrait and motion driver. Files are
	// looked up once, in New.
	AssetsDir string
	Logger    *zap.Logger
}

// Server serves the rendered page and its assets.
type Server struct {
	engine    *gin.Engine
	store     *content.Store
	renderer  *render.Renderer
	assetsDir string
	assets    render.Assets
	logger    *zap.Logger
}

// New builds the gin engine and its routes.
func New(opts Options) (*Server, error) {
	if opts.Store == nil || opts.Renderer == nil {
		return nil, errors.New("server: store and renderer are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	salt, err := newSalt()
	if err != nil {
		return nil, err
	}

	s := &Server{
		store:     opts.Store,
		renderer:  opts.Renderer,
		assetsDir: opts.AssetsDir,
		assets:    render.StatAssets(opts.AssetsDir),
		logger:    logger,
	}
	s.warnMissing()

	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders(), requestLogger(logger, salt))
	r.SetHTMLTemplate(s.renderer.Template())
	s.routes(r)
	s.engine = r
	return s, nil
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.handlePage)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.StaticFS("/static", http.FS(render.Static()))

	if s.assets.Resume {
		r.StaticFile("/"+render.ResumeFile, filepath.Join(s.assetsDir, render.ResumeFile))
	}
	if s.assets.Profile {
		r.StaticFile("/"+render.ProfileFile, filepath.Join(s.assetsDir, render.ProfileFile))
	}
	if s.assets.Motion {
		r.StaticFile("/"+render.MotionFile, filepath.Join(s.assetsDir, render.MotionFile))
		r.StaticFile("/"+render.WasmExecFile, filepath.Join(s.assetsDir, render.WasmExecFile))
	}
}

func (s *Server) handlePage(c *gin.Context) {
	view, err := s.renderer.View(s.store.Page(), s.assets)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "Sorry, the page could not be rendered.")
		return
	}
	c.HTML(http.StatusOK, render.PageTemplate, view)
}

func (s *Server) warnMissing() {
	if !s.assets.Resume {
		s.logger.Warn("résumé not found, download link disabled",
			zap.String("path", filepath.Join(s.assetsDir, render.ResumeFile)))
	}
	if !s.assets.Profile {
		s.logger.Warn("profile photo not found, showing placeholder",
			zap.String("path", filepath.Join(s.assetsDir, render.ProfileFile)))
	}
	if !s.assets.Motion {
		s.logger.Info("motion driver not found, page renders without animation",
			zap.String("dir", s.assetsDir))
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Assets reports the optional files found at startup.
func (s *Server) Assets() render.Assets {
	return s.assets
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
