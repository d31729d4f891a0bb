// Package server hosts a single wizard behind a gin engine: an HTML form
// for browsers and a small JSON API for scripted clients.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-jobform/pkg/render"
	"github.com/goliatone/go-jobform/pkg/renderers/vanilla"
	"github.com/goliatone/go-jobform/pkg/wizard"
)

const shutdownTimeout = 5 * time.Second

// ErrNilWizard is returned when New is called without a wizard.
var ErrNilWizard = errors.New("server: wizard is nil")

// Option configures a Server.
type Option func(*Server)

// WithRenderer overrides the HTML renderer. The vanilla renderer is used by
// default.
func WithRenderer(renderer render.Renderer) Option {
	return func(s *Server) {
		if renderer != nil {
			s.renderer = renderer
		}
	}
}

// WithRenderOptions sets the theme, terms notice and hidden fields passed to
// the renderer on every page.
func WithRenderOptions(opts render.RenderOptions) Option {
	return func(s *Server) {
		s.renderOpts = opts
	}
}

// WithLogger routes request diagnostics to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithAllowedOrigins enables CORS for the JSON API.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = append(s.origins, origins...)
	}
}

// WithMode sets the gin mode (debug, release, test).
func WithMode(mode string) Option {
	return func(s *Server) {
		if mode != "" {
			s.mode = mode
		}
	}
}

// Server serialises every request against one wizard.
type Server struct {
	mu     sync.Mutex
	wizard *wizard.Wizard

	renderer   render.Renderer
	renderOpts render.RenderOptions
	logger     *log.Logger
	origins    []string
	mode       string
	engine     *gin.Engine
}

// New builds the server and its routes.
func New(w *wizard.Wizard, options ...Option) (*Server, error) {
	if w == nil {
		return nil, ErrNilWizard
	}
	s := &Server{
		wizard: w,
		logger: log.New(io.Discard, "", 0),
		mode:   gin.ReleaseMode,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.renderer == nil {
		renderer, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("server: configure renderer: %w", err)
		}
		s.renderer = renderer
	}

	gin.SetMode(s.mode)
	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), s.requestLogger())
	if len(s.origins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = s.origins
		corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
		s.engine.Use(cors.New(corsCfg))
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/healthz", s.health)
	s.engine.StaticFS("/assets", http.FS(vanilla.AssetsFS()))

	s.engine.GET("/", s.showForm)
	s.engine.POST("/", s.postForm)

	api := s.engine.Group("/api/v1")
	{
		api.GET("/state", s.state)
		api.POST("/fields/:name", s.setField)
		api.POST("/blur/:name", s.blur)
		api.POST("/navigate", s.navigate)
	}
}

// Handler exposes the engine for tests and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("server: listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Printf("server: %s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
