package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/logger"
)

// Config holds the HTTP server configuration.
type Config struct {
	// Addr is the listen address as host:port.
	Addr string

	// ModelsDir is the directory exported GLB files are served from.
	ModelsDir string

	// RateLimit is the sustained generation requests per second.
	RateLimit float64

	// RateBurst is the generation rate limiter burst size.
	RateBurst int
}

// withDefaults returns a copy with unset fields filled from the
// application defaults.
func (c Config) withDefaults() Config {
	def := domain.DefaultAppSettings().Server
	if c.Addr == "" {
		c.Addr = def.Addr
	}
	if c.RateLimit <= 0 {
		c.RateLimit = def.RateLimit
	}
	if c.RateBurst <= 0 {
		c.RateBurst = def.RateBurst
	}
	return c
}

// Server is the HTTP API server for wingforge.
type Server struct {
	ports   *Ports
	cfg     Config
	limiter *rate.Limiter
	engine  *gin.Engine
}

// NewServer creates a new HTTP server with the given ports.
func NewServer(ports *Ports, cfg Config) (*Server, error) {
	if ports == nil {
		ports = &Ports{}
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}
	cfg = cfg.withDefaults()

	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		ports:   ports,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
	s.engine = s.buildRouter()

	return s, nil
}

// buildRouter wires all routes onto a fresh engine.
func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLog)

	r.GET("/healthz", s.handleHealth)
	r.GET("/models/:filename", s.handleModelFile)

	api := r.Group("/api/v1")
	{
		api.POST("/wings", s.rateLimit, s.handleGenerate)
		api.GET("/wings", s.handleListWings)
		api.GET("/wings/:id", s.handleGetWing)
		api.GET("/airfoils", s.handleListAirfoils)
	}

	return r
}

// Handler returns the routing handler, for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP server on the configured address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// rateLimit rejects generation requests beyond the configured token bucket.
func (s *Server) rateLimit(c *gin.Context) {
	if !s.limiter.Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": "generation rate limit exceeded",
		})
		return
	}
	c.Next()
}

// requestLog records each request when verbose logging is on.
func requestLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	logger.Debug("%s %s -> %d (%s)",
		c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
		time.Since(start).Round(time.Microsecond))
}
