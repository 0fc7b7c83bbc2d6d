package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/katalvlaran/waypoint/cities"
	"github.com/katalvlaran/waypoint/config"
	"github.com/katalvlaran/waypoint/core"
	"github.com/katalvlaran/waypoint/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readHeaderTimeout = 5 * time.Second

// Server serves one graph snapshot.
type Server struct {
	graph    *core.Graph
	index    *cities.Index
	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics
	router   *gin.Engine
	upgrader websocket.Upgrader
	geo      bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithGeographic marks node points as packed DMS coordinates, adding lon/lat
// to node views and great-circle kilometres to roads and search results.
func WithGeographic() Option {
	return func(s *Server) { s.geo = true }
}

// WithProcessMetrics adds the Go runtime and process collectors to the
// registry.
func WithProcessMetrics() Option {
	return func(s *Server) {
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
}

// New builds a Server over a Clone of g. A nil g is a programming error and
// panics.
func New(g *core.Graph, cfg config.Config, opts ...Option) *Server {
	if g == nil {
		panic("server: New(nil graph)")
	}
	snapshot := g.Clone()
	s := &Server{
		graph:    snapshot,
		index:    cities.NewIndex(snapshot),
		cfg:      cfg,
		logger:   logging.Discard(),
		registry: prometheus.NewRegistry(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	s.metrics = newMetrics(s.registry)
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.router = s.routes()

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Registry returns the Prometheus registry backing /metrics.
func (s *Server) Registry() *prometheus.Registry { return s.registry }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry})))

	v1 := r.Group("/v1")
	v1.GET("/nodes", s.handleNodes)
	v1.GET("/nodes/nearest", s.handleNearest)
	v1.GET("/roads", s.handleRoads)
	v1.GET("/canvas", s.handleCanvas)
	v1.GET("/canvas/hit", s.handleCanvasHit)
	v1.POST("/search", s.handleSearch)
	v1.GET("/search/stream", s.handleStream)

	return r
}

// Run listens on cfg.Server.Addr until ctx ends, then shuts down gracefully
// within cfg.Server.ShutdownTimeout. Open streams see their request context
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("server listening", "addr", ln.Addr().String(), "nodes", s.graph.Len())

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	s.logger.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
