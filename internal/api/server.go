package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robgonnella/noip-sensor/internal/exception"
	"github.com/robgonnella/noip-sensor/internal/logger"
)

// Server serves device status, manual resets and prometheus metrics
type Server struct {
	controller Controller
	events     EventStreamer
	pprof      bool
	engine     *gin.Engine
	upgrader   websocket.Upgrader
	srv        *http.Server
	log        logger.Logger
}

// Option configures a Server
type Option func(s *Server)

// WithEvents serves accessory events over a websocket at /api/events
func WithEvents(events EventStreamer) Option {
	return func(s *Server) {
		s.events = events
	}
}

// WithPprof registers the pprof handlers under /debug/pprof
func WithPprof() Option {
	return func(s *Server) {
		s.pprof = true
	}
}

// New returns a new Server listening on listen once started
func New(listen string, controller Controller, registry *prometheus.Registry, opts ...Option) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		controller: controller,
		engine:     gin.New(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		log: logger.New(),
	}

	for _, o := range opts {
		o(s)
	}

	s.engine.Use(gin.Recovery(), cors.Default(), s.requestLogger())

	if s.pprof {
		pprof.Register(s.engine)
	}

	if s.events != nil {
		s.engine.GET("/api/events", s.streamEvents)
	}

	s.engine.GET("/healthz", s.health)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	group := s.engine.Group("/api/accessories")
	group.GET("", s.list)
	group.GET("/:hostname", s.get)
	group.POST("/:hostname/reset", s.reset)

	s.srv = &http.Server{
		Addr:              listen,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the underlying http handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until Stop is called
func (s *Server) Start() error {
	s.log.Info().Str("listen", s.srv.Addr).Msg("starting api server")

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		s.log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("api request")
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) list(c *gin.Context) {
	c.JSON(http.StatusOK, s.controller.Pollers())
}

func (s *Server) get(c *gin.Context) {
	snapshot, err := s.controller.Poller(c.Param("hostname"))

	if err != nil {
		s.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (s *Server) reset(c *gin.Context) {
	hostname := c.Param("hostname")

	if err := s.controller.Reset(hostname); err != nil {
		s.abort(c, err)
		return
	}

	snapshot, err := s.controller.Poller(hostname)

	if err != nil {
		s.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (s *Server) abort(c *gin.Context, err error) {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, exception.ErrUnknownDevice):
		code = http.StatusNotFound
	case errors.Is(err, exception.ErrCooldown):
		code = http.StatusConflict
	}

	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}
