// Package server exposes a read-mostly HTTP mirror of the painter. Reads are
// served from the latest published snapshot; imports are queued to the
// event loop that owns the grid.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gridpaint/engine"
	"github.com/lixenwraith/gridpaint/grid"
	"github.com/lixenwraith/gridpaint/status"
)

// Backend is the painter as seen by HTTP handlers
type Backend interface {
	Latest() *engine.Snapshot
	Submit(ctx context.Context, d grid.Dense) error
}

// MaxBodyBytes bounds PUT /grid request bodies
const MaxBodyBytes = 4 << 20

// Server wraps the gin router and the http.Server around it
type Server struct {
	backend Backend
	metrics *status.Registry
	log     logrus.FieldLogger
	router  *gin.Engine
	http    *http.Server
}

// New builds the router. metrics may be nil.
func New(addr string, backend Backend, metrics *status.Registry, log logrus.FieldLogger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		backend: backend,
		metrics: metrics,
		log:     log,
		router:  gin.New(),
	}
	s.router.Use(gin.Recovery())
	s.router.Use(LoggerMiddleware(log))

	s.router.GET("/grid", s.getGrid)
	s.router.PUT("/grid", s.putGrid)
	s.router.GET("/grid.png", s.getGridPNG)
	s.router.GET("/palette", s.getPalette)
	s.router.GET("/cells/:key", s.getCell)
	s.router.GET("/viewport", s.getViewport)
	s.router.GET("/status", s.getStatus)

	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves in the background until Shutdown
func (s *Server) Start() {
	go func() {
		s.log.WithField("addr", s.http.Addr).Info("http mirror listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Error("http mirror failed")
		}
	}()
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// LoggerMiddleware logs one entry per request, level by status class
func LoggerMiddleware(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path += "?" + c.Request.URL.RawQuery
		}
		code := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"status_code": code,
			"latency_ms":  time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		})

		if msg := c.Errors.ByType(gin.ErrorTypePrivate).String(); msg != "" {
			entry.Error(msg)
			return
		}
		switch {
		case code >= 500:
			entry.Error("server error")
		case code >= 400:
			entry.Warn("client error")
		default:
			entry.Debug("request")
		}
	}
}

func errorResponse(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
