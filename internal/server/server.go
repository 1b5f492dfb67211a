// Package server exposes training calculations over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"github.com/Yandex-Practicum/go-ftracker/internal/config"
)

// Server handles training calculation requests.
type Server struct {
	log *logrus.Logger
	gin *gin.Engine
}

// New returns server with all routes registered.
func New(log *logrus.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		log: log,
		gin: gin.New(),
	}

	s.gin.RedirectTrailingSlash = false
	s.gin.RedirectFixedPath = false

	s.gin.Use(requestID(), accessLog(log), gin.CustomRecovery(s.recovery))

	s.gin.GET("/ping", s.ping)
	s.gin.POST("/api/training", s.training)
	s.gin.POST("/api/trainings", s.trainings)
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.gin.ServeHTTP(w, r)
}

func (s *Server) recovery(c *gin.Context, recovered any) {
	s.log.WithField("request_id", c.GetString(requestIDKey)).Errorf("panic while serving request: %v", recovered)
	c.AbortWithStatus(http.StatusInternalServerError)
}

// Run serves requests on cfg.Address until ctx is done, then shuts server down gracefully.
func Run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	ln, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("cannot listen %s: %w", cfg.Address, err)
	}
	return Serve(ctx, ln, cfg, log)
}

// Serve is like Run but uses already opened listener.
func Serve(ctx context.Context, ln net.Listener, cfg config.Config, log *logrus.Logger) error {
	if cfg.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConnections)
	}

	httpServer := &http.Server{
		Handler:           New(log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("address", ln.Addr().String()).Info("server started")
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("cannot serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		log.Info("shutting server down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("cannot shutdown server: %w", err)
		}
		return nil
	})
	return g.Wait()
}
