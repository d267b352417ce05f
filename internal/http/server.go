package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/davidbz/vibeproxy/internal/config"
	"github.com/davidbz/vibeproxy/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config config.ServerConfig
	srv    *http.Server
}

// NewServer creates a new HTTP server around a route table.
func NewServer(cfg *config.ServerConfig, handler http.Handler) *Server {
	s := &Server{
		config: *cfg,
	}

	// Create server with timeouts. A zero WriteTimeout keeps event streams open.
	s.srv = &http.Server{
		Addr:              s.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: time.Duration(cfg.ReadTimeout) * time.Second,
		ReadTimeout:       time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.WriteTimeout) * time.Second,
	}

	return s
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.String("addr", s.Addr()))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// ShutdownTimeout returns how long Shutdown may wait for in-flight requests.
func (s *Server) ShutdownTimeout() time.Duration {
	return time.Duration(s.config.ShutdownTimeout) * time.Second
}
