// Package lifecycle runs a server until the process is asked to stop.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidbz/vibeproxy/internal/observability"
)

// Server is anything that can be started and gracefully stopped.
type Server interface {
	Start() error
	Shutdown(ctx context.Context) error
	ShutdownTimeout() time.Duration
}

// Serve starts server and shuts it down on SIGINT or SIGTERM.
func Serve(server Server) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, server)
}

// Run starts server and shuts it down once ctx is done.
func Run(ctx context.Context, server Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	observability.FromContext(ctx).Info("stop requested")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout())
	defer cancel()

	shutdownErr := server.Shutdown(shutdownCtx)
	startErr := <-errCh

	if err := errors.Join(startErr, shutdownErr); err != nil {
		return fmt.Errorf("server stopped with errors: %w", err)
	}

	return nil
}
