package lifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/vibeproxy/internal/lifecycle"
)

type fakeServer struct {
	startErr    error
	shutdownErr error
	stopped     chan struct{}
	shutdowns   int
}

func newFakeServer() *fakeServer {
	return &fakeServer{stopped: make(chan struct{})}
}

func (f *fakeServer) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.stopped
	return nil
}

func (f *fakeServer) Shutdown(_ context.Context) error {
	f.shutdowns++
	close(f.stopped)
	return f.shutdownErr
}

func (f *fakeServer) ShutdownTimeout() time.Duration {
	return time.Second
}

func TestRun_ShutsDownWhenContextDone(t *testing.T) {
	server := newFakeServer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := lifecycle.Run(ctx, server)

	require.NoError(t, err)
	require.Equal(t, 1, server.shutdowns)
}

func TestRun_StartFailure(t *testing.T) {
	server := newFakeServer()
	server.startErr = errors.New("address in use")

	err := lifecycle.Run(context.Background(), server)

	require.EqualError(t, err, "address in use")
	require.Zero(t, server.shutdowns)
}

func TestRun_ShutdownFailure(t *testing.T) {
	server := newFakeServer()
	server.shutdownErr = errors.New("deadline exceeded")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := lifecycle.Run(ctx, server)

	require.Error(t, err)
	require.Contains(t, err.Error(), "deadline exceeded")
}
