package notify_test

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	notifyv1 "github.com/refract-dev/refract/api/notify/v1"
	"github.com/refract-dev/refract/internal/adapters/notify"
	"github.com/refract-dev/refract/internal/core/domain"
)

// recordingSink implements the notify service and records every call.
type recordingSink struct {
	notifyv1.UnimplementedNotifyServiceServer

	mu    sync.Mutex
	calls [][]string
	pings int
}

func (s *recordingSink) InvalidateRoutes(_ context.Context, req *notifyv1.InvalidateRoutesRequest) (*notifyv1.InvalidateRoutesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req.GetRoutes())
	return &notifyv1.InvalidateRoutesResponse{Acknowledged: true}, nil
}

func (s *recordingSink) Ping(_ context.Context, _ *notifyv1.PingRequest) (*notifyv1.PingResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pings++
	return &notifyv1.PingResponse{}, nil
}

func (s *recordingSink) recorded() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]string(nil), s.calls...)
}

func startSink(t *testing.T) (string, *recordingSink) {
	t.Helper()

	socketPath := filepath.Join(t.TempDir(), "notify.sock")
	lis, err := net.Listen("unix", socketPath)
	require.NoError(t, err)

	sink := &recordingSink{}
	srv := grpc.NewServer()
	notifyv1.RegisterNotifyServiceServer(srv, sink)

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	return "unix://" + socketPath, sink
}

func TestClient_Notify(t *testing.T) {
	target, sink := startSink(t)

	client, err := notify.Dial(target)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, client.Notify(ctx, []string{"/", "/about"}))
	require.NoError(t, client.Notify(ctx, nil))

	calls := sink.recorded()
	require.Len(t, calls, 2)
	require.Equal(t, []string{"/", "/about"}, calls[0])
	require.Empty(t, calls[1])
}

func TestClient_Ping(t *testing.T) {
	target, sink := startSink(t)

	client, err := notify.Dial(target)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, client.Ping(ctx))

	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.Equal(t, 1, sink.pings)
}

func TestClient_SinkUnreachable(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "absent.sock")

	client, err := notify.Dial("unix://" + socketPath)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	err = client.Notify(ctx, []string{"/"})
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrSinkUnavailable))
}
