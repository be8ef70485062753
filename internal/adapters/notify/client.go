// Package notify implements the route invalidation sink adapter.
// It speaks gRPC to the presentation client, over a Unix Domain Socket by
// default or TCP when configured.
package notify

import (
	"context"
	"strings"

	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	notifyv1 "github.com/refract-dev/refract/api/notify/v1"
	"github.com/refract-dev/refract/internal/core/domain"
)

// Client implements ports.Notifier.
type Client struct {
	conn   *grpc.ClientConn
	client notifyv1.NotifyServiceClient
	target string
}

// Dial connects to the presentation client. An empty target falls back to
// the project socket under .refract.
// Note: grpc.NewClient returns immediately; actual connection happens lazily on first RPC.
func Dial(target string) (*Client, error) {
	if target == "" {
		target = "unix://" + domain.DefaultNotifySocketPath()
	} else if !strings.Contains(target, "://") {
		// Bare host:port means TCP. The passthrough resolver keeps gRPC from
		// treating the port as a DNS authority.
		target = "passthrough:///" + target
	}

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "notify client creation failed"), "target", target)
	}

	return &Client{
		conn:   conn,
		client: notifyv1.NewNotifyServiceClient(conn),
		target: target,
	}, nil
}

// Notify implements ports.Notifier. Routes may be empty; an empty call still
// goes out so the sink can distinguish "nothing affected" from silence.
func (c *Client) Notify(ctx context.Context, routes []string) error {
	_, err := c.client.InvalidateRoutes(ctx, &notifyv1.InvalidateRoutesRequest{
		Routes: routes,
	})
	if err != nil {
		return zerr.With(
			zerr.Wrap(domain.ErrSinkUnavailable, err.Error()),
			"target", c.target,
		)
	}
	return nil
}

// Ping implements ports.Notifier.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.client.Ping(ctx, &notifyv1.PingRequest{})
	if err != nil {
		return zerr.With(
			zerr.Wrap(domain.ErrSinkUnavailable, err.Error()),
			"target", c.target,
		)
	}
	return nil
}

// Close implements ports.Notifier.
func (c *Client) Close() error {
	return c.conn.Close()
}
