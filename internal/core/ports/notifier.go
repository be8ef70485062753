package ports

import "context"

// Notifier delivers route invalidation notices to the remote presentation
// client. It is called exactly once per classified watch event, possibly
// with an empty route list: the empty call is a liveness signal the client
// can distinguish from "no event occurred".
//
// Delivery failure must not stop the reload loop; the orchestrator logs it
// and moves on. Retry policy, if any, belongs to the transport.
//
//go:generate mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Notify sends the ordered route invalidation set for one event.
	Notify(ctx context.Context, routes []string) error

	// Ping checks that the presentation client is reachable.
	Ping(ctx context.Context) error

	// Close releases transport resources.
	Close() error
}

// NotifierFactory builds a Notifier for a transport target. An empty target
// selects the default project socket.
type NotifierFactory func(target string) (Notifier, error)
