package notify

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/refract-dev/refract/internal/core/ports"
)

// NodeID is the unique identifier for the notify client factory Graft node.
const NodeID graft.ID = "adapter.notify"

func init() {
	// The transport target comes from a command line flag, so the client is
	// built per invocation rather than at wiring time.
	graft.Register(graft.Node[ports.NotifierFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.NotifierFactory, error) {
			return func(target string) (ports.Notifier, error) {
				return Dial(target)
			}, nil
		},
	})
}
