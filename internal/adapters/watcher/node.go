package watcher

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"github.com/refract-dev/refract/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// BatcherNodeID is the unique identifier for the event batcher Graft node.
	BatcherNodeID graft.ID = "adapter.batcher"
)

// DefaultSettleWindow is the default time window for closing an event batch.
const DefaultSettleWindow = 50 * time.Millisecond

func init() {
	// Watcher Node
	graft.Register(graft.Node[ports.Watcher]{
		ID:        WatcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Watcher, error) {
			return NewWatcher()
		},
	})

	// Batcher Node
	graft.Register(graft.Node[*Batcher]{
		ID:        BatcherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Batcher, error) {
			return NewBatcher(DefaultSettleWindow), nil
		},
	})
}
