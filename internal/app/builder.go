package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/refract-dev/refract/internal/adapters/config"
	"github.com/refract-dev/refract/internal/adapters/interp"
	"github.com/refract-dev/refract/internal/adapters/logger"
	"github.com/refract-dev/refract/internal/adapters/notify"
	"github.com/refract-dev/refract/internal/adapters/telemetry"
	"github.com/refract-dev/refract/internal/adapters/watcher"
	"github.com/refract-dev/refract/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles the fully wired application for the CLI entry point.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			watcher.WatcherNodeID,
			watcher.BatcherNodeID,
			interp.NodeID,
			notify.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			fsWatcher, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			batcher, err := graft.Dep[*watcher.Batcher](ctx)
			if err != nil {
				return nil, err
			}
			loaderFactory, err := graft.Dep[ports.LoaderFactory](ctx)
			if err != nil {
				return nil, err
			}
			notifierFactory, err := graft.Dep[ports.NotifierFactory](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(configLoader, log, fsWatcher, batcher, loaderFactory, notifierFactory, tracer),
				Logger: log,
			}, nil
		},
	})
}
