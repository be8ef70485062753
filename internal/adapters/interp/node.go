package interp

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/refract-dev/refract/internal/core/ports"
)

// NodeID is the unique identifier for the loader factory Graft node.
const NodeID graft.ID = "adapter.interp"

func init() {
	// The loader itself is built per project: its root and registration
	// callback are only known once the configuration is loaded.
	graft.Register(graft.Node[ports.LoaderFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LoaderFactory, error) {
			return func(root string, register ports.RegisterFunc) ports.Loader {
				return New(root, register)
			}, nil
		},
	})
}
