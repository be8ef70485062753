package ports

import (
	"context"

	"github.com/refract-dev/refract/internal/core/domain"
)

// Loader evaluates project source files as independently reloadable units.
//
// Loading a component module populates the component registry as a side
// effect of evaluation. The loader itself has no visibility into registry
// state: purging stale registrations before a reload is the caller's job.
//
//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type Loader interface {
	// Load reads and evaluates the file at path as a fresh unit under an
	// identity derived from the file stem. On failure no partial state is
	// left live under that identity.
	Load(ctx context.Context, path string) (*domain.ModuleRecord, error)

	// Reload re-evaluates the same file against the identity of the
	// existing record, so consumers holding the path key resolve to the
	// new definitions. On failure the previous record stays untouched.
	Reload(ctx context.Context, path string, old *domain.ModuleRecord) (*domain.ModuleRecord, error)

	// Unload releases the identity of a removed record so its module name
	// can be bound again by a future load.
	Unload(rec *domain.ModuleRecord)
}

// RegisterFunc receives one component registration produced by evaluating a
// module. The loader invokes it only after the whole file evaluated
// successfully, so a failed load never leaves partial registrations behind.
type RegisterFunc func(uri string, component any, sourcePath string)

// LoaderFactory builds a Loader bound to a project root and a registration
// callback. The root scopes intra-project import resolution; the callback
// is where registrations land (normally the component registry).
type LoaderFactory func(root string, register RegisterFunc) Loader
