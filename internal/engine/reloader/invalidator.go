package reloader

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/refract-dev/refract/internal/core/domain"
	"github.com/refract-dev/refract/internal/core/ports"
)

// Hook observes one applied change together with the routes it affected.
// Hooks run after the store and registry mutations, in registration order.
type Hook func(change domain.Change, routes []string)

// Invalidator applies one classified change to the module set and the
// component registry and computes the routes whose presentation must
// refresh.
//
// Changes are applied strictly one at a time by the orchestrator, so a
// reload's purge and re-registration never interleave with another
// change's.
type Invalidator struct {
	modules        *domain.ModuleSet
	registry       *domain.Registry
	loader         ports.Loader
	componentsRoot string
	hooks          []Hook
}

// NewInvalidator creates an Invalidator. componentsRoot must be resolved;
// only paths beneath it contribute routes.
func NewInvalidator(
	modules *domain.ModuleSet,
	registry *domain.Registry,
	loader ports.Loader,
	componentsRoot string,
) *Invalidator {
	return &Invalidator{
		modules:        modules,
		registry:       registry,
		loader:         loader,
		componentsRoot: componentsRoot,
	}
}

// AddHook registers an observer for applied changes.
func (v *Invalidator) AddHook(h Hook) {
	v.hooks = append(v.hooks, h)
}

// Apply executes the policy for one change and returns the invalidation
// set in registration order. A returned error never leaves half-applied
// state: on load failure the previous record stays live, and on an unknown
// path nothing was touched.
func (v *Invalidator) Apply(ctx context.Context, change domain.Change) ([]string, error) {
	var (
		routes []string
		err    error
	)

	switch change.Kind {
	case domain.Added:
		routes, err = v.applyAdded(ctx, change.Path)
	case domain.Modified:
		routes, err = v.applyModified(ctx, change.Path)
	case domain.Removed:
		routes, err = v.applyRemoved(change.Path)
	}
	if err != nil {
		return nil, err
	}

	for _, h := range v.hooks {
		h(change, routes)
	}
	return routes, nil
}

// applyAdded loads the new file. Only additions under the components root
// query the registry for newly discovered routes.
func (v *Invalidator) applyAdded(ctx context.Context, path string) ([]string, error) {
	rec, err := v.loader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	v.modules.Put(rec)

	if !domain.UnderDir(path, v.componentsRoot) {
		return nil, nil
	}
	return v.registry.RoutesBySource(rec.Path), nil
}

// applyModified purges the previous execution's registrations, reloads the
// file under its existing identity, and returns the purged URIs as the
// stale set. The purge happens before the reload so re-registration during
// evaluation cannot be mistaken for stale state.
func (v *Invalidator) applyModified(ctx context.Context, path string) ([]string, error) {
	old, ok := v.modules.Get(path)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownPath, "path", path)
	}

	stale := v.registry.RemoveBySource(path)

	rec, err := v.loader.Reload(ctx, path, old)
	if err != nil {
		return nil, err
	}
	v.modules.Put(rec)

	return stale, nil
}

// applyRemoved purges registrations and the module record. The record is
// purged regardless of where the path lies.
func (v *Invalidator) applyRemoved(path string) ([]string, error) {
	old, ok := v.modules.Get(path)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownPath, "path", path)
	}

	stale := v.registry.RemoveBySource(path)
	v.modules.Remove(path)
	v.loader.Unload(old)

	return stale, nil
}
