package domain

import (
	"reflect"
	"sync"
)

// Registration binds a route URI to a component instance and the source
// path whose evaluation produced it.
type Registration struct {
	URI        string
	Component  any
	SourcePath string
}

// Registry is the process-wide set of live component registrations.
// Modules populate it as a side effect of evaluation; the reload pipeline
// purges entries by source path when modules change or disappear.
//
// The pipeline is the registry's only writer. The rendering layer reads
// concurrently, so all access is guarded. URI uniqueness is not enforced
// here: a later registration with the same URI only supersedes an earlier
// one through explicit removal.
type Registry struct {
	mu      sync.RWMutex
	entries []Registration
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a registration. Called by the loader's registration
// callback while a module evaluates.
func (r *Registry) Register(uri string, component any, sourcePath string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Registration{
		URI:        uri,
		Component:  component,
		SourcePath: sourcePath,
	})
}

// RemoveBySource atomically drops every registration whose source path
// equals the argument and returns their URIs in registration order.
// This is the primitive backing both reload and removal.
func (r *Registry) RemoveBySource(sourcePath string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []string
	kept := r.entries[:0]
	for _, reg := range r.entries {
		if reg.SourcePath == sourcePath {
			removed = append(removed, reg.URI)
			continue
		}
		kept = append(kept, reg)
	}
	// Zero the tail so dropped components are not pinned by the backing array.
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = Registration{}
	}
	r.entries = kept
	return removed
}

// RemoveByURI drops the first registration with the given URI, if any.
func (r *Registry) RemoveByURI(uri string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, reg := range r.entries {
		if reg.URI == uri {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// FindByInstance resolves a live component instance back to its
// registration. Used by the rendering layer, not by the reload pipeline.
func (r *Registry) FindByInstance(component any) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, reg := range r.entries {
		if reflect.DeepEqual(reg.Component, component) {
			return reg, true
		}
	}
	return Registration{}, false
}

// RoutesBySource returns the URIs of all registrations tied to the given
// source path, in registration order.
func (r *Registry) RoutesBySource(sourcePath string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var routes []string
	for _, reg := range r.entries {
		if reg.SourcePath == sourcePath {
			routes = append(routes, reg.URI)
		}
	}
	return routes
}

// Routes returns the URIs of all live registrations in registration order.
func (r *Registry) Routes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	routes := make([]string, 0, len(r.entries))
	for _, reg := range r.entries {
		routes = append(routes, reg.URI)
	}
	return routes
}

// Len returns the number of live registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
