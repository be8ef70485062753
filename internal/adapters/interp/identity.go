package interp

import (
	"reflect"
	"sync"

	yinterp "github.com/traefik/yaegi/interp"
)

// binding ties a logical module name to its resolved source path and the
// exported symbols of its most recent successful evaluation.
type binding struct {
	path    string
	symbols map[string]reflect.Value
}

// IdentityTable maps logical module names (file stems) to resolved source
// paths and exported symbols. The loader consults it before every
// evaluation: each bound identity is injected into the interpreter as an
// importable package, so a project file importing a sibling by its stem
// resolves to that sibling's current definitions instead of erroring.
//
// It is ordinary injected state, not an interpreter hook: the loader owns
// the only writing reference.
type IdentityTable struct {
	mu       sync.RWMutex
	bindings map[string]binding
}

// NewIdentityTable creates an empty identity table.
func NewIdentityTable() *IdentityTable {
	return &IdentityTable{bindings: make(map[string]binding)}
}

// Bind records that the logical name resolves to path with the given
// exported symbols, replacing any previous binding for that name.
func (t *IdentityTable) Bind(name, path string, symbols map[string]reflect.Value) {
	if symbols == nil {
		symbols = map[string]reflect.Value{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bindings[name] = binding{path: path, symbols: symbols}
}

// Resolve returns the path bound to the logical name, if any.
func (t *IdentityTable) Resolve(name string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	b, ok := t.bindings[name]
	return b.path, ok
}

// Exports returns every bound identity as an injectable interpreter
// package, keyed the way yaegi expects (import path followed by package
// name). The identity named except is left out so a module under
// re-evaluation cannot import its own previous definitions.
func (t *IdentityTable) Exports(except string) yinterp.Exports {
	t.mu.RLock()
	defer t.mu.RUnlock()
	exports := make(yinterp.Exports, len(t.bindings))
	for name, b := range t.bindings {
		if name == except {
			continue
		}
		exports[name+"/"+name] = b.symbols
	}
	return exports
}

// Unbind drops the binding for name if it currently points at path.
// Called when a module is removed so the stem can be reused.
func (t *IdentityTable) Unbind(name, path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.bindings[name].path == path {
		delete(t.bindings, name)
	}
}

// Len returns the number of live bindings.
func (t *IdentityTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.bindings)
}
