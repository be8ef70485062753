package domain

import "sync"

// ModuleRecord is the live binding between a resolved source path and its
// currently executing code unit. Handle is opaque to the domain; the loader
// owns its concrete type. Digest is the content hash of the source at the
// time it was evaluated.
type ModuleRecord struct {
	Path   string
	Name   string
	Digest uint64
	Handle any
}

// ModuleSet maps resolved source paths to their current module records.
// It holds at most one record per path; replacing a record on reload keeps
// the path key stable. The reload pipeline is the only writer, but the
// rendering layer may read concurrently.
type ModuleSet struct {
	mu      sync.RWMutex
	records map[InternedString]*ModuleRecord
}

// NewModuleSet creates an empty ModuleSet.
func NewModuleSet() *ModuleSet {
	return &ModuleSet{
		records: make(map[InternedString]*ModuleRecord),
	}
}

// Get returns the record for the given resolved path, if any.
func (m *ModuleSet) Get(path string) (*ModuleRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[NewInternedString(path)]
	return rec, ok
}

// Put stores a record under its resolved path, replacing any previous one.
func (m *ModuleSet) Put(rec *ModuleRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[NewInternedString(rec.Path)] = rec
}

// Remove drops the record for the given resolved path. Removing an absent
// path is a no-op.
func (m *ModuleSet) Remove(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, NewInternedString(path))
}

// Len returns the number of live records.
func (m *ModuleSet) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Paths returns the resolved paths of all live records.
func (m *ModuleSet) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.records))
	for key := range m.records {
		paths = append(paths, key.String())
	}
	return paths
}
