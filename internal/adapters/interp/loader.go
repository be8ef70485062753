// Package interp implements the dynamic module loader on the yaegi
// interpreter. Every source file evaluates in its own interpreter instance,
// so modules stay independently reloadable and a failed evaluation cannot
// poison its neighbors.
package interp

import (
	"context"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/refract-dev/refract/internal/core/domain"
	"github.com/refract-dev/refract/internal/core/ports"
	yinterp "github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.trai.ch/zerr"
)

var _ ports.Loader = (*Loader)(nil)

// Loader evaluates project source files with yaegi.
type Loader struct {
	root     string
	register ports.RegisterFunc
	table    *IdentityTable
}

// New creates a Loader rooted at the given project directory. register
// receives committed registrations; it is normally Registry.Register.
func New(root string, register ports.RegisterFunc) *Loader {
	return &Loader{
		root:     root,
		register: register,
		table:    NewIdentityTable(),
	}
}

// Table exposes the module identity table for diagnostics and cleanup.
func (l *Loader) Table() *IdentityTable {
	return l.table
}

// Load reads and evaluates the file at path as a fresh unit.
func (l *Loader) Load(ctx context.Context, path string) (*domain.ModuleRecord, error) {
	resolved, err := domain.ResolvePath(path)
	if err != nil {
		return nil, err
	}
	return l.eval(ctx, resolved, domain.ModuleName(resolved))
}

// Reload re-evaluates the file under the identity of the existing record.
// The caller must purge prior registrations tied to the path first; the
// loader re-applies the module's registrations on success and leaves the
// old record untouched on failure.
func (l *Loader) Reload(ctx context.Context, path string, old *domain.ModuleRecord) (*domain.ModuleRecord, error) {
	resolved, err := domain.ResolvePath(path)
	if err != nil {
		return nil, err
	}
	name := domain.ModuleName(resolved)
	if old != nil {
		name = old.Name
	}
	return l.eval(ctx, resolved, name)
}

// Unload drops the identity binding of a removed record so the stem can be
// reused by a future load.
func (l *Loader) Unload(rec *domain.ModuleRecord) {
	if rec == nil {
		return
	}
	l.table.Unbind(rec.Name, rec.Path)
}

// eval runs one evaluation. Registrations made by the source are buffered
// and committed only after the whole file evaluated, so an evaluation error
// leaves neither a module record nor partial registrations behind.
//
// Before evaluating, every identity bound in the table is injected as an
// importable package, so the source may import sibling project files by
// their stem and resolve to the definitions of their latest load.
func (l *Loader) eval(ctx context.Context, resolved, name string) (*domain.ModuleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := os.ReadFile(resolved)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLoadFailed.Error()), "path", resolved)
	}

	var pending []registration

	i := yinterp.New(yinterp.Options{
		GoPath:               l.root,
		SourcecodeFilesystem: os.DirFS(l.root),
	})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLoadFailed.Error())
	}
	if err := i.Use(exports(&pending)); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLoadFailed.Error())
	}
	if err := i.Use(l.table.Exports(name)); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLoadFailed.Error())
	}

	if _, err := i.Eval(string(src)); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLoadFailed.Error()), "path", resolved)
	}

	l.table.Bind(name, resolved, i.Symbols("main")["main"])
	for _, reg := range pending {
		l.register(reg.uri, reg.component, resolved)
	}

	return &domain.ModuleRecord{
		Path:   resolved,
		Name:   name,
		Digest: xxhash.Sum64(src),
		Handle: i,
	}, nil
}
