// Package reloader implements the reload pipeline: it classifies watch
// events, drives the loader and the component registry per change, and
// emits one route invalidation notice per classified event.
package reloader

import (
	"strings"

	"github.com/refract-dev/refract/internal/core/domain"
	"github.com/refract-dev/refract/internal/core/ports"
)

// Classifier filters raw watch events down to relevant source changes.
type Classifier struct {
	suffix string
}

// NewClassifier creates a classifier for files carrying the given source
// suffix. Everything else is dropped silently.
func NewClassifier(suffix string) *Classifier {
	return &Classifier{suffix: suffix}
}

// Classify maps a raw watch event onto a Change. The second return value
// reports whether the event is relevant at all.
//
// Rename events are classified as removals: the watcher reports the old
// path, and the file reappearing under a new name arrives as its own
// create event. Operations the backend could not map are classified as
// Modified so a recompute happens rather than a silent drop.
func (c *Classifier) Classify(event ports.WatchEvent) (domain.Change, bool) {
	if !strings.HasSuffix(event.Path, c.suffix) {
		return domain.Change{}, false
	}

	resolved, err := domain.ResolvePath(event.Path)
	if err != nil {
		return domain.Change{}, false
	}

	change := domain.Change{Path: resolved}
	switch event.Operation {
	case ports.OpCreate:
		change.Kind = domain.Added
	case ports.OpWrite, ports.OpOther:
		change.Kind = domain.Modified
	case ports.OpRemove, ports.OpRename:
		change.Kind = domain.Removed
	default:
		change.Kind = domain.Modified
	}
	return change, true
}
