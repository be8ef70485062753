package reloader

import (
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"

	"github.com/refract-dev/refract/internal/core/domain"
	"github.com/refract-dev/refract/internal/core/ports"
)

// Orchestrator is the long-lived reload loop. It consumes batched watch
// events, applies each classified change through the Invalidator, and
// calls the notifier once per event with that event's route set.
type Orchestrator struct {
	classifier  *Classifier
	invalidator *Invalidator
	notifier    ports.Notifier
	logger      ports.Logger
	tracer      ports.Tracer
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(
	classifier *Classifier,
	invalidator *Invalidator,
	notifier ports.Notifier,
	logger ports.Logger,
	tracer ports.Tracer,
) *Orchestrator {
	return &Orchestrator{
		classifier:  classifier,
		invalidator: invalidator,
		notifier:    notifier,
		logger:      logger,
		tracer:      tracer,
	}
}

// Bootstrap eagerly loads the main module and every source file directly
// inside the components directory, in lexical order. Any failure here is
// fatal: the loop must not start watching with a partial registry.
func (o *Orchestrator) Bootstrap(ctx context.Context, project *domain.Project) error {
	if _, err := o.invalidator.Apply(ctx, domain.Change{Kind: domain.Added, Path: project.Main}); err != nil {
		return zerr.Wrap(err, "failed to load main module")
	}

	entries, err := os.ReadDir(project.ComponentsDir)
	if err != nil {
		return zerr.Wrap(err, domain.ErrComponentsDirMissing.Error())
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), domain.SourceSuffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)

	for _, name := range names {
		path := filepath.Join(project.ComponentsDir, name)
		if _, err := o.invalidator.Apply(ctx, domain.Change{Kind: domain.Added, Path: path}); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to load component"), "path", path)
		}
	}
	return nil
}

// Run consumes event batches until the context is cancelled or the batch
// stream ends. Events within a batch are processed one at a time in
// arrival order, and every classified event produces exactly one notifier
// call. Per-event failures are contained: a bad file or an unreachable
// sink never stops the loop.
//
// Cancellation is only observed between events, so an in-flight reload
// always completes and the stores stay consistent.
func (o *Orchestrator) Run(ctx context.Context, batches iter.Seq[[]ports.WatchEvent]) error {
	for batch := range batches {
		for _, event := range batch {
			if err := ctx.Err(); err != nil {
				return err
			}
			change, ok := o.classifier.Classify(event)
			if !ok {
				continue
			}
			o.processEvent(ctx, change)
		}
	}
	return ctx.Err()
}

// processEvent applies one classified change and notifies the sink.
func (o *Orchestrator) processEvent(ctx context.Context, change domain.Change) {
	ctx, end := o.tracer.Span(ctx, "reload", map[string]string{
		"path": change.Path,
		"kind": change.Kind.String(),
	})

	routes, err := o.invalidator.Apply(ctx, change)
	switch {
	case errors.Is(err, domain.ErrUnknownPath):
		// No record for the path means there is nothing to undo.
		err = nil
	case err != nil:
		o.logger.Error(err)
	}

	// The notification goes out even when the route set is empty, so the
	// sink can tell "nothing affected" apart from "no event occurred".
	if nerr := o.notifier.Notify(ctx, routes); nerr != nil {
		o.logger.Error(nerr)
		if err == nil {
			err = nerr
		}
	}

	end(err)
}
