// Package app implements the application layer for refract.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/refract-dev/refract/internal/adapters/watcher"
	"github.com/refract-dev/refract/internal/core/domain"
	"github.com/refract-dev/refract/internal/core/ports"
	"github.com/refract-dev/refract/internal/engine/reloader"
)

// pingTimeout bounds the startup reachability check of the sink.
const pingTimeout = 2 * time.Second

// App represents the main application logic.
type App struct {
	configLoader    ports.ConfigLoader
	logger          ports.Logger
	watcher         ports.Watcher
	batcher         *watcher.Batcher
	loaderFactory   ports.LoaderFactory
	notifierFactory ports.NotifierFactory
	tracer          ports.Tracer
	out             io.Writer
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	log ports.Logger,
	fsWatcher ports.Watcher,
	batcher *watcher.Batcher,
	loaderFactory ports.LoaderFactory,
	notifierFactory ports.NotifierFactory,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader:    configLoader,
		logger:          log,
		watcher:         fsWatcher,
		batcher:         batcher,
		loaderFactory:   loaderFactory,
		notifierFactory: notifierFactory,
		tracer:          tracer,
		out:             os.Stdout,
	}
}

// WithOutput redirects banner output. This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// NotifyTarget overrides the sink transport target. Empty selects the
	// project socket under .refract.
	NotifyTarget string
	// JSONLogs switches the logger to JSON output.
	JSONLogs bool
}

// Run starts the reload pipeline and blocks until ctx is cancelled or the
// watcher stream ends.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if opts.JSONLogs {
		a.logger.SetJSON(true)
	}

	// 1. Project layout. A missing main file or components directory fails
	// startup here rather than surfacing as an empty registry later.
	project, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := a.logger.SetDebugFile(filepath.Join(project.Root, domain.DefaultDebugLogPath())); err != nil {
		a.logger.Warn("debug log unavailable: " + err.Error())
	}

	// 2. Stores and loader. The registry's Register method is the
	// callback every successful module evaluation commits into.
	registry := domain.NewRegistry()
	modules := domain.NewModuleSet()
	loader := a.loaderFactory(project.Root, registry.Register)

	// 3. Preprocessor, once, outside the pipeline.
	if project.HasPreprocessor() {
		if _, err := loader.Load(ctx, project.Preprocessor); err != nil {
			return zerr.Wrap(err, "preprocessor failed")
		}
	}

	// 4. Notification sink.
	notifier, err := a.notifierFactory(opts.NotifyTarget)
	if err != nil {
		return zerr.Wrap(err, "failed to create notification client")
	}
	defer func() {
		_ = notifier.Close()
	}()

	pingCtx, cancelPing := context.WithTimeout(ctx, pingTimeout)
	if err := notifier.Ping(pingCtx); err != nil {
		a.logger.Warn("presentation client not reachable yet, notifications will be retried per event")
	}
	cancelPing()

	// 5. Pipeline.
	invalidator := reloader.NewInvalidator(modules, registry, loader, project.ComponentsDir)
	invalidator.AddHook(func(change domain.Change, routes []string) {
		a.logger.Info(fmt.Sprintf(
			"%s %s, %d route(s) invalidated",
			change.Kind, displayPath(project.Root, change.Path), len(routes),
		))
	})

	orchestrator := reloader.NewOrchestrator(
		reloader.NewClassifier(domain.SourceSuffix),
		invalidator,
		notifier,
		a.logger,
		a.tracer,
	)

	defer func() {
		_ = a.tracer.Shutdown(ctx)
	}()

	// 6. Eager startup load, fail fast.
	if err := orchestrator.Bootstrap(ctx, project); err != nil {
		return err
	}

	a.printBanner(project, registry.Routes(), opts.NotifyTarget)

	// 7. Watch the configuration's directory recursively.
	if err := a.watcher.Start(ctx, project.Root); err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	// 8. Feed raw events into the batcher and consume batches until
	// cancellation. Both sides share one group so either ending tears the
	// other down.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.batcher.Feed(gctx, a.watcher.Events())
		return nil
	})
	g.Go(func() error {
		return orchestrator.Run(gctx, a.batcher.Batches(gctx))
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return zerr.Wrap(err, domain.ErrReloadLoopFailed.Error())
	}
	return nil
}

// displayPath shortens an absolute path to its project-relative form for
// log output.
func displayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
