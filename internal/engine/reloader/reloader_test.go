package reloader_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/refract-dev/refract/internal/core/domain"
	"github.com/refract-dev/refract/internal/core/ports"
	"github.com/refract-dev/refract/internal/core/ports/mocks"
	"github.com/refract-dev/refract/internal/engine/reloader"
)

// stubTracer satisfies ports.Tracer without recording anything.
type stubTracer struct{}

func (stubTracer) Span(ctx context.Context, _ string, _ map[string]string) (context.Context, ports.SpanEnd) {
	return ctx, func(error) {}
}

func (stubTracer) Shutdown(context.Context) error { return nil }

func batchesOf(batches ...[]ports.WatchEvent) iter.Seq[[]ports.WatchEvent] {
	return func(yield func([]ports.WatchEvent) bool) {
		for _, batch := range batches {
			if !yield(batch) {
				return
			}
		}
	}
}

type loopFixture struct {
	*fixture
	notifier     *mocks.MockNotifier
	logger       *mocks.MockLogger
	orchestrator *reloader.Orchestrator
}

func newLoopFixture(t *testing.T) *loopFixture {
	ctrl := gomock.NewController(t)
	f := newFixture(t)
	notifier := mocks.NewMockNotifier(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	return &loopFixture{
		fixture:  f,
		notifier: notifier,
		logger:   logger,
		orchestrator: reloader.NewOrchestrator(
			reloader.NewClassifier(domain.SourceSuffix),
			f.invalidator,
			notifier,
			logger,
			stubTracer{},
		),
	}
}

func TestOrchestrator_NotifiesPerEventInOrder(t *testing.T) {
	f := newLoopFixture(t)

	paths := []string{
		componentsRoot + "/one.go",
		componentsRoot + "/two.go",
		componentsRoot + "/three.go",
	}
	routes := []string{"/one", "/two", "/three"}

	var events []ports.WatchEvent
	for i, path := range paths {
		rec := record(path)
		f.modules.Put(rec)
		f.registry.Register(routes[i], struct{}{}, path)
		f.loader.EXPECT().Unload(rec)
		events = append(events, ports.WatchEvent{Path: path, Operation: ports.OpRemove})
	}

	gomock.InOrder(
		f.notifier.EXPECT().Notify(gomock.Any(), []string{"/one"}).Return(nil),
		f.notifier.EXPECT().Notify(gomock.Any(), []string{"/two"}).Return(nil),
		f.notifier.EXPECT().Notify(gomock.Any(), []string{"/three"}).Return(nil),
	)

	err := f.orchestrator.Run(context.Background(), batchesOf(events))
	require.NoError(t, err)
}

func TestOrchestrator_DropsIrrelevantEvents(t *testing.T) {
	f := newLoopFixture(t)

	events := []ports.WatchEvent{
		{Path: "/proj/notes.txt", Operation: ports.OpWrite},
		{Path: "/proj/assets/logo.png", Operation: ports.OpCreate},
	}

	err := f.orchestrator.Run(context.Background(), batchesOf(events))
	require.NoError(t, err)
}

func TestOrchestrator_EmptyNotificationOnLoadFailure(t *testing.T) {
	f := newLoopFixture(t)
	path := componentsRoot + "/broken.go"
	resolved, err := domain.ResolvePath(path)
	require.NoError(t, err)

	f.modules.Put(record(resolved))
	f.loader.EXPECT().Reload(gomock.Any(), resolved, gomock.Any()).Return(nil, domain.ErrLoadFailed)
	f.logger.EXPECT().Error(gomock.Any())
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Nil()).Return(nil)

	err = f.orchestrator.Run(context.Background(), batchesOf(
		[]ports.WatchEvent{{Path: path, Operation: ports.OpWrite}},
	))
	require.NoError(t, err)
}

func TestOrchestrator_UnknownPathStillNotifies(t *testing.T) {
	f := newLoopFixture(t)

	// No module record exists for the path: the removal is a no-op but the
	// classified event still produces its notification.
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Nil()).Return(nil)

	err := f.orchestrator.Run(context.Background(), batchesOf(
		[]ports.WatchEvent{{Path: componentsRoot + "/ghost.go", Operation: ports.OpRemove}},
	))
	require.NoError(t, err)
}

func TestOrchestrator_SinkFailureKeepsLoopRunning(t *testing.T) {
	f := newLoopFixture(t)

	paths := []string{componentsRoot + "/one.go", componentsRoot + "/two.go"}
	var events []ports.WatchEvent
	for _, path := range paths {
		rec := record(path)
		f.modules.Put(rec)
		f.loader.EXPECT().Unload(rec)
		events = append(events, ports.WatchEvent{Path: path, Operation: ports.OpRemove})
	}

	gomock.InOrder(
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(domain.ErrSinkUnavailable),
		f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil),
	)
	f.logger.EXPECT().Error(gomock.Any())

	err := f.orchestrator.Run(context.Background(), batchesOf(events))
	require.NoError(t, err)
}

func TestOrchestrator_CancellationStopsBetweenEvents(t *testing.T) {
	f := newLoopFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := record(componentsRoot + "/one.go")
	f.modules.Put(rec)

	err := f.orchestrator.Run(ctx, batchesOf(
		[]ports.WatchEvent{{Path: rec.Path, Operation: ports.OpRemove}},
	))
	require.ErrorIs(t, err, context.Canceled)
	// The event was never processed.
	_, ok := f.modules.Get(rec.Path)
	assert.True(t, ok)
}

func TestOrchestrator_Bootstrap(t *testing.T) {
	dir := t.TempDir()
	mainPath := filepath.Join(dir, "main.go")
	componentsDir := filepath.Join(dir, "components")
	require.NoError(t, os.MkdirAll(componentsDir, 0o750))
	for _, name := range []string{"main.go", "components/beta.go", "components/alpha.go", "components/notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	ctrl := gomock.NewController(t)
	modules := domain.NewModuleSet()
	registry := domain.NewRegistry()
	loader := mocks.NewMockLoader(ctrl)
	orchestrator := reloader.NewOrchestrator(
		reloader.NewClassifier(domain.SourceSuffix),
		reloader.NewInvalidator(modules, registry, loader, componentsDir),
		mocks.NewMockNotifier(ctrl),
		mocks.NewMockLogger(ctrl),
		stubTracer{},
	)

	load := func(path string) *gomock.Call {
		return loader.EXPECT().Load(gomock.Any(), path).DoAndReturn(
			func(_ context.Context, p string) (*domain.ModuleRecord, error) {
				return record(p), nil
			})
	}
	// Main first, then components in lexical order. The non-source file is
	// never touched.
	gomock.InOrder(
		load(mainPath),
		load(filepath.Join(componentsDir, "alpha.go")),
		load(filepath.Join(componentsDir, "beta.go")),
	)

	err := orchestrator.Bootstrap(context.Background(), &domain.Project{
		Root:          dir,
		Main:          mainPath,
		ComponentsDir: componentsDir,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, modules.Len())
}

func TestOrchestrator_BootstrapFailsFast(t *testing.T) {
	dir := t.TempDir()
	mainPath := filepath.Join(dir, "main.go")

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)
	orchestrator := reloader.NewOrchestrator(
		reloader.NewClassifier(domain.SourceSuffix),
		reloader.NewInvalidator(domain.NewModuleSet(), domain.NewRegistry(), loader, filepath.Join(dir, "components")),
		mocks.NewMockNotifier(ctrl),
		mocks.NewMockLogger(ctrl),
		stubTracer{},
	)

	loader.EXPECT().Load(gomock.Any(), mainPath).Return(nil, domain.ErrLoadFailed)

	err := orchestrator.Bootstrap(context.Background(), &domain.Project{
		Root:          dir,
		Main:          mainPath,
		ComponentsDir: filepath.Join(dir, "components"),
	})
	require.ErrorIs(t, err, domain.ErrLoadFailed)
}

func TestOrchestrator_WidgetScenario(t *testing.T) {
	f := newLoopFixture(t)
	path := componentsRoot + "/widget.go"
	resolved, err := domain.ResolvePath(path)
	require.NoError(t, err)

	// Startup state: widget.go registered "/widget".
	rec := record(resolved)
	f.modules.Put(rec)
	f.registry.Register("/widget", struct{}{}, resolved)

	// Edit: the module now registers "/widget2" instead.
	f.loader.EXPECT().Reload(gomock.Any(), resolved, gomock.Any()).DoAndReturn(
		func(_ context.Context, p string, _ *domain.ModuleRecord) (*domain.ModuleRecord, error) {
			f.registry.Register("/widget2", struct{}{}, p)
			return record(p), nil
		})
	f.loader.EXPECT().Unload(gomock.Any())

	gomock.InOrder(
		f.notifier.EXPECT().Notify(gomock.Any(), []string{"/widget"}).Return(nil),
		f.notifier.EXPECT().Notify(gomock.Any(), []string{"/widget2"}).Return(nil),
	)

	err = f.orchestrator.Run(context.Background(), batchesOf(
		[]ports.WatchEvent{{Path: path, Operation: ports.OpWrite}},
		[]ports.WatchEvent{{Path: path, Operation: ports.OpRemove}},
	))
	require.NoError(t, err)

	_, ok := f.modules.Get(resolved)
	assert.False(t, ok)
	assert.Zero(t, f.registry.Len())
}
