package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/refract-dev/refract/internal/adapters/watcher"
	"github.com/refract-dev/refract/internal/app"
	"github.com/refract-dev/refract/internal/core/ports"
	"github.com/refract-dev/refract/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type noopTracer struct{}

func (noopTracer) Span(ctx context.Context, _ string, _ map[string]string) (context.Context, ports.SpanEnd) {
	return ctx, func(error) {}
}

func (noopTracer) Shutdown(context.Context) error { return nil }

func newTestApp(ctrl *gomock.Controller, configLoader ports.ConfigLoader, logger ports.Logger) *app.App {
	mockWatcher := mocks.NewMockWatcher(ctrl)
	mockLoader := mocks.NewMockLoader(ctrl)
	mockNotifier := mocks.NewMockNotifier(ctrl)

	return app.New(
		configLoader,
		logger,
		mockWatcher,
		watcher.NewBatcher(10*time.Millisecond),
		func(_ string, _ ports.RegisterFunc) ports.Loader { return mockLoader },
		func(_ string) (ports.Notifier, error) { return mockNotifier, nil },
		noopTracer{},
	)
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := newTestApp(ctrl, mockLoader, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	// Config loading failing is the earliest execution failure run can hit.
	mockLoader.EXPECT().Load(".").Return(nil, errors.New("load failed"))

	application := newTestApp(ctrl, mockLoader, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"run"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}
