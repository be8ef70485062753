package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/refract-dev/refract/internal/core/ports"
)

// SlowSpanThreshold is the duration above which a completed span is surfaced
// to the user. Reloads are expected to finish well under this.
const SlowSpanThreshold = 250 * time.Millisecond

// LogBridge implements sdktrace.SpanProcessor and surfaces slow or failed
// spans through the application logger.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart is called when a span starts.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	if s.Status().Code == codes.Error {
		b.logger.Warn(fmt.Sprintf("%s failed: %s", s.Name(), s.Status().Description))
		return
	}

	if d := s.EndTime().Sub(s.StartTime()); d > SlowSpanThreshold {
		b.logger.Warn(fmt.Sprintf("%s took %s", s.Name(), d.Round(time.Millisecond)))
	}
}

// ForceFlush has nothing buffered to flush.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown releases no resources.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}
