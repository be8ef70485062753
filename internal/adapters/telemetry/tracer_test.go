package telemetry_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/refract-dev/refract/internal/adapters/telemetry"
)

// captureProcessor records ended spans for assertions.
type captureProcessor struct {
	mu    sync.Mutex
	ended []sdktrace.ReadOnlySpan
}

func (p *captureProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

func (p *captureProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ended = append(p.ended, s)
}

func (p *captureProcessor) ForceFlush(_ context.Context) error { return nil }
func (p *captureProcessor) Shutdown(_ context.Context) error   { return nil }

func TestOTelTracer_SpanRecordsAttributes(t *testing.T) {
	capture := &captureProcessor{}
	tracer := telemetry.New("test", capture)

	_, end := tracer.Span(context.Background(), "reload", map[string]string{
		"path": "components/widget.go",
		"kind": "modified",
	})
	end(nil)

	require.Len(t, capture.ended, 1)
	span := capture.ended[0]
	require.Equal(t, "reload", span.Name())
	require.Equal(t, codes.Unset, span.Status().Code)

	attrs := map[string]string{}
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	require.Equal(t, "components/widget.go", attrs["path"])
	require.Equal(t, "modified", attrs["kind"])

	require.NoError(t, tracer.Shutdown(context.Background()))
}

func TestOTelTracer_SpanRecordsError(t *testing.T) {
	capture := &captureProcessor{}
	tracer := telemetry.New("test", capture)

	_, end := tracer.Span(context.Background(), "reload", nil)
	end(errors.New("interpreter choked"))

	require.Len(t, capture.ended, 1)
	span := capture.ended[0]
	require.Equal(t, codes.Error, span.Status().Code)
	require.Equal(t, "interpreter choked", span.Status().Description)

	require.NoError(t, tracer.Shutdown(context.Background()))
}

func TestOTelTracer_ContextPropagation(t *testing.T) {
	capture := &captureProcessor{}
	tracer := telemetry.New("test", capture)

	ctx, endParent := tracer.Span(context.Background(), "batch", nil)
	_, endChild := tracer.Span(ctx, "event", nil)
	endChild(nil)
	endParent(nil)

	require.Len(t, capture.ended, 2)
	child, parent := capture.ended[0], capture.ended[1]
	require.Equal(t, "event", child.Name())
	require.Equal(t, parent.SpanContext().SpanID(), child.Parent().SpanID())

	require.NoError(t, tracer.Shutdown(context.Background()))
}
