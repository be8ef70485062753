package ports

import "context"

// SpanEnd finishes a span, recording err as its outcome when non-nil.
type SpanEnd func(err error)

// Tracer records a span per processed watch event so reload latency and
// route fan-out are observable.
type Tracer interface {
	// Span starts a span with the given name and string attributes and
	// returns the derived context plus a completion callback.
	Span(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanEnd)

	// Shutdown flushes any pending telemetry.
	Shutdown(ctx context.Context) error
}
