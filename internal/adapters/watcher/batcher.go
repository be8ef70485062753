package watcher

import (
	"context"
	"iter"
	"time"

	"github.com/refract-dev/refract/internal/core/ports"
)

const feedChannelBuffer = 100

// Batcher groups raw watch events into ordered batches. An event opens a
// batch; the batch closes once no further event arrives within the settle
// window. Arrival order is preserved within and across batches, and only
// an event identical to its immediate predecessor is suppressed (editors
// that double-fire writes), so distinct events always notify separately.
type Batcher struct {
	window time.Duration
	in     chan ports.WatchEvent
}

// NewBatcher creates a new batcher with the given settle window.
func NewBatcher(window time.Duration) *Batcher {
	return &Batcher{
		window: window,
		in:     make(chan ports.WatchEvent, feedChannelBuffer),
	}
}

// Feed consumes the watcher's event stream until it ends or ctx is done.
// It must be running for Batches to produce anything.
func (b *Batcher) Feed(ctx context.Context, events iter.Seq[ports.WatchEvent]) {
	defer close(b.in)
	for event := range events {
		select {
		case b.in <- event:
		case <-ctx.Done():
			return
		}
	}
}

// Batches returns an iterator of event batches. The iterator blocks while
// awaiting the next batch and ends when the feed is exhausted or ctx is
// done; a batch already started is always completed and yielded first.
func (b *Batcher) Batches(ctx context.Context) iter.Seq[[]ports.WatchEvent] {
	return func(yield func([]ports.WatchEvent) bool) {
		for {
			var batch []ports.WatchEvent

			// Await the event that opens the next batch.
			select {
			case <-ctx.Done():
				return
			case event, ok := <-b.in:
				if !ok {
					return
				}
				batch = append(batch, event)
			}

			// Collect follow-up events until the stream settles.
			open := true
			timer := time.NewTimer(b.window)
			for open {
				select {
				case event, ok := <-b.in:
					if !ok {
						open = false
						break
					}
					if event == batch[len(batch)-1] {
						continue
					}
					batch = append(batch, event)
					if !timer.Stop() {
						<-timer.C
					}
					timer.Reset(b.window)
				case <-timer.C:
					open = false
				}
			}
			timer.Stop()

			if !yield(batch) {
				return
			}
		}
	}
}
