package watcher_test

import (
	"context"
	"iter"
	"testing"
	"testing/synctest"
	"time"

	"github.com/refract-dev/refract/internal/adapters/watcher"
	"github.com/refract-dev/refract/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqOf(ch chan ports.WatchEvent) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for e := range ch {
			if !yield(e) {
				return
			}
		}
	}
}

// collect drains batches into a slice until the iterator ends, closing done
// when it does.
func collect(ctx context.Context, b *watcher.Batcher, out *[][]ports.WatchEvent, done chan struct{}) {
	defer close(done)
	for batch := range b.Batches(ctx) {
		*out = append(*out, batch)
	}
}

func TestBatcher_SingleEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		b := watcher.NewBatcher(100 * time.Millisecond)
		in := make(chan ports.WatchEvent)
		go b.Feed(t.Context(), seqOf(in))

		var batches [][]ports.WatchEvent
		done := make(chan struct{})
		go collect(t.Context(), b, &batches, done)

		in <- ports.WatchEvent{Path: "/proj/a.go", Operation: ports.OpWrite}
		close(in)
		<-done

		require.Len(t, batches, 1)
		require.Len(t, batches[0], 1)
		assert.Equal(t, "/proj/a.go", batches[0][0].Path)
	})
}

func TestBatcher_GroupsEventsWithinWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		b := watcher.NewBatcher(100 * time.Millisecond)
		in := make(chan ports.WatchEvent)
		go b.Feed(t.Context(), seqOf(in))

		var batches [][]ports.WatchEvent
		done := make(chan struct{})
		go collect(t.Context(), b, &batches, done)

		in <- ports.WatchEvent{Path: "/proj/a.go", Operation: ports.OpWrite}
		in <- ports.WatchEvent{Path: "/proj/b.go", Operation: ports.OpCreate}
		in <- ports.WatchEvent{Path: "/proj/c.go", Operation: ports.OpRemove}
		close(in)
		<-done

		// One batch, arrival order preserved.
		require.Len(t, batches, 1)
		require.Len(t, batches[0], 3)
		assert.Equal(t, "/proj/a.go", batches[0][0].Path)
		assert.Equal(t, "/proj/b.go", batches[0][1].Path)
		assert.Equal(t, "/proj/c.go", batches[0][2].Path)
	})
}

func TestBatcher_SuppressesConsecutiveDuplicates(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		b := watcher.NewBatcher(100 * time.Millisecond)
		in := make(chan ports.WatchEvent)
		go b.Feed(t.Context(), seqOf(in))

		var batches [][]ports.WatchEvent
		done := make(chan struct{})
		go collect(t.Context(), b, &batches, done)

		write := ports.WatchEvent{Path: "/proj/a.go", Operation: ports.OpWrite}
		in <- write
		in <- write
		in <- ports.WatchEvent{Path: "/proj/b.go", Operation: ports.OpWrite}
		// Not adjacent to the earlier duplicates, so it stays.
		in <- write
		close(in)
		<-done

		require.Len(t, batches, 1)
		require.Len(t, batches[0], 3)
		assert.Equal(t, "/proj/a.go", batches[0][0].Path)
		assert.Equal(t, "/proj/b.go", batches[0][1].Path)
		assert.Equal(t, "/proj/a.go", batches[0][2].Path)
	})
}

func TestBatcher_SeparateBatchesAfterSettle(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		b := watcher.NewBatcher(100 * time.Millisecond)
		in := make(chan ports.WatchEvent)
		go b.Feed(t.Context(), seqOf(in))

		var batches [][]ports.WatchEvent
		done := make(chan struct{})
		go collect(t.Context(), b, &batches, done)

		in <- ports.WatchEvent{Path: "/proj/a.go", Operation: ports.OpWrite}
		// Let the first batch settle before the next event arrives.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		in <- ports.WatchEvent{Path: "/proj/b.go", Operation: ports.OpWrite}
		close(in)
		<-done

		require.Len(t, batches, 2)
		assert.Equal(t, "/proj/a.go", batches[0][0].Path)
		assert.Equal(t, "/proj/b.go", batches[1][0].Path)
	})
}

func TestBatcher_CancellationStopsIteration(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		b := watcher.NewBatcher(100 * time.Millisecond)
		ctx, cancel := context.WithCancel(t.Context())

		in := make(chan ports.WatchEvent)
		go b.Feed(ctx, seqOf(in))

		var batches [][]ports.WatchEvent
		done := make(chan struct{})
		go collect(ctx, b, &batches, done)

		cancel()
		<-done

		assert.Empty(t, batches)
		close(in)
	})
}
