// Package snapshot implements the dependency-snapshot coordination engine:
// the snapshot host, context manager, subscription registry, change merger
// and debounce scheduler.
package snapshot

import (
	"context"
	"sync"
	"time"
)

// DebounceWindow is the coalescing window for snapshot-changed
// notifications.
const DebounceWindow = 250 * time.Millisecond

// DebounceScheduler collapses bursts of notify requests into a single
// deferred run of the most recently scheduled action. Superseded requests
// never execute; a request whose context is cancelled before the window
// expires is skipped rather than treated as an error.
type DebounceScheduler struct {
	mu         sync.Mutex
	window     time.Duration
	timer      *time.Timer
	generation uint64
	pending    func(context.Context)
	pendingCtx context.Context
	disposed   bool
}

// NewDebounceScheduler creates a scheduler with the given window. A
// non-positive window falls back to DebounceWindow.
func NewDebounceScheduler(window time.Duration) *DebounceScheduler {
	if window <= 0 {
		window = DebounceWindow
	}
	return &DebounceScheduler{window: window}
}

// Schedule queues action to run once the window elapses with no newer
// request. A pending earlier action is replaced and will not run.
func (d *DebounceScheduler) Schedule(ctx context.Context, action func(context.Context)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.disposed || ctx.Err() != nil {
		return
	}

	d.generation++
	gen := d.generation
	d.pending = action
	d.pendingCtx = ctx

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.fire(gen)
	})
}

// fire runs the pending action if it is still the latest one.
func (d *DebounceScheduler) fire(gen uint64) {
	d.mu.Lock()
	if d.disposed || gen != d.generation || d.pending == nil {
		d.mu.Unlock()
		return
	}
	action := d.pending
	ctx := d.pendingCtx
	d.pending = nil
	d.pendingCtx = nil
	d.timer = nil
	d.mu.Unlock()

	// Cancellation (project unload) is a normal outcome, not an error.
	if ctx.Err() != nil {
		return
	}
	action(ctx)
}

// Dispose cancels any pending run. The scheduler accepts no further
// requests afterwards.
func (d *DebounceScheduler) Dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.disposed = true
	d.pending = nil
	d.pendingCtx = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
