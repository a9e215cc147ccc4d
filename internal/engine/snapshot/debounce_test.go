package snapshot_test

import (
	"context"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depsnap/internal/engine/snapshot"
)

func TestNewDebounceScheduler(t *testing.T) {
	tests := []struct {
		name   string
		window time.Duration
	}{
		{name: "with explicit window", window: 100 * time.Millisecond},
		{name: "with zero window", window: 0},
		{name: "with negative window", window: -time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := snapshot.NewDebounceScheduler(tt.window)
			require.NotNil(t, d)
		})
	}
}

func TestDebounceScheduler_Schedule_SingleAction(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := snapshot.NewDebounceScheduler(100 * time.Millisecond)
		d.Schedule(context.Background(), func(context.Context) {
			callCount++
		})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
	})
}

func TestDebounceScheduler_Schedule_LatestActionWins(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls []string

		d := snapshot.NewDebounceScheduler(100 * time.Millisecond)
		for _, name := range []string{"first", "second", "third"} {
			name := name
			d.Schedule(context.Background(), func(context.Context) {
				calls = append(calls, name)
			})
		}

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		// Only the most recently scheduled action runs.
		require.Equal(t, []string{"third"}, calls)
	})
}

func TestDebounceScheduler_Schedule_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var mu sync.Mutex

		d := snapshot.NewDebounceScheduler(100 * time.Millisecond)

		d.Schedule(context.Background(), func(context.Context) {
			mu.Lock()
			callCount++
			mu.Unlock()
		})
		time.Sleep(50 * time.Millisecond)

		// Re-scheduling restarts the window.
		d.Schedule(context.Background(), func(context.Context) {
			mu.Lock()
			callCount++
			mu.Unlock()
		})
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		count := callCount
		mu.Unlock()
		assert.Equal(t, 0, count)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		count = callCount
		mu.Unlock()
		require.Equal(t, 1, count)
	})
}

func TestDebounceScheduler_Schedule_CancelledContextSkipsRun(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		ctx, cancel := context.WithCancel(context.Background())
		d := snapshot.NewDebounceScheduler(100 * time.Millisecond)
		d.Schedule(ctx, func(context.Context) {
			callCount++
		})

		// Cancellation before the window elapses skips the action without
		// surfacing an error anywhere.
		cancel()

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 0, callCount)
	})
}

func TestDebounceScheduler_Schedule_AlreadyCancelledContextIgnored(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		d := snapshot.NewDebounceScheduler(100 * time.Millisecond)
		d.Schedule(ctx, func(context.Context) {
			callCount++
		})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 0, callCount)
	})
}

func TestDebounceScheduler_Dispose_CancelsPending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := snapshot.NewDebounceScheduler(100 * time.Millisecond)
		d.Schedule(context.Background(), func(context.Context) {
			callCount++
		})

		d.Dispose()

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 0, callCount)
	})
}

func TestDebounceScheduler_Dispose_RejectsNewRequests(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := snapshot.NewDebounceScheduler(100 * time.Millisecond)
		d.Dispose()

		d.Schedule(context.Background(), func(context.Context) {
			callCount++
		})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 0, callCount)
	})
}

func TestDebounceScheduler_Schedule_NewBurstAfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls []string

		d := snapshot.NewDebounceScheduler(100 * time.Millisecond)

		d.Schedule(context.Background(), func(context.Context) {
			calls = append(calls, "first")
		})
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Schedule(context.Background(), func(context.Context) {
			calls = append(calls, "second")
		})
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, []string{"first", "second"}, calls)
	})
}
