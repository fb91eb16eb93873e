package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunBoundsInFlight(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	var inFlight, peak, completed int32
	Run(context.Background(), items, 10, func(_ context.Context, _ int) {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		atomic.AddInt32(&completed, 1)
	})

	if peak > 10 {
		t.Errorf("peak in-flight = %d, want <= 10", peak)
	}
	if completed != 25 {
		t.Errorf("completed = %d, want 25 (Run returned before all settled)", completed)
	}
	if inFlight != 0 {
		t.Errorf("in-flight after Run = %d, want 0", inFlight)
	}
}

func TestRunEachItemOnce(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	var mu sync.Mutex
	seen := make(map[string]int)
	Run(context.Background(), items, 3, func(_ context.Context, s string) {
		mu.Lock()
		seen[s]++
		mu.Unlock()
	})

	if len(seen) != len(items) {
		t.Fatalf("saw %d distinct items, want %d", len(seen), len(items))
	}
	for _, s := range items {
		if seen[s] != 1 {
			t.Errorf("item %q ran %d times, want 1", s, seen[s])
		}
	}
}

func TestRunLimitBelowOne(t *testing.T) {
	var inFlight, peak int32
	Run(context.Background(), []int{1, 2, 3, 4}, 0, func(_ context.Context, _ int) {
		n := atomic.AddInt32(&inFlight, 1)
		if n > atomic.LoadInt32(&peak) {
			atomic.StoreInt32(&peak, n)
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
	})

	if peak != 1 {
		t.Errorf("peak in-flight = %d, want 1", peak)
	}
}

func TestRunEmpty(t *testing.T) {
	called := false
	Run(context.Background(), nil, 5, func(context.Context, int) { called = true })
	if called {
		t.Error("fn called for empty input")
	}
}

func TestRunCancelledSkipsQueued(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	Run(ctx, []int{1, 2, 3}, 2, func(context.Context, int) {
		atomic.AddInt32(&calls, 1)
	})

	if calls != 0 {
		t.Errorf("calls = %d, want 0 for a cancelled context", calls)
	}
}
