package workers

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeEvictor struct {
	mu      sync.Mutex
	cutoffs []time.Time
	result  int
}

func (f *fakeEvictor) EvictIdle(cutoff time.Time) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.result
}

func (f *fakeEvictor) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

func TestSweep_UsesIdleTimeoutCutoff(t *testing.T) {
	ev := &fakeEvictor{result: 3}
	w := NewViewCleanup(ev, zap.NewNop(), time.Minute, 10*time.Minute)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	if got := w.Sweep(); got != 3 {
		t.Fatalf("Sweep() = %d, want 3", got)
	}
	want := fixed.Add(-10 * time.Minute)
	if !ev.cutoffs[0].Equal(want) {
		t.Errorf("cutoff = %v, want %v", ev.cutoffs[0], want)
	}
}

func TestStartStop_TicksAndStops(t *testing.T) {
	ev := &fakeEvictor{}
	w := NewViewCleanup(ev, zap.NewNop(), 5*time.Millisecond, time.Minute)
	w.Start()

	deadline := time.Now().Add(2 * time.Second)
	for ev.calls() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	w.Stop()
	w.Stop()

	if ev.calls() == 0 {
		t.Fatal("expected at least one sweep before Stop")
	}
	after := ev.calls()
	time.Sleep(20 * time.Millisecond)
	if ev.calls() != after {
		t.Error("worker kept sweeping after Stop")
	}
}
