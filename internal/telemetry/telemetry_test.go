package telemetry

import (
	"testing"
	"time"

	"survivors-lab/internal/world"
)

func TestSinkBatchesEvents(t *testing.T) {
	out := make(chan Batch, 8)
	s := newSink(10*time.Millisecond, func(b Batch) {
		out <- b
	})
	defer s.Close()

	s.In <- Event{Kind: KindKill, I: 2, At: time.Now()}
	s.In <- Event{Kind: KindDamage, F: 3.5, At: time.Now()}
	s.In <- Event{Kind: KindFrame, F: 0.016, At: time.Now()}
	s.In <- Event{Kind: KindFrame, F: 0.018, At: time.Now()}

	b := firstNonEmpty(t, out)
	if b.Kills != 2 {
		t.Fatalf("kills mismatch: got %d want %d", b.Kills, 2)
	}
	if !approxEqual(b.Dmg, 3.5) {
		t.Fatalf("damage mismatch: got %.6f want %.6f", b.Dmg, 3.5)
	}
	if b.Frames != 2 {
		t.Fatalf("frames mismatch: got %d want %d", b.Frames, 2)
	}
	if !approxEqual(b.AvgDt, 0.017) {
		t.Fatalf("avg dt mismatch: got %.6f want %.6f", b.AvgDt, 0.017)
	}
}

func TestReportFrameSendsDeltas(t *testing.T) {
	// no loop: events stay queued for inspection
	s := &Sink{In: make(chan Event, 16)}

	s.ReportFrame(world.Stats{EnemiesKilled: 1, Hits: 3, DamageTaken: 2}, 0.02)
	s.ReportFrame(world.Stats{EnemiesKilled: 3, Hits: 3, DamageTaken: 2.5, LevelUps: 1}, 0.02)

	want := []Event{
		{Kind: KindKill, I: 1},
		{Kind: KindHit, I: 3},
		{Kind: KindDamage, F: 2},
		{Kind: KindFrame, F: 0.02},
		{Kind: KindKill, I: 2},
		{Kind: KindDamage, F: 0.5},
		{Kind: KindLevelUp, I: 1},
		{Kind: KindFrame, F: 0.02},
	}
	if len(s.In) != len(want) {
		t.Fatalf("event count: got %d want %d", len(s.In), len(want))
	}
	for i, w := range want {
		got := <-s.In
		if got.Kind != w.Kind || got.I != w.I || !approxEqual(got.F, w.F) {
			t.Fatalf("event %d: got %s/%d/%.3f want %s/%d/%.3f", i, got.Kind, got.I, got.F, w.Kind, w.I, w.F)
		}
	}
}

func TestReportFrameNeverBlocks(t *testing.T) {
	s := &Sink{In: make(chan Event, 1)}

	done := make(chan struct{})
	go func() {
		for i := range 10 {
			s.ReportFrame(world.Stats{Hits: i}, 0.016)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("ReportFrame blocked on a full queue")
	}
}

func TestSinkCloseIsIdempotent(t *testing.T) {
	s := newSink(10*time.Millisecond, nil)

	done := make(chan struct{})
	go func() {
		s.Close()
		s.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("sink close blocked")
	}
}

func firstNonEmpty(t *testing.T, out <-chan Batch) Batch {
	t.Helper()
	deadline := time.After(700 * time.Millisecond)
	for {
		select {
		case b := <-out:
			// Ignore empty periodic flushes.
			if b.empty() {
				continue
			}
			return b
		case <-deadline:
			t.Fatal("timed out waiting for telemetry batch")
		}
	}
}

func approxEqual(a, b float32) bool {
	const eps = 1e-4
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
