package pointerfx

import (
	"testing"
	"time"
)

func TestTickSchedulerRunsQueued(t *testing.T) {
	var s TickScheduler
	var got []time.Time
	s.RequestFrame(func(now time.Time) { got = append(got, now) })
	s.RequestFrame(func(now time.Time) { got = append(got, now) })
	if s.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", s.Pending())
	}
	if n := s.Tick(t0); n != 2 {
		t.Errorf("Tick ran %d, want 2", n)
	}
	if len(got) != 2 || !got[0].Equal(t0) {
		t.Errorf("got %v", got)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending after tick = %d, want 0", s.Pending())
	}
}

func TestTickSchedulerCancel(t *testing.T) {
	var s TickScheduler
	ran := false
	cancel := s.RequestFrame(func(time.Time) { ran = true })
	cancel()
	cancel()
	if s.Tick(t0) != 0 || ran {
		t.Error("canceled callback ran")
	}
}

func TestTickSchedulerDefersReentrantRequests(t *testing.T) {
	var s TickScheduler
	count := 0
	var loop func(time.Time)
	loop = func(time.Time) {
		count++
		s.RequestFrame(loop)
	}
	s.RequestFrame(loop)
	for i := 0; i < 3; i++ {
		if n := s.Tick(t0); n != 1 {
			t.Fatalf("tick %d ran %d callbacks, want 1", i, n)
		}
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestTickSchedulerDrivesEngine(t *testing.T) {
	var s TickScheduler
	surface := NewSurface()
	e := New(surface, &s, DefaultConfig())
	defer e.Close()

	surface.Move(40, 40, t0)
	now := t0
	for i := 0; i < 120; i++ {
		now = now.Add(time.Second / 60)
		s.Tick(now)
	}
	f := e.Frame()
	if !f.Visible {
		t.Fatal("frame hidden after pointer moved")
	}
	if f.Distance(LayerDot) > 1e-3 {
		t.Errorf("dot distance = %v, want converged", f.Distance(LayerDot))
	}

	e.SetEnabled(false)
	if s.Pending() != 0 {
		t.Errorf("Pending after disable = %d, want 0", s.Pending())
	}
}
