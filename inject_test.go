package pointerfx

import "testing"

func TestInjectClick(t *testing.T) {
	s := NewSurface()
	var log []string
	s.OnPress(func(PointerEvent) { log = append(log, "press") })
	s.OnRelease(func(PointerEvent) { log = append(log, "release") })

	s.InjectClick(50, 50)
	if s.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", s.Pending())
	}

	// Frame 1: press
	s.ProcessInjected(t0)
	if s.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", s.Pending())
	}
	equalLog(t, log, []string{"press"})

	// Frame 2: release
	s.ProcessInjected(t0)
	equalLog(t, log, []string{"press", "release"})
}

func TestInjectGlide(t *testing.T) {
	s := NewSurface()
	var xs []float64
	s.OnMove(func(e PointerEvent) { xs = append(xs, e.Position.X) })

	s.InjectGlide(0, 0, 100, 0, 4)
	for s.ProcessInjected(t0) {
	}

	want := []float64{25, 50, 75, 100}
	if len(xs) != len(want) {
		t.Fatalf("moves = %v, want %v", xs, want)
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("move %d x = %v, want %v", i, xs[i], want[i])
		}
	}
}

func TestInjectGlide_MinFrames(t *testing.T) {
	s := NewSurface()
	s.InjectGlide(0, 0, 10, 10, 0)
	if s.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", s.Pending())
	}
}

func TestInjectQueueOrder(t *testing.T) {
	s := NewSurface()
	var log []string
	s.OnMove(func(PointerEvent) { log = append(log, "move") })
	s.OnPress(func(PointerEvent) { log = append(log, "press") })
	s.OnRelease(func(PointerEvent) { log = append(log, "release") })

	s.InjectMove(1, 1)
	s.InjectPress(1, 1)
	s.InjectMove(2, 2)
	s.InjectRelease(2, 2)
	for s.ProcessInjected(t0) {
	}

	equalLog(t, log, []string{"move", "press", "move", "release"})
}

func TestProcessInjected_EmptyQueue(t *testing.T) {
	s := NewSurface()
	if s.ProcessInjected(t0) {
		t.Error("ProcessInjected on empty queue should return false")
	}
}

func TestInjectDrivesRegions(t *testing.T) {
	s := NewSurface()
	r := NewRegion("r", 40, 40, HitRect{Width: 20, Height: 20})
	s.AddRegion(r)
	var log []string
	recordHover(r, &log)

	s.InjectGlide(0, 50, 100, 50, 10)
	for s.ProcessInjected(t0) {
	}

	equalLog(t, log, []string{"enter r", "leave r"})
}
