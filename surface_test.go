package pointerfx

import (
	"testing"
	"time"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonContains(t *testing.T) {
	p := HitPolygon{Points: []Vec2{{0, 0}, {100, 0}, {100, 100}, {0, 100}}}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 50, true},
		{"on edge", 0, 50, true},
		{"outside", -1, 50, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitPolygon.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
	if (HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}).Contains(0, 0) {
		t.Error("degenerate polygon should contain nothing")
	}
}

// --- Region and Surface tests ---

var t0 = time.Unix(1000, 0)

func recordHover(r *Region, log *[]string) {
	r.OnPointerEnter(func(PointerEvent) { *log = append(*log, "enter "+r.Name) })
	r.OnPointerLeave(func(PointerEvent) { *log = append(*log, "leave "+r.Name) })
}

func equalLog(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("log = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("log = %v, want %v", got, want)
		}
	}
}

func TestSurfaceEnterLeave(t *testing.T) {
	s := NewSurface()
	r := NewRegion("btn", 10, 10, HitRect{Width: 50, Height: 20})
	s.AddRegion(r)
	var log []string
	recordHover(r, &log)

	s.Move(0, 0, t0)
	s.Move(20, 20, t0)
	s.Move(30, 25, t0) // still inside: no event
	s.Move(100, 100, t0)

	equalLog(t, log, []string{"enter btn", "leave btn"})
	if r.Hovered() {
		t.Error("region should not be hovered")
	}
}

func TestSurfaceNestedRegions(t *testing.T) {
	s := NewSurface()
	outer := NewRegion("outer", 0, 0, HitRect{Width: 200, Height: 200})
	inner := NewRegion("inner", 50, 50, HitRect{Width: 50, Height: 50})
	s.AddRegion(outer)
	s.AddRegion(inner)
	var log []string
	recordHover(outer, &log)
	recordHover(inner, &log)

	s.Move(10, 10, t0)   // into outer
	s.Move(60, 60, t0)   // into inner, still in outer
	s.Move(10, 10, t0)   // out of inner, still in outer
	s.Move(500, 500, t0) // out of both

	equalLog(t, log, []string{"enter outer", "enter inner", "leave inner", "leave outer"})
}

func TestSurfaceJumpIntoNested(t *testing.T) {
	s := NewSurface()
	outer := NewRegion("outer", 0, 0, HitRect{Width: 200, Height: 200})
	inner := NewRegion("inner", 50, 50, HitRect{Width: 50, Height: 50})
	s.AddRegion(outer)
	s.AddRegion(inner)
	var log []string
	recordHover(outer, &log)
	recordHover(inner, &log)

	s.Move(60, 60, t0)
	s.Move(500, 500, t0)

	// Enters outermost first, leaves innermost first.
	equalLog(t, log, []string{"enter outer", "enter inner", "leave inner", "leave outer"})
}

func TestSurfaceHiddenRegion(t *testing.T) {
	s := NewSurface()
	r := NewRegion("r", 0, 0, HitRect{Width: 10, Height: 10})
	s.AddRegion(r)
	var log []string
	recordHover(r, &log)

	s.Move(5, 5, t0)
	r.Visible = false
	s.Refresh(t0)

	equalLog(t, log, []string{"enter r", "leave r"})
}

func TestSurfacePressRelease(t *testing.T) {
	s := NewSurface()
	var log []string
	s.OnMove(func(e PointerEvent) { log = append(log, "move") })
	s.OnPress(func(e PointerEvent) { log = append(log, "press") })
	s.OnRelease(func(e PointerEvent) { log = append(log, "release") })

	s.Press(5, 5, t0)   // moves first
	s.Press(5, 5, t0)   // already down
	s.Release(5, 5, t0) // same position, no move
	s.Release(5, 5, t0) // not down

	equalLog(t, log, []string{"move", "press", "release"})
	if s.Pressed() {
		t.Error("Pressed() = true after release")
	}
}

func TestRegionDisposeDropsCallbacks(t *testing.T) {
	s := NewSurface()
	r := NewRegion("r", 0, 0, HitRect{Width: 10, Height: 10})
	s.AddRegion(r)
	var log []string
	recordHover(r, &log)

	s.Move(5, 5, t0)
	r.Dispose()
	s.Move(50, 50, t0)
	s.Move(5, 5, t0)

	equalLog(t, log, []string{"enter r"})
	if len(s.Regions()) != 0 {
		t.Errorf("Regions() = %d, want 0", len(s.Regions()))
	}
	if h := r.OnPointerEnter(func(PointerEvent) {}); h.Active() {
		t.Error("disposed region accepted a callback")
	}
}

func TestRegionUnmountCallbacks(t *testing.T) {
	s := NewSurface()
	r := NewRegion("r", 0, 0, HitRect{Width: 10, Height: 10})
	s.AddRegion(r)

	var got []bool
	r.OnUnmount(func(ev PointerEvent) {
		if ev.Type != EventUnmount || ev.Region != r {
			t.Errorf("event = %+v", ev)
		}
		got = append(got, ev.Region.IsDisposed())
	})

	s.RemoveRegion(r)
	s.AddRegion(r)
	r.Dispose()
	r.Dispose()

	want := []bool{false, true}
	if len(got) != len(want) {
		t.Fatalf("unmount fired %d times, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unmount %d disposed = %v, want %v", i, got[i], want[i])
		}
	}
	if h := r.OnUnmount(func(PointerEvent) {}); h.Active() {
		t.Error("disposed region accepted an unmount callback")
	}
}

func TestNilRegionIsInert(t *testing.T) {
	var r *Region
	h := r.OnPointerEnter(func(PointerEvent) {})
	if h.Active() {
		t.Error("nil region returned an active handle")
	}
	h.Remove()
	if r.Hovered() || r.ListenerCount() != 0 || r.Contains(0, 0) {
		t.Error("nil region should be inert")
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	s := NewSurface()
	calls := 0
	h := s.OnMove(func(PointerEvent) { calls++ })
	if !h.Active() {
		t.Fatal("handle should be active")
	}
	s.Move(1, 1, t0)
	h.Remove()
	h.Remove()
	s.Move(2, 2, t0)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if h.Active() {
		t.Error("handle still active after Remove")
	}
	if s.ListenerCount() != 0 {
		t.Errorf("ListenerCount = %d, want 0", s.ListenerCount())
	}
}

func TestSurfaceEventLocalCoords(t *testing.T) {
	s := NewSurface()
	r := NewRegion("r", 100, 50, HitRect{Width: 20, Height: 20})
	s.AddRegion(r)
	var got PointerEvent
	r.OnPointerEnter(func(e PointerEvent) { got = e })

	s.Move(110, 55, t0)

	if got.Type != EventPointerEnter || got.Region != r {
		t.Fatalf("event = %+v", got)
	}
	if got.Local != (Vec2{10, 5}) {
		t.Errorf("Local = %v, want (10,5)", got.Local)
	}
	if !got.Time.Equal(t0) {
		t.Errorf("Time = %v, want %v", got.Time, t0)
	}
}
