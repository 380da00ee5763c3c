package ebitenfx

import (
	"testing"
	"time"

	"github.com/phanxgames/pointerfx"
)

type surfaceLog struct {
	moves, presses, releases int
}

func watch(s *pointerfx.Surface) *surfaceLog {
	l := &surfaceLog{}
	s.OnMove(func(pointerfx.PointerEvent) { l.moves++ })
	s.OnPress(func(pointerfx.PointerEvent) { l.presses++ })
	s.OnRelease(func(pointerfx.PointerEvent) { l.releases++ })
	return l
}

func TestInputApply(t *testing.T) {
	s := pointerfx.NewSurface()
	in := NewInput(s)
	log := watch(s)
	now := time.Unix(0, 0)
	at := func(x, y float64, down bool) pointerState {
		return pointerState{pos: pointerfx.Vec2{X: x, Y: y}, down: down}
	}

	in.apply(at(10, 10, false), now)
	if log.moves != 1 {
		t.Fatalf("first poll moves = %d, want 1", log.moves)
	}

	// A stationary pointer produces no events.
	in.apply(at(10, 10, false), now)
	if log.moves != 1 {
		t.Errorf("stationary poll moved: moves = %d", log.moves)
	}

	in.apply(at(20, 10, false), now)
	if log.moves != 2 {
		t.Errorf("moves = %d, want 2", log.moves)
	}

	in.apply(at(20, 10, true), now)
	if log.presses != 1 || !s.Pressed() {
		t.Errorf("presses = %d, want 1", log.presses)
	}

	// Release and move in the same poll: the surface moves first.
	in.apply(at(30, 10, false), now)
	if log.releases != 1 || log.moves != 3 {
		t.Errorf("releases = %d moves = %d, want 1 and 3", log.releases, log.moves)
	}
	if p, _ := s.Pointer(); p != (pointerfx.Vec2{X: 30, Y: 10}) {
		t.Errorf("pointer = %v, want (30,10)", p)
	}
}

func TestInputPollUsesReader(t *testing.T) {
	s := pointerfx.NewSurface()
	in := NewInput(s)
	in.read = func() pointerState { return pointerState{pos: pointerfx.Vec2{X: 5, Y: 6}} }
	in.Poll(time.Unix(0, 0))
	if p, ok := s.Pointer(); !ok || p != (pointerfx.Vec2{X: 5, Y: 6}) {
		t.Errorf("pointer = %v, %v", p, ok)
	}
}

func TestInputTouchLiftReleasesAtTouch(t *testing.T) {
	s := pointerfx.NewSurface()
	in := NewInput(s)
	r := pointerfx.NewRegion("button", 100, 100, pointerfx.HitRect{Width: 50, Height: 50})
	s.AddRegion(r)
	var leaves int
	r.OnPointerLeave(func(pointerfx.PointerEvent) { leaves++ })

	var release pointerfx.Vec2
	s.OnRelease(func(ev pointerfx.PointerEvent) { release = ev.Position })

	now := time.Unix(0, 0)
	idle := pointerfx.Vec2{}
	touch := pointerfx.Vec2{X: 120, Y: 130}
	in.apply(in.choose(&touch, idle, false), now)
	in.apply(in.choose(nil, idle, false), now)
	in.apply(in.choose(nil, idle, false), now)

	if release != touch {
		t.Errorf("release at %v, want %v", release, touch)
	}
	if leaves != 0 || !r.Hovered() {
		t.Errorf("leaves = %d hovered = %v, want 0 and true", leaves, r.Hovered())
	}

	// The mouse takes over once it moves.
	in.apply(in.choose(nil, pointerfx.Vec2{X: 5, Y: 5}, false), now)
	if p, _ := s.Pointer(); p != (pointerfx.Vec2{X: 5, Y: 5}) || leaves != 1 {
		t.Errorf("pointer = %v leaves = %d, want (5,5) and 1", p, leaves)
	}
}
