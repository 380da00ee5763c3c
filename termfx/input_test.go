package termfx

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/pointerfx"
)

func TestInputHandleMouse(t *testing.T) {
	s := pointerfx.NewSurface()
	in := NewInput(s, DefaultGrid())

	var moves, presses, releases int
	s.OnMove(func(pointerfx.PointerEvent) { moves++ })
	s.OnPress(func(pointerfx.PointerEvent) { presses++ })
	s.OnRelease(func(pointerfx.PointerEvent) { releases++ })

	in.HandleMouse(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if p, ok := s.Pointer(); !ok || p != (pointerfx.Vec2{X: 84, Y: 88}) {
		t.Fatalf("pointer = %v, %v", p, ok)
	}
	if moves != 1 {
		t.Errorf("moves = %d, want 1", moves)
	}

	in.HandleMouse(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	if presses != 1 || !in.Down() || !s.Pressed() {
		t.Errorf("after press: presses=%d down=%v", presses, in.Down())
	}

	// Drag.
	in.HandleMouse(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))
	if presses != 1 {
		t.Errorf("drag pressed again: presses=%d", presses)
	}

	in.HandleMouse(tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone))
	if releases != 1 || in.Down() || s.Pressed() {
		t.Errorf("after release: releases=%d down=%v", releases, in.Down())
	}
}

func TestInputIgnoresSecondaryButton(t *testing.T) {
	s := pointerfx.NewSurface()
	in := NewInput(s, DefaultGrid())
	presses := 0
	s.OnPress(func(pointerfx.PointerEvent) { presses++ })

	in.HandleMouse(tcell.NewEventMouse(3, 3, tcell.Button2, tcell.ModNone))
	if presses != 0 || in.Down() {
		t.Errorf("secondary button pressed: presses=%d", presses)
	}
}
