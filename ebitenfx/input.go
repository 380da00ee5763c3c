package ebitenfx

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pointerfx"
)

// pointerState is one poll of the host pointer.
type pointerState struct {
	pos  pointerfx.Vec2
	down bool
}

// Input polls the mouse, or the first active touch, and feeds changes into
// a surface. Only the left mouse button counts as a press.
type Input struct {
	surface *pointerfx.Surface
	read    func() pointerState

	last     pointerState
	known    bool
	touchIDs []ebiten.TouchID
	touch    touchState
}

// touchState remembers the last touch. A lifted finger releases where it
// was, and the pointer stays there until the mouse itself moves or clicks.
type touchState struct {
	held   bool
	pos    pointerfx.Vec2
	cursor pointerfx.Vec2
}

// NewInput creates an Input feeding s.
func NewInput(s *pointerfx.Surface) *Input {
	in := &Input{surface: s}
	in.read = in.readEbiten
	return in
}

// Poll reads the pointer once and dispatches what changed since the last
// poll. Call it once per Update.
func (in *Input) Poll(now time.Time) {
	in.apply(in.read(), now)
}

func (in *Input) apply(st pointerState, now time.Time) {
	switch {
	case st.down && !in.last.down:
		in.surface.Press(st.pos.X, st.pos.Y, now)
	case !st.down && in.last.down:
		in.surface.Release(st.pos.X, st.pos.Y, now)
	case !in.known || st.pos != in.last.pos:
		in.surface.Move(st.pos.X, st.pos.Y, now)
	}
	in.last = st
	in.known = true
}

// readEbiten prefers an active touch so touch screens drive the pointer too.
func (in *Input) readEbiten() pointerState {
	mx, my := ebiten.CursorPosition()
	cursor := pointerfx.Vec2{X: float64(mx), Y: float64(my)}
	button := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(in.touchIDs[0])
		touch := pointerfx.Vec2{X: float64(tx), Y: float64(ty)}
		return in.choose(&touch, cursor, button)
	}
	return in.choose(nil, cursor, button)
}

// choose merges one poll of the first touch (nil when none) and the mouse.
func (in *Input) choose(touch *pointerfx.Vec2, cursor pointerfx.Vec2, button bool) pointerState {
	if touch != nil {
		in.touch = touchState{held: true, pos: *touch, cursor: cursor}
		return pointerState{pos: *touch, down: true}
	}
	if in.touch.held {
		if !button && cursor == in.touch.cursor {
			return pointerState{pos: in.touch.pos}
		}
		in.touch = touchState{}
	}
	return pointerState{pos: cursor, down: button}
}
