package termfx

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/pointerfx"
)

// Input translates tcell mouse events into surface moves, presses and
// releases. Only the primary button counts as a press.
type Input struct {
	surface *pointerfx.Surface
	grid    Grid
	down    bool
}

// NewInput creates an Input feeding s through grid g.
func NewInput(s *pointerfx.Surface, g Grid) *Input {
	return &Input{surface: s, grid: g}
}

// HandleMouse dispatches ev to the surface.
func (in *Input) HandleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	p := in.grid.Center(col, row)
	t := ev.When()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !in.down:
		in.surface.Press(p.X, p.Y, t)
	case !down && in.down:
		in.surface.Release(p.X, p.Y, t)
	default:
		in.surface.Move(p.X, p.Y, t)
	}
	in.down = down
}

// Down reports whether the primary button is held.
func (in *Input) Down() bool {
	return in.down
}
