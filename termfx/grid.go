package termfx

import (
	"math"

	"github.com/phanxgames/pointerfx"
)

// Grid maps terminal cells to the pixel space the engine works in.
type Grid struct {
	CellW, CellH float64
}

// DefaultGrid is an 8x16 pixel cell.
func DefaultGrid() Grid {
	return Grid{CellW: 8, CellH: 16}
}

func (g Grid) normalized() Grid {
	if g.CellW <= 0 || g.CellH <= 0 {
		return DefaultGrid()
	}
	return g
}

// Center returns the pixel position at the center of cell (col, row).
func (g Grid) Center(col, row int) pointerfx.Vec2 {
	g = g.normalized()
	return pointerfx.Vec2{
		X: (float64(col) + 0.5) * g.CellW,
		Y: (float64(row) + 0.5) * g.CellH,
	}
}

// Cell returns the cell containing pixel position p.
func (g Grid) Cell(p pointerfx.Vec2) (col, row int) {
	g = g.normalized()
	return int(math.Floor(p.X / g.CellW)), int(math.Floor(p.Y / g.CellH))
}

// Bounds returns the pixel rectangle covered by w x h cells starting at
// (col, row).
func (g Grid) Bounds(col, row, w, h int) pointerfx.Rect {
	g = g.normalized()
	return pointerfx.Rect{
		X:      float64(col) * g.CellW,
		Y:      float64(row) * g.CellH,
		Width:  float64(w) * g.CellW,
		Height: float64(h) * g.CellH,
	}
}

// Region returns a rectangular region covering w x h cells starting at
// (col, row). Terminal pointers always sit on cell centers, so adjacent
// regions never both contain the pointer.
func (g Grid) Region(name string, col, row, w, h int) *pointerfx.Region {
	b := g.Bounds(col, row, w, h)
	return pointerfx.NewRegion(name, b.X, b.Y, pointerfx.HitRect{Width: b.Width, Height: b.Height})
}
