package termfx

import (
	"testing"

	"github.com/phanxgames/pointerfx"
)

func TestGridCenterAndCell(t *testing.T) {
	g := DefaultGrid()
	tests := []struct {
		col, row int
		want     pointerfx.Vec2
	}{
		{0, 0, pointerfx.Vec2{X: 4, Y: 8}},
		{10, 5, pointerfx.Vec2{X: 84, Y: 88}},
		{79, 23, pointerfx.Vec2{X: 636, Y: 376}},
	}
	for _, tt := range tests {
		got := g.Center(tt.col, tt.row)
		if got != tt.want {
			t.Errorf("Center(%d,%d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
		col, row := g.Cell(got)
		if col != tt.col || row != tt.row {
			t.Errorf("Cell(%v) = (%d,%d), want (%d,%d)", got, col, row, tt.col, tt.row)
		}
	}
}

func TestGridCellNegative(t *testing.T) {
	col, row := DefaultGrid().Cell(pointerfx.Vec2{X: -1, Y: -1})
	if col != -1 || row != -1 {
		t.Errorf("Cell(-1,-1) = (%d,%d), want (-1,-1)", col, row)
	}
}

func TestGridZeroValueUsesDefault(t *testing.T) {
	var g Grid
	if got := g.Center(1, 1); got != (pointerfx.Vec2{X: 12, Y: 24}) {
		t.Errorf("zero grid Center(1,1) = %v", got)
	}
}

func TestGridRegion(t *testing.T) {
	g := DefaultGrid()
	r := g.Region("rsvp", 4, 2, 10, 3)
	if r.Name != "rsvp" {
		t.Errorf("Name = %q", r.Name)
	}
	for _, tc := range []struct {
		col, row int
		inside   bool
	}{
		{4, 2, true},
		{13, 4, true},
		{14, 2, false},
		{3, 2, false},
		{4, 5, false},
	} {
		p := g.Center(tc.col, tc.row)
		if got := r.Contains(p.X, p.Y); got != tc.inside {
			t.Errorf("cell (%d,%d) inside = %v, want %v", tc.col, tc.row, got, tc.inside)
		}
	}
}
