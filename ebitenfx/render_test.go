package ebitenfx

import (
	"math"
	"testing"

	"github.com/phanxgames/pointerfx"
)

func TestDashArcs(t *testing.T) {
	for _, r := range []float64{4, 20, 36} {
		arcs := dashArcs(r)
		if len(arcs) < 4 {
			t.Errorf("r=%v: %d dashes, want at least 4", r, len(arcs))
		}
		step := 2 * math.Pi / float64(len(arcs))
		for i, a := range arcs {
			if a[1] <= a[0] {
				t.Errorf("r=%v dash %d empty: %v", r, i, a)
			}
			if a[1]-a[0] >= step {
				t.Errorf("r=%v dash %d leaves no gap", r, i)
			}
		}
		if last := arcs[len(arcs)-1][1]; last > 2*math.Pi {
			t.Errorf("r=%v: last dash ends past 2π: %v", r, last)
		}
	}
}

func TestDotPoints(t *testing.T) {
	c := pointerfx.Vec2{X: 100, Y: 50}
	pts := dotPoints(c, 20)
	if len(pts) < 6 {
		t.Fatalf("%d dots, want at least 6", len(pts))
	}
	for i, p := range pts {
		if d := math.Sqrt(p.Sub(c).Len2()); math.Abs(d-20) > 1e-9 {
			t.Errorf("dot %d at distance %v, want 20", i, d)
		}
	}
}

func TestPlayTriangle(t *testing.T) {
	v := pointerfx.Visual{
		Center: pointerfx.Vec2{X: 50, Y: 40},
		Width:  14,
		Height: 16,
		Fill:   pointerfx.Color{R: 1, G: 0.5, B: 0.25, A: 0.8},
	}
	verts, inds := playTriangle(nil, nil, v)
	if len(verts) != 3 || len(inds) != 3 {
		t.Fatalf("verts=%d inds=%d, want 3 and 3", len(verts), len(inds))
	}
	// Tip points right, at the center height.
	tip := verts[2]
	if tip.DstX != 57 || tip.DstY != 40 {
		t.Errorf("tip = (%v,%v), want (57,40)", tip.DstX, tip.DstY)
	}
	if verts[0].DstX != 43 || verts[0].DstY != 32 || verts[1].DstY != 48 {
		t.Errorf("base = (%v,%v)-(%v,%v)", verts[0].DstX, verts[0].DstY, verts[1].DstX, verts[1].DstY)
	}
	if verts[0].ColorA != 0.8 || verts[0].ColorG != 0.5 {
		t.Errorf("vertex color = %+v", verts[0])
	}

	// Appending offsets the indices.
	verts, inds = playTriangle(verts, inds, v)
	if inds[3] != 3 || inds[5] != 5 {
		t.Errorf("second triangle indices = %v", inds[3:])
	}
}

func TestLabelBox(t *testing.T) {
	v := pointerfx.Visual{Center: pointerfx.Vec2{X: 100, Y: 68}, Text: "Play"}
	box := labelBox(v)
	wantW := 4*float64(debugGlyphW) + 2*labelPadding
	if box.Width != wantW {
		t.Errorf("width = %v, want %v", box.Width, wantW)
	}
	if c := box.Center(); c != v.Center {
		t.Errorf("box center = %v, want %v", c, v.Center)
	}
}

func TestStatsLine(t *testing.T) {
	f := pointerfx.Frame{Visible: true, Directive: pointerfx.Directive{Kind: pointerfx.KindVideo}}
	if got, want := statsLine(59.6, 60, f), "FPS: 60  TPS: 60  video"; got != want {
		t.Errorf("statsLine = %q, want %q", got, want)
	}
	f.Visible = false
	if got, want := statsLine(30, 60, f), "FPS: 30  TPS: 60  off"; got != want {
		t.Errorf("statsLine hidden = %q, want %q", got, want)
	}
}
