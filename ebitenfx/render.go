package ebitenfx

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/pointerfx"
)

// Border and label geometry in pixels.
const (
	dashLength   = 6.0
	dashGap      = 4.0
	dotSpacing   = 5.0
	doubleGap    = 3.0
	arcSteps     = 3
	debugGlyphW  = 6
	debugGlyphH  = 16
	labelPadding = 4.0
)

// --- White image singleton (single-threaded, no sync.Once) ---

var whiteImage *ebiten.Image

// whiteSubImage returns the center pixel of a 3x3 white image, so sampling
// never bleeds past the edge.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Renderer draws frames onto an ebiten image.
type Renderer struct {
	verts []ebiten.Vertex
	inds  []uint16
}

// Draw draws every visible layer of f onto dst, back to front.
func (r *Renderer) Draw(dst *ebiten.Image, f pointerfx.Frame) {
	if !f.Visible {
		return
	}
	for _, id := range pointerfx.DrawOrder {
		v := f.Visuals[id]
		if !v.Visible {
			continue
		}
		switch v.Shape {
		case pointerfx.ShapeCircle:
			drawCircle(dst, v)
		case pointerfx.ShapeTriangle:
			r.drawTriangle(dst, v)
		case pointerfx.ShapeCaret:
			drawCaret(dst, v)
		case pointerfx.ShapeText:
			drawLabel(dst, v)
		}
	}
}

func drawCircle(dst *ebiten.Image, v pointerfx.Visual) {
	if v.Radius <= 0 {
		return
	}
	cx, cy, rad := float32(v.Center.X), float32(v.Center.Y), float32(v.Radius)
	if v.Fill.A > 0 {
		vector.DrawFilledCircle(dst, cx, cy, rad, v.Fill.RGBA(), true)
	}
	if v.Stroke.A <= 0 || v.StrokeWidth <= 0 {
		return
	}
	sw := float32(v.StrokeWidth)
	clr := v.Stroke.RGBA()
	switch v.Border {
	case pointerfx.BorderDashed:
		for _, arc := range dashArcs(v.Radius) {
			strokeArc(dst, v.Center, v.Radius, arc[0], arc[1], sw, clr)
		}
	case pointerfx.BorderDotted:
		for _, p := range dotPoints(v.Center, v.Radius) {
			vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), sw, clr, true)
		}
	case pointerfx.BorderDouble:
		vector.StrokeCircle(dst, cx, cy, rad, sw, clr, true)
		if inner := rad - float32(doubleGap) - sw; inner > 0 {
			vector.StrokeCircle(dst, cx, cy, inner, sw, clr, true)
		}
	default:
		vector.StrokeCircle(dst, cx, cy, rad, sw, clr, true)
	}
}

// dashArcs splits a circle of radius into dashes and returns each dash as a
// [start, end] angle pair in radians.
func dashArcs(radius float64) [][2]float64 {
	circumference := 2 * math.Pi * radius
	n := int(math.Max(4, math.Round(circumference/(dashLength+dashGap))))
	step := 2 * math.Pi / float64(n)
	on := step * dashLength / (dashLength + dashGap)
	arcs := make([][2]float64, n)
	for i := range arcs {
		start := float64(i) * step
		arcs[i] = [2]float64{start, start + on}
	}
	return arcs
}

// dotPoints spaces dots evenly around a circle.
func dotPoints(center pointerfx.Vec2, radius float64) []pointerfx.Vec2 {
	n := int(math.Max(6, math.Round(2*math.Pi*radius/dotSpacing)))
	pts := make([]pointerfx.Vec2, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = pointerfx.Vec2{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return pts
}

// strokeArc approximates an arc with arcSteps straight segments.
func strokeArc(dst *ebiten.Image, c pointerfx.Vec2, radius, a0, a1 float64, sw float32, clr color.Color) {
	px, py := c.X+radius*math.Cos(a0), c.Y+radius*math.Sin(a0)
	for i := 1; i <= arcSteps; i++ {
		a := a0 + (a1-a0)*float64(i)/arcSteps
		x, y := c.X+radius*math.Cos(a), c.Y+radius*math.Sin(a)
		vector.StrokeLine(dst, float32(px), float32(py), float32(x), float32(y), sw, clr, true)
		px, py = x, y
	}
}

// playTriangle appends the vertices of a right-pointing play glyph centered
// on v.Center.
func playTriangle(verts []ebiten.Vertex, inds []uint16, v pointerfx.Visual) ([]ebiten.Vertex, []uint16) {
	hw, hh := v.Width/2, v.Height/2
	pts := [3]pointerfx.Vec2{
		{X: v.Center.X - hw, Y: v.Center.Y - hh},
		{X: v.Center.X - hw, Y: v.Center.Y + hh},
		{X: v.Center.X + hw, Y: v.Center.Y},
	}
	base := uint16(len(verts))
	for _, p := range pts {
		verts = append(verts, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: float32(v.Fill.R), ColorG: float32(v.Fill.G),
			ColorB: float32(v.Fill.B), ColorA: float32(v.Fill.A),
		})
	}
	inds = append(inds, base, base+1, base+2)
	return verts, inds
}

func (r *Renderer) drawTriangle(dst *ebiten.Image, v pointerfx.Visual) {
	r.verts, r.inds = playTriangle(r.verts[:0], r.inds[:0], v)
	var op ebiten.DrawTrianglesOptions
	op.AntiAlias = true
	dst.DrawTriangles(r.verts, r.inds, whiteSubImage(), &op)
}

func drawCaret(dst *ebiten.Image, v pointerfx.Visual) {
	vector.DrawFilledRect(dst,
		float32(v.Center.X-v.Width/2), float32(v.Center.Y-v.Height/2),
		float32(v.Width), float32(v.Height),
		v.Fill.RGBA(), true)
}

// labelBox is the background rectangle of a label, centered on v.Center and
// sized for the debug font.
func labelBox(v pointerfx.Visual) pointerfx.Rect {
	w := float64(len([]rune(v.Text))*debugGlyphW) + 2*labelPadding
	h := float64(debugGlyphH) + labelPadding
	return pointerfx.Rect{X: v.Center.X - w/2, Y: v.Center.Y - h/2, Width: w, Height: h}
}

func drawLabel(dst *ebiten.Image, v pointerfx.Visual) {
	box := labelBox(v)
	vector.DrawFilledRect(dst, float32(box.X), float32(box.Y), float32(box.Width), float32(box.Height), v.Fill.RGBA(), true)
	ebitenutil.DebugPrintAt(dst, v.Text, int(box.X+labelPadding), int(box.Y+labelPadding/2))
}
