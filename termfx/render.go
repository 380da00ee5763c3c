package termfx

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/pointerfx"
)

// Glyphs used to rasterize the layers.
const (
	trailRune  = '░'
	fillRune   = '▒'
	dotRune    = '●'
	smallRune  = '•'
	playRune   = '▶'
	caretRune  = '│'
	dottedRune = '·'
	doubleRune = '◎'
	solidRune  = '○'
	dashedRune = '╌'
)

// Renderer rasterizes frames into a tcell screen. Terminals have no alpha,
// so every color is blended over Background.
type Renderer struct {
	screen     tcell.Screen
	grid       Grid
	Background pointerfx.Color
}

// NewRenderer creates a renderer drawing into screen through grid g.
func NewRenderer(screen tcell.Screen, g Grid) *Renderer {
	return &Renderer{
		screen:     screen,
		grid:       g.normalized(),
		Background: pointerfx.Color{A: 1},
	}
}

// Draw draws every visible layer of f, back to front. It neither clears nor
// shows the screen.
func (r *Renderer) Draw(f pointerfx.Frame) {
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
			r.drawCircle(v)
		case pointerfx.ShapeTriangle:
			r.drawGlyph(v.Center, playRune, v.Fill)
		case pointerfx.ShapeCaret:
			r.drawCaret(v)
		case pointerfx.ShapeText:
			r.drawText(v)
		}
	}
}

func (r *Renderer) drawCircle(v pointerfx.Visual) {
	// Sub-cell circles collapse to one glyph.
	if v.Radius < r.grid.CellW {
		if v.Fill.A > 0 {
			ch := smallRune
			if v.Radius >= r.grid.CellW/2 {
				ch = dotRune
			}
			r.drawGlyph(v.Center, ch, v.Fill)
		}
		return
	}

	fill := fillRune
	if v.Layer == pointerfx.LayerTrail {
		fill = trailRune
	}
	c0, r0 := r.grid.Cell(pointerfx.Vec2{X: v.Center.X - v.Radius, Y: v.Center.Y - v.Radius})
	c1, r1 := r.grid.Cell(pointerfx.Vec2{X: v.Center.X + v.Radius, Y: v.Center.Y + v.Radius})
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			p := r.grid.Center(col, row)
			d := p.Sub(v.Center)
			dist := math.Hypot(d.X, d.Y)
			theta := math.Atan2(d.Y, d.X)
			// Half the cell's extent along the radius.
			band := (math.Abs(math.Cos(theta))*r.grid.CellW + math.Abs(math.Sin(theta))*r.grid.CellH) / 2
			switch {
			case v.Stroke.A > 0 && math.Abs(dist-v.Radius) <= band:
				if ch, ok := borderRune(v.Border, theta); ok {
					r.set(col, row, ch, v.Stroke)
				}
			case v.Fill.A > 0 && dist < v.Radius:
				r.set(col, row, fill, v.Fill)
			}
		}
	}
}

// borderRune returns the glyph for a ring cell at angle theta, and false for
// cells that fall in a dash gap.
func borderRune(style pointerfx.BorderStyle, theta float64) (rune, bool) {
	switch style {
	case pointerfx.BorderDashed:
		seg := int(math.Floor((theta + math.Pi) / (math.Pi / 6)))
		return dashedRune, seg%2 == 0
	case pointerfx.BorderDotted:
		return dottedRune, true
	case pointerfx.BorderDouble:
		return doubleRune, true
	default:
		return solidRune, true
	}
}

func (r *Renderer) drawCaret(v pointerfx.Visual) {
	rows := int(math.Max(1, math.Round(v.Height/r.grid.CellH)))
	col, row := r.grid.Cell(v.Center)
	top := row - (rows-1)/2
	for i := 0; i < rows; i++ {
		r.set(col, top+i, caretRune, v.Fill)
	}
}

func (r *Renderer) drawText(v pointerfx.Visual) {
	text := []rune(v.Text)
	col, row := r.grid.Cell(v.Center)
	// One cell of padding on each side.
	start := col - (len(text)+2)/2
	style := tcell.StyleDefault.Foreground(r.color(v.Stroke)).Background(r.color(v.Fill))
	r.screen.SetContent(start, row, ' ', nil, style)
	for i, ch := range text {
		r.screen.SetContent(start+1+i, row, ch, nil, style)
	}
	r.screen.SetContent(start+1+len(text), row, ' ', nil, style)
}

func (r *Renderer) drawGlyph(p pointerfx.Vec2, ch rune, c pointerfx.Color) {
	col, row := r.grid.Cell(p)
	r.set(col, row, ch, c)
}

func (r *Renderer) set(col, row int, ch rune, c pointerfx.Color) {
	w, h := r.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	style := tcell.StyleDefault.Foreground(r.color(c)).Background(r.color(r.Background))
	r.screen.SetContent(col, row, ch, nil, style)
}

// color blends c over the background.
func (r *Renderer) color(c pointerfx.Color) tcell.Color {
	bg := r.Background
	a := math.Max(0, math.Min(1, c.A))
	mix := func(fg, bg float64) int32 {
		return int32(math.Round((fg*a + bg*(1-a)) * 255))
	}
	return tcell.NewRGBColor(mix(c.R, bg.R), mix(c.G, bg.G), mix(c.B, bg.B))
}
