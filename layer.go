package pointerfx

// Visual is the geometry and style of one layer for one frame, in host
// coordinates. Dimensions already include the directive's kind scale and the
// press scale.
type Visual struct {
	Layer   LayerID
	Visible bool
	Shape   Shape

	// Center is where the shape is drawn: the rendered position plus any
	// registration offset.
	Center Vec2
	// Radius applies to ShapeCircle; Width and Height to ShapeTriangle and
	// ShapeCaret.
	Radius        float64
	Width, Height float64
	Scale         float64

	Fill        Color // zero alpha means no fill
	Stroke      Color // zero alpha means no stroke
	StrokeWidth float64
	Border      BorderStyle

	Text   string // ShapeText only
	Accent string
}

// LayerFunc renders one layer from the driver's per-frame output. Layer
// functions are pure: they never read the store.
type LayerFunc func(pos Vec2, d Directive, pressScale float64) Visual

// Palette is the set of colors a theme renders with.
type Palette struct {
	Dot   Color
	Ring  Color
	Trail Color
	Label Color // label background
	Ink   Color // label text
}

var palettes = [...]Palette{
	ThemePrimary: {
		Dot:   Color{R: 0.98, G: 0.96, B: 0.90, A: 1},
		Ring:  Color{R: 0.83, G: 0.69, B: 0.42, A: 1},
		Trail: Color{R: 0.83, G: 0.69, B: 0.42, A: 1},
		Label: Color{R: 0.20, G: 0.17, B: 0.14, A: 0.9},
		Ink:   Color{R: 0.98, G: 0.96, B: 0.90, A: 1},
	},
	ThemeAltA: {
		Dot:   Color{R: 0.95, G: 0.97, B: 0.93, A: 1},
		Ring:  Color{R: 0.55, G: 0.65, B: 0.52, A: 1},
		Trail: Color{R: 0.55, G: 0.65, B: 0.52, A: 1},
		Label: Color{R: 0.16, G: 0.22, B: 0.16, A: 0.9},
		Ink:   Color{R: 0.95, G: 0.97, B: 0.93, A: 1},
	},
	ThemeAltB: {
		Dot:   Color{R: 0.99, G: 0.94, B: 0.94, A: 1},
		Ring:  Color{R: 0.80, G: 0.56, B: 0.58, A: 1},
		Trail: Color{R: 0.80, G: 0.56, B: 0.58, A: 1},
		Label: Color{R: 0.27, G: 0.15, B: 0.17, A: 0.9},
		Ink:   Color{R: 0.99, G: 0.94, B: 0.94, A: 1},
	},
}

// PaletteFor returns the palette of theme t. Unset and unknown themes use
// the primary palette.
func PaletteFor(t Theme) Palette {
	if t == ThemeUnset || int(t) >= len(palettes) {
		return palettes[ThemePrimary]
	}
	return palettes[t]
}

// Base geometry in host units.
const (
	dotRadius      = 4.0
	ringRadius     = 20.0
	trailRadius    = 36.0
	trailAlpha     = 0.18
	galleryOffset  = 12.0
	playWidth      = 14.0
	playHeight     = 16.0
	caretWidth     = 2.0
	caretHeight    = 20.0
	ringStroke     = 1.5
	buttonFillTint = 0.25
)

// RenderDot renders the dot layer.
func RenderDot(pos Vec2, d Directive, pressScale float64) Visual {
	p := PaletteFor(d.Theme)
	v := Visual{
		Layer:   LayerDot,
		Visible: true,
		Shape:   ShapeCircle,
		Center:  pos,
		Scale:   pressScale,
		Fill:    p.Dot.WithAlpha(d.Intensity.Opacity()),
		Accent:  d.Accent,
	}
	switch d.Kind {
	case KindButton:
		v.Visible = false
		v.Scale = 0
	case KindGallery:
		v.Scale = 3 * pressScale
		v.Radius = dotRadius * v.Scale
		v.Center = pos.Add(Vec2{galleryOffset, galleryOffset})
	case KindVideo:
		v.Shape = ShapeTriangle
		v.Width = playWidth * pressScale
		v.Height = playHeight * pressScale
	case KindForm:
		v.Shape = ShapeCaret
		v.Width = caretWidth
		v.Height = caretHeight * pressScale
	case KindLink:
		v.Scale = 0.5 * pressScale
		v.Radius = dotRadius * v.Scale
	default:
		v.Radius = dotRadius * pressScale
	}
	return v
}

// ringScale is the ring's size multiplier per kind.
func ringScale(k Kind) float64 {
	switch k {
	case KindButton:
		return 1.5
	case KindGallery:
		return 1.2
	case KindVideo:
		return 1.8
	case KindForm:
		return 0.6
	case KindLink:
		return 1.3
	default:
		return 1
	}
}

// RenderRing renders the ring layer. The directive's texture selects the
// border style.
func RenderRing(pos Vec2, d Directive, pressScale float64) Visual {
	p := PaletteFor(d.Theme)
	opacity := d.Intensity.Opacity()
	scale := ringScale(d.Kind) * pressScale
	v := Visual{
		Layer:       LayerRing,
		Visible:     true,
		Shape:       ShapeCircle,
		Center:      pos,
		Radius:      ringRadius * scale,
		Scale:       scale,
		Stroke:      p.Ring.WithAlpha(opacity),
		StrokeWidth: ringStroke,
		Border:      d.Texture.Border(),
		Accent:      d.Accent,
	}
	if d.Kind == KindButton {
		v.Fill = p.Ring.WithAlpha(buttonFillTint * opacity)
	}
	return v
}

// RenderTrail renders the trail layer: a soft wide glow. Press feedback does
// not apply to the trail.
func RenderTrail(pos Vec2, d Directive, _ float64) Visual {
	p := PaletteFor(d.Theme)
	return Visual{
		Layer:   LayerTrail,
		Visible: true,
		Shape:   ShapeCircle,
		Center:  pos,
		Radius:  trailRadius,
		Scale:   1,
		Fill:    p.Trail.WithAlpha(trailAlpha * d.Intensity.Opacity()),
		Accent:  d.Accent,
	}
}

// RenderLabel renders the label layer. It is visible only while a zone is
// engaged and the directive carries label text.
func RenderLabel(pos Vec2, d Directive, _ float64) Visual {
	p := PaletteFor(d.Theme)
	return Visual{
		Layer:   LayerLabel,
		Visible: d.Hovering && d.Label != "",
		Shape:   ShapeText,
		Center:  pos,
		Scale:   1,
		Fill:    p.Label,
		Stroke:  p.Ink,
		Text:    d.Label,
		Accent:  d.Accent,
	}
}

// DrawOrder lists the layers back to front.
var DrawOrder = [LayerCount]LayerID{LayerTrail, LayerRing, LayerDot, LayerLabel}

// DefaultLayers returns the built-in layer functions indexed by LayerID.
func DefaultLayers() [LayerCount]LayerFunc {
	return [LayerCount]LayerFunc{
		LayerDot:   RenderDot,
		LayerRing:  RenderRing,
		LayerTrail: RenderTrail,
		LayerLabel: RenderLabel,
	}
}
