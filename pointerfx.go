package pointerfx

import "image/color"

// Vec2 is a 2D vector used for positions, velocities, and offsets throughout
// the API. The coordinate system is the host's: origin top-left, Y down.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len2 returns the squared length of v.
func (v Vec2) Len2() float64 { return v.X*v.X + v.Y*v.Y }

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// RGBA converts c to a premultiplied color.RGBA for host renderers.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. Origin top-left, Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Kind selects the geometric transform applied to the dot and ring layers.
type Kind uint8

const (
	KindDefault Kind = iota // plain dot inside a ring
	KindButton              // dot hides, ring grows and fills
	KindGallery             // dot enlarges with an offset registration point
	KindVideo               // dot becomes a triangular play glyph
	KindForm                // dot collapses into a thin text caret
	KindLink                // dot shrinks, ring grows slightly
)

var kindNames = [...]string{"default", "button", "gallery", "video", "form", "link"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindDefault]
}

// ParseKind maps a kind name to a Kind. Unknown names yield KindDefault.
func ParseKind(s string) Kind {
	for i, name := range kindNames {
		if s == name {
			return Kind(i)
		}
	}
	return KindDefault
}

// Theme selects one of the three palettes. ThemeUnset is only carried by the
// default directive; zones always resolve to a concrete theme.
type Theme uint8

const (
	ThemeUnset   Theme = iota
	ThemePrimary       // ivory and champagne gold
	ThemeAltA          // sage
	ThemeAltB          // dusty rose
)

var themeNames = [...]string{"", "primary", "altA", "altB"}

func (t Theme) String() string {
	if int(t) < len(themeNames) {
		return themeNames[t]
	}
	return ""
}

// ParseTheme maps a theme name to a Theme. Unknown or empty names yield
// ThemePrimary.
func ParseTheme(s string) Theme {
	for i := 1; i < len(themeNames); i++ {
		if s == themeNames[i] {
			return Theme(i)
		}
	}
	return ThemePrimary
}

// Intensity is a rendering-only opacity modifier.
type Intensity uint8

const (
	IntensityUnset Intensity = iota
	IntensityLow
	IntensityMedium
	IntensityHigh
)

var intensityNames = [...]string{"", "low", "medium", "high"}

func (i Intensity) String() string {
	if int(i) < len(intensityNames) {
		return intensityNames[i]
	}
	return ""
}

// ParseIntensity maps an intensity name to an Intensity. Unknown or empty
// names yield IntensityMedium.
func ParseIntensity(s string) Intensity {
	for i := 1; i < len(intensityNames); i++ {
		if s == intensityNames[i] {
			return Intensity(i)
		}
	}
	return IntensityMedium
}

// Opacity returns the alpha multiplier for the intensity. Unset behaves as
// medium.
func (i Intensity) Opacity() float64 {
	switch i {
	case IntensityLow:
		return 0.6
	case IntensityHigh:
		return 1
	default:
		return 0.85
	}
}

// Texture selects the ring's border style.
type Texture uint8

const (
	TextureUnset Texture = iota
	TextureSmooth
	TextureWeathered
	TexturePatina
	TextureVintage
)

var textureNames = [...]string{"", "smooth", "weathered", "patina", "vintage"}

func (t Texture) String() string {
	if int(t) < len(textureNames) {
		return textureNames[t]
	}
	return ""
}

// ParseTexture maps a texture name to a Texture. Unknown or empty names yield
// TextureSmooth.
func ParseTexture(s string) Texture {
	for i := 1; i < len(textureNames); i++ {
		if s == textureNames[i] {
			return Texture(i)
		}
	}
	return TextureSmooth
}

// BorderStyle is the stroke pattern used to outline a shape.
type BorderStyle uint8

const (
	BorderSolid  BorderStyle = iota // continuous stroke
	BorderDashed                    // long dashes with gaps
	BorderDotted                    // short dots
	BorderDouble                    // two concentric strokes
)

// Border returns the ring border style for the texture. Unset behaves as
// smooth.
func (t Texture) Border() BorderStyle {
	switch t {
	case TextureWeathered:
		return BorderDashed
	case TexturePatina:
		return BorderDotted
	case TextureVintage:
		return BorderDouble
	default:
		return BorderSolid
	}
}

// Shape is the primitive a Visual is drawn with.
type Shape uint8

const (
	ShapeCircle   Shape = iota // filled or stroked circle of Radius
	ShapeTriangle              // right-pointing play glyph in a Width x Height box
	ShapeCaret                 // thin vertical bar of Width x Height
	ShapeText                  // Text drawn centered on Center
)

// LayerID identifies one of the four visual layers.
type LayerID uint8

const (
	LayerDot LayerID = iota
	LayerRing
	LayerTrail
	LayerLabel
	LayerCount // number of layers, not a layer itself
)

var layerNames = [...]string{"dot", "ring", "trail", "label"}

func (l LayerID) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "unknown"
}

// EventType identifies a kind of host pointer event.
type EventType uint8

const (
	EventPointerMove  EventType = iota // the pointer moved
	EventPointerDown                   // a pointer button was pressed
	EventPointerUp                     // a pointer button was released
	EventPointerEnter                  // the pointer entered a region's bounds
	EventPointerLeave                  // the pointer left a region's bounds
	EventUnmount                       // a region was removed from its surface
)
