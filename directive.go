package pointerfx

// Directive describes how the pointer indicator should currently look.
// Exactly one directive is live at a time: either DefaultDirective() or the
// resolved directive of the most recently engaged zone.
//
// Directive is comparable; two directives are equal when every field matches.
type Directive struct {
	Kind      Kind
	Label     string // shown near the pointer while hovering; empty means absent
	Theme     Theme
	Intensity Intensity
	Texture   Texture
	Accent    string // passed through untouched for renderers that want it
	Hovering  bool
}

// DefaultDirective returns the directive that is live when no zone is
// engaged: KindDefault, every optional field unset, Hovering false.
func DefaultDirective() Directive {
	return Directive{}
}

// IsDefault reports whether d equals DefaultDirective().
func (d Directive) IsDefault() bool {
	return d == Directive{}
}

// Descriptor is the partial directive a zone is registered with. Enumerated
// fields are kept as strings so malformed input can be represented; Resolve
// maps anything unknown to the engine default instead of failing.
type Descriptor struct {
	Kind      string `json:"kind,omitempty" mapstructure:"kind"`
	Label     string `json:"label,omitempty" mapstructure:"label"`
	Theme     string `json:"theme,omitempty" mapstructure:"theme"`
	Intensity string `json:"intensity,omitempty" mapstructure:"intensity"`
	Texture   string `json:"texture,omitempty" mapstructure:"texture"`
	Accent    string `json:"accent,omitempty" mapstructure:"accent"`
}

// Resolve produces the directive a zone installs on enter. Missing fields are
// filled with the engine defaults: kind default, theme primary, intensity
// medium, texture smooth, label and accent absent. Hovering is always true.
func (d Descriptor) Resolve() Directive {
	return Directive{
		Kind:      ParseKind(d.Kind),
		Label:     d.Label,
		Theme:     ParseTheme(d.Theme),
		Intensity: ParseIntensity(d.Intensity),
		Texture:   ParseTexture(d.Texture),
		Accent:    d.Accent,
		Hovering:  true,
	}
}
