package pointerfx

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse is the press feedback of one layer: a compress tween on press and a
// restore tween on release, each starting from the current scale so rapid
// clicks never jump.
//
// There is no global animation manager; the driver calls Update each frame.
type Pulse struct {
	depth float64 // scale reached while pressed, e.g. 0.75
	scale float64
	to    float64 // where the active tween ends
	tween *gween.Tween
}

// NewPulse creates a pulse at rest (scale 1) that compresses to depth.
func NewPulse(depth float64) *Pulse {
	return &Pulse{depth: depth, scale: 1, to: 1}
}

// Press starts compressing toward the pulse depth over duration.
func (p *Pulse) Press(duration time.Duration) {
	p.start(p.depth, duration, ease.OutQuad)
}

// Release starts restoring toward scale 1 over duration.
func (p *Pulse) Release(duration time.Duration) {
	p.start(1, duration, ease.OutBack)
}

func (p *Pulse) start(to float64, duration time.Duration, fn ease.TweenFunc) {
	p.to = to
	if duration <= 0 {
		p.scale = to
		p.tween = nil
		return
	}
	p.tween = gween.New(float32(p.scale), float32(to), float32(duration.Seconds()), fn)
}

// Update advances the active tween by dt seconds and returns the scale.
func (p *Pulse) Update(dt float64) float64 {
	if p.tween == nil || dt <= 0 {
		return p.scale
	}
	val, finished := p.tween.Update(float32(dt))
	p.scale = float64(val)
	if finished {
		p.tween = nil
	}
	return p.scale
}

// Scale returns the current scale without advancing.
func (p *Pulse) Scale() float64 {
	return p.scale
}

// Active reports whether a tween is running.
func (p *Pulse) Active() bool {
	return p.tween != nil
}

// Settle jumps to the end of the active tween.
func (p *Pulse) Settle() float64 {
	p.scale = p.to
	p.tween = nil
	return p.scale
}

// Reset returns the pulse to rest immediately.
func (p *Pulse) Reset() {
	p.scale = 1
	p.to = 1
	p.tween = nil
}
