package pointerfx

import (
	"math"
	"time"
)

// FrameScheduler is the host's frame-scheduling primitive. RequestFrame
// arranges for fn to run once, on the UI thread, before the next frame is
// presented. The returned cancel func withdraws the request if it has not
// run yet; calling it after fn ran is a no-op.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time)) (cancel func())
}

// Frame is the driver's output for one display frame.
type Frame struct {
	Seq  uint64
	Time time.Time

	// Pointer is the target position and Directive the live directive, both
	// read once at the top of the frame.
	Pointer   Vec2
	Directive Directive

	// Targets are where each layer is heading (the label sits above the
	// pointer) and Positions where each layer is rendered.
	Targets    [LayerCount]Vec2
	Positions  [LayerCount]Vec2
	PressScale [LayerCount]float64
	Visuals    [LayerCount]Visual

	// Visible is false while no pointer is known, the host is unavailable
	// or the engine is disabled.
	Visible bool
}

// Distance returns how far layer id still is from its target.
func (f Frame) Distance(id LayerID) float64 {
	if id >= LayerCount {
		return 0
	}
	return math.Sqrt(f.Positions[id].Sub(f.Targets[id]).Len2())
}

// Driver advances the visual layers toward the pointer. It owns one
// follower per layer and the press pulses of the dot and ring; it reads the
// store only through the Snapshot handed to Step.
type Driver struct {
	lags        [LayerCount]time.Duration
	labelOffset float64
	layers      [LayerCount]LayerFunc

	followers [LayerCount]follower
	pulses    [LayerCount]*Pulse // nil for layers without press feedback

	pressDuration   time.Duration
	releaseDuration time.Duration

	frame Frame
}

// NewDriver creates a driver with the lags, offsets and pulse settings of
// cfg and the default layer functions.
func NewDriver(cfg Config) *Driver {
	d := &Driver{
		labelOffset:     cfg.LabelOffset,
		layers:          DefaultLayers(),
		pressDuration:   cfg.PressDuration,
		releaseDuration: cfg.ReleaseDuration,
	}
	for id := LayerID(0); id < LayerCount; id++ {
		d.lags[id] = cfg.Lag(id)
	}
	d.pulses[LayerDot] = NewPulse(cfg.DotPressScale)
	d.pulses[LayerRing] = NewPulse(cfg.RingPressScale)
	d.frame = d.hidden(cfg.NeutralPosition, time.Time{}, DefaultDirective())
	return d
}

// SetLayer replaces the layer function of id. A nil fn renders the layer
// invisible.
func (d *Driver) SetLayer(id LayerID, fn LayerFunc) {
	if id < LayerCount {
		d.layers[id] = fn
	}
}

// Lag returns the smoothing time-constant of layer id.
func (d *Driver) Lag(id LayerID) time.Duration {
	if id >= LayerCount {
		return 0
	}
	return d.lags[id]
}

// Step advances every layer by dt seconds toward the snapshot's pointer
// position. Layers never read each other's state, so the order they are
// updated in does not matter.
func (d *Driver) Step(snap Snapshot, dt float64, now time.Time) Frame {
	f := d.begin(snap, now)
	for id := LayerID(0); id < LayerCount; id++ {
		scale := 1.0
		if p := d.pulses[id]; p != nil {
			scale = p.Update(dt)
		}
		target := d.target(id, f.Pointer)
		pos := d.followers[id].step(target, dt, d.lags[id])
		d.place(&f, id, target, pos, scale)
	}
	d.frame = f
	return f
}

// Snap moves every layer onto its target immediately and settles running
// pulses. Hosts without a frame scheduler render through Snap.
func (d *Driver) Snap(snap Snapshot, now time.Time) Frame {
	f := d.begin(snap, now)
	for id := LayerID(0); id < LayerCount; id++ {
		scale := 1.0
		if p := d.pulses[id]; p != nil {
			scale = p.Settle()
		}
		target := d.target(id, f.Pointer)
		pos := d.followers[id].snap(target)
		d.place(&f, id, target, pos, scale)
	}
	d.frame = f
	return f
}

// Neutral produces a hidden frame with every layer parked at pos. The
// followers are unprimed, so the next Step or Snap starts on the pointer.
func (d *Driver) Neutral(pos Vec2, now time.Time) Frame {
	for id := range d.followers {
		d.followers[id] = follower{}
	}
	d.frame = d.hidden(pos, now, DefaultDirective())
	return d.frame
}

// Press starts the compress half of the press pulse.
func (d *Driver) Press() {
	for _, p := range d.pulses {
		if p != nil {
			p.Press(d.pressDuration)
		}
	}
}

// Release starts the restore half of the press pulse from wherever the
// compress got to.
func (d *Driver) Release() {
	for _, p := range d.pulses {
		if p != nil {
			p.Release(d.releaseDuration)
		}
	}
}

// Frame returns the most recent frame.
func (d *Driver) Frame() Frame {
	return d.frame
}

// Reset returns the driver to its initial state.
func (d *Driver) Reset() {
	for id := range d.followers {
		d.followers[id] = follower{}
	}
	for _, p := range d.pulses {
		if p != nil {
			p.Reset()
		}
	}
	d.frame = Frame{}
}

func (d *Driver) begin(snap Snapshot, now time.Time) Frame {
	return Frame{
		Seq:       d.frame.Seq + 1,
		Time:      now,
		Pointer:   snap.Sample.Position,
		Directive: snap.Directive,
		Visible:   true,
	}
}

func (d *Driver) target(id LayerID, p Vec2) Vec2 {
	if id == LayerLabel {
		p.Y -= d.labelOffset
	}
	return p
}

func (d *Driver) place(f *Frame, id LayerID, target, pos Vec2, scale float64) {
	f.Targets[id] = target
	f.Positions[id] = pos
	f.PressScale[id] = scale
	if fn := d.layers[id]; fn != nil {
		f.Visuals[id] = fn(pos, f.Directive, scale)
	} else {
		f.Visuals[id] = Visual{Center: pos}
	}
	f.Visuals[id].Layer = id
}

func (d *Driver) hidden(pos Vec2, now time.Time, dir Directive) Frame {
	f := Frame{Seq: d.frame.Seq + 1, Time: now, Pointer: pos, Directive: dir}
	for id := LayerID(0); id < LayerCount; id++ {
		f.Targets[id] = pos
		f.Positions[id] = pos
		f.PressScale[id] = 1
		f.Visuals[id] = Visual{Layer: id, Center: pos, Scale: 1}
	}
	return f
}
