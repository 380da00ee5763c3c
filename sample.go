package pointerfx

import "time"

// velocityEpsilon is the smallest time delta, in seconds, used as a divisor
// when estimating velocity.
const velocityEpsilon = 1e-6

// PointerSample is one measurement of pointer position with its derived
// velocity in host units per second.
type PointerSample struct {
	Position  Vec2
	Velocity  Vec2
	Timestamp time.Time
}

// Sampler converts raw move events into PointerSamples. The zero value is
// ready to use. Sampler keeps only the previous sample; it never allocates.
type Sampler struct {
	last   PointerSample
	primed bool
}

// Sample records a raw move event and returns the resulting sample.
//
// Velocity is (position - previous) / max(dt, ε) and is recomputed only when
// dt > 0. A zero or negative delta keeps the previous velocity, so the result
// never contains NaN or Inf. The first sample has zero velocity.
func (s *Sampler) Sample(x, y float64, t time.Time) PointerSample {
	pos := Vec2{x, y}
	if !s.primed {
		s.primed = true
		s.last = PointerSample{Position: pos, Timestamp: t}
		return s.last
	}

	vel := s.last.Velocity
	dt := t.Sub(s.last.Timestamp).Seconds()
	if dt > 0 {
		vel = pos.Sub(s.last.Position).Scale(1 / max(dt, velocityEpsilon))
	}

	s.last = PointerSample{Position: pos, Velocity: vel, Timestamp: t}
	return s.last
}

// Last returns the most recent sample, or the zero sample if none was taken.
func (s *Sampler) Last() PointerSample {
	return s.last
}

// Reset forgets the previous sample so the next one starts from rest.
func (s *Sampler) Reset() {
	*s = Sampler{}
}
