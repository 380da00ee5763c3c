package pointerfx

import "time"

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticPress
	syntheticRelease
)

// syntheticPointerEvent represents a single injected pointer event in
// surface coordinates.
type syntheticPointerEvent struct {
	x, y float64
	kind syntheticKind
}

// InjectMove queues a pointer move to (x, y). Queued events are consumed one
// per frame by ProcessInjected.
func (s *Surface) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, kind: syntheticMove})
}

// InjectPress queues a pointer press at (x, y).
func (s *Surface) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, kind: syntheticPress})
}

// InjectRelease queues a pointer release at (x, y).
func (s *Surface) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, kind: syntheticRelease})
}

// InjectClick queues a press followed by a release at the same position.
// Consumes two frames.
func (s *Surface) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectGlide queues linearly interpolated moves from (fromX, fromY) to
// (toX, toY). The sequence consumes `frames` frames and always ends exactly on
// the destination. Minimum frames is 1.
func (s *Surface) InjectGlide(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Pending returns the number of queued synthetic events.
func (s *Surface) Pending() int {
	return len(s.injectQueue)
}

// ProcessInjected pops one queued event and dispatches it as if it came from
// the host at time t. Returns true if an event was consumed, in which case
// hosts should skip real input for this frame.
func (s *Surface) ProcessInjected(t time.Time) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticPress:
		s.Press(evt.x, evt.y, t)
	case syntheticRelease:
		s.Release(evt.x, evt.y, t)
	default:
		s.Move(evt.x, evt.y, t)
	}
	return true
}
