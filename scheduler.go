package pointerfx

import "time"

// TickScheduler is a FrameScheduler for hosts that own their update loop.
// The host calls Tick once per frame; every callback requested before that
// call runs, and callbacks requested while Tick runs wait for the next one.
type TickScheduler struct {
	pending []scheduledFrame
	spare   []scheduledFrame
	nextID  uint64
}

type scheduledFrame struct {
	id uint64
	fn func(time.Time)
}

// RequestFrame queues fn for the next Tick.
func (s *TickScheduler) RequestFrame(fn func(now time.Time)) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.pending = append(s.pending, scheduledFrame{id: id, fn: fn})
	return func() { s.cancel(id) }
}

func (s *TickScheduler) cancel(id uint64) {
	for i, p := range s.pending {
		if p.id == id {
			copy(s.pending[i:], s.pending[i+1:])
			s.pending[len(s.pending)-1] = scheduledFrame{}
			s.pending = s.pending[:len(s.pending)-1]
			return
		}
	}
}

// Pending returns the number of queued callbacks.
func (s *TickScheduler) Pending() int {
	return len(s.pending)
}

// Tick runs the queued callbacks with now and returns how many ran.
func (s *TickScheduler) Tick(now time.Time) int {
	batch := s.pending
	s.pending = s.spare[:0]
	for i := range batch {
		batch[i].fn(now)
		batch[i] = scheduledFrame{}
	}
	s.spare = batch[:0]
	return len(batch)
}
