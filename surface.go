package pointerfx

import "time"

// --- Built-in HitShape types ---

// HitShape is a hit-testable area in a region's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside the polygon using a
// cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Events and handles ---

// PointerEvent carries host pointer event data.
type PointerEvent struct {
	Type     EventType
	Position Vec2
	Local    Vec2    // Position relative to Region; equals Position when Region is nil
	Region   *Region // region for enter/leave events, nil for surface-level events
	Time     time.Time
}

// CallbackHandle allows removing a registered host callback.
type CallbackHandle struct {
	id   uint32
	list *handlerList[PointerEvent]
}

// Remove unregisters the callback so it no longer fires. Removing twice, or
// removing the zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.list == nil {
		return
	}
	h.list.remove(h.id)
}

// Active reports whether the callback is still registered.
func (h CallbackHandle) Active() bool {
	if h.list == nil {
		return false
	}
	for _, e := range h.list.entries {
		if e.id == h.id && e.fn != nil {
			return true
		}
	}
	return false
}

// PointerSource is the narrow host interface the engine samples from.
type PointerSource interface {
	OnMove(fn func(PointerEvent)) CallbackHandle
	OnPress(fn func(PointerEvent)) CallbackHandle
	OnRelease(fn func(PointerEvent)) CallbackHandle
}

// Element is anything a zone can bind to: it reports the pointer entering and
// leaving its bounds.
type Element interface {
	OnPointerEnter(fn func(PointerEvent)) CallbackHandle
	OnPointerLeave(fn func(PointerEvent)) CallbackHandle
}

// Unmounter is implemented by elements that report being removed. Unmounting
// sends no leave event, so zones listen for this instead.
type Unmounter interface {
	OnUnmount(fn func(PointerEvent)) CallbackHandle
}

// --- Region ---

// Region is a hit-testable element on a Surface. Each region tracks
// containment independently, so nested regions behave like nested page
// elements: moving from an outer region into an inner one fires enter on the
// inner region only, and moving back out fires leave on the inner region only.
type Region struct {
	Name string
	// X and Y offset HitShape into surface coordinates.
	X, Y     float64
	HitShape HitShape
	// Visible=false regions are skipped by hit testing.
	Visible bool

	surface  *Surface
	enter    handlerList[PointerEvent]
	leave    handlerList[PointerEvent]
	unmount  handlerList[PointerEvent]
	inside   bool
	disposed bool
}

// NewRegion creates a visible region with the given hit shape positioned at
// (x, y).
func NewRegion(name string, x, y float64, shape HitShape) *Region {
	return &Region{Name: name, X: x, Y: y, HitShape: shape, Visible: true}
}

// OnPointerEnter registers a callback fired when the pointer enters the
// region. A nil or disposed region returns the zero handle.
func (r *Region) OnPointerEnter(fn func(PointerEvent)) CallbackHandle {
	if r == nil || r.disposed {
		return CallbackHandle{}
	}
	return r.register(&r.enter, fn)
}

// OnPointerLeave registers a callback fired when the pointer leaves the
// region. A nil or disposed region returns the zero handle.
func (r *Region) OnPointerLeave(fn func(PointerEvent)) CallbackHandle {
	if r == nil || r.disposed {
		return CallbackHandle{}
	}
	return r.register(&r.leave, fn)
}

// OnUnmount registers a callback fired when the region is removed from its
// surface or disposed. The event's Region is r; IsDisposed tells the two
// apart. A nil or disposed region returns the zero handle.
func (r *Region) OnUnmount(fn func(PointerEvent)) CallbackHandle {
	if r == nil || r.disposed {
		return CallbackHandle{}
	}
	return r.register(&r.unmount, fn)
}

func (r *Region) register(list *handlerList[PointerEvent], fn func(PointerEvent)) CallbackHandle {
	globalHandlerID++
	id := globalHandlerID
	list.add(id, fn)
	return CallbackHandle{id: id, list: list}
}

// Hovered reports whether the pointer is currently inside the region.
func (r *Region) Hovered() bool {
	return r != nil && r.inside
}

// ListenerCount returns the number of enter and leave callbacks attached.
func (r *Region) ListenerCount() int {
	if r == nil {
		return 0
	}
	return r.enter.len() + r.leave.len()
}

// Contains reports whether the surface point (x, y) hits the region.
func (r *Region) Contains(x, y float64) bool {
	if r == nil || !r.Visible || r.HitShape == nil {
		return false
	}
	return r.HitShape.Contains(x-r.X, y-r.Y)
}

// Dispose removes the region from its surface and drops every callback.
// No leave event is fired, matching an element that is unmounted; unmount
// callbacks run once before the callbacks are dropped.
func (r *Region) Dispose() {
	if r == nil || r.disposed {
		return
	}
	r.disposed = true
	if r.surface != nil {
		r.surface.RemoveRegion(r)
	} else {
		r.emitUnmount(Vec2{}, time.Time{})
	}
	r.inside = false
	r.enter.clear()
	r.leave.clear()
	r.unmount.clear()
	r.HitShape = nil
}

func (r *Region) emitUnmount(p Vec2, t time.Time) {
	r.unmount.emit(PointerEvent{Type: EventUnmount, Position: p, Local: Vec2{p.X - r.X, p.Y - r.Y}, Region: r, Time: t})
}

// IsDisposed reports whether the region has been disposed.
func (r *Region) IsDisposed() bool {
	return r != nil && r.disposed
}

// globalHandlerID is a plain counter (no atomic; surfaces are single-threaded).
var globalHandlerID uint32

// --- Surface ---

// pointerState is the surface's view of the single pointer.
type pointerState struct {
	pos   Vec2
	known bool
	down  bool
}

// Surface is a host-agnostic input surface. Hosts feed it raw pointer
// events with Move, Press and Release; it dispatches them to PointerSource
// callbacks and resolves enter/leave for its regions. Surface implements
// PointerSource and is the synthetic source used in tests.
type Surface struct {
	regions []*Region

	move    handlerList[PointerEvent]
	press   handlerList[PointerEvent]
	release handlerList[PointerEvent]

	pointer     pointerState
	injectQueue []syntheticPointerEvent
	changed     []*Region
}

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	return &Surface{}
}

// OnMove registers a callback for raw pointer moves.
func (s *Surface) OnMove(fn func(PointerEvent)) CallbackHandle {
	return s.register(&s.move, fn)
}

// OnPress registers a callback for pointer presses.
func (s *Surface) OnPress(fn func(PointerEvent)) CallbackHandle {
	return s.register(&s.press, fn)
}

// OnRelease registers a callback for pointer releases.
func (s *Surface) OnRelease(fn func(PointerEvent)) CallbackHandle {
	return s.register(&s.release, fn)
}

func (s *Surface) register(list *handlerList[PointerEvent], fn func(PointerEvent)) CallbackHandle {
	globalHandlerID++
	id := globalHandlerID
	list.add(id, fn)
	return CallbackHandle{id: id, list: list}
}

// AddRegion mounts r on the surface. Regions added later are treated as
// painted on top. Adding a disposed region or one already on another surface
// is a no-op.
func (s *Surface) AddRegion(r *Region) {
	if r == nil || r.disposed || r.surface != nil {
		return
	}
	r.surface = s
	s.regions = append(s.regions, r)
}

// RemoveRegion unmounts r. Its enter and leave callbacks stay registered but
// can no longer fire; no leave event is sent. Unmount callbacks fire.
func (s *Surface) RemoveRegion(r *Region) {
	for i, c := range s.regions {
		if c == r {
			copy(s.regions[i:], s.regions[i+1:])
			s.regions[len(s.regions)-1] = nil
			s.regions = s.regions[:len(s.regions)-1]
			r.surface = nil
			r.inside = false
			r.emitUnmount(s.pointer.pos, time.Time{})
			return
		}
	}
}

// Regions returns the mounted regions in paint order. The returned slice
// MUST NOT be mutated.
func (s *Surface) Regions() []*Region {
	return s.regions
}

// ListenerCount returns the number of callbacks attached to the surface and
// to every mounted region.
func (s *Surface) ListenerCount() int {
	n := s.move.len() + s.press.len() + s.release.len()
	for _, r := range s.regions {
		n += r.ListenerCount()
	}
	return n
}

// Pointer returns the last known pointer position and whether one is known.
func (s *Surface) Pointer() (Vec2, bool) {
	return s.pointer.pos, s.pointer.known
}

// Pressed reports whether the pointer button is currently held.
func (s *Surface) Pressed() bool {
	return s.pointer.down
}

// Move dispatches a raw pointer move to (x, y), then fires leave and enter
// for every region whose containment changed.
func (s *Surface) Move(x, y float64, t time.Time) {
	s.pointer.pos = Vec2{x, y}
	s.pointer.known = true
	s.move.emit(PointerEvent{Type: EventPointerMove, Position: s.pointer.pos, Local: s.pointer.pos, Time: t})
	s.updateHover(t)
}

// Press dispatches a pointer press at (x, y). A press while already down is
// ignored.
func (s *Surface) Press(x, y float64, t time.Time) {
	if s.pointer.pos != (Vec2{x, y}) || !s.pointer.known {
		s.Move(x, y, t)
	}
	if s.pointer.down {
		return
	}
	s.pointer.down = true
	s.press.emit(PointerEvent{Type: EventPointerDown, Position: s.pointer.pos, Local: s.pointer.pos, Time: t})
}

// Release dispatches a pointer release at (x, y). A release without a prior
// press is ignored.
func (s *Surface) Release(x, y float64, t time.Time) {
	if s.pointer.pos != (Vec2{x, y}) || !s.pointer.known {
		s.Move(x, y, t)
	}
	if !s.pointer.down {
		return
	}
	s.pointer.down = false
	s.release.emit(PointerEvent{Type: EventPointerUp, Position: s.pointer.pos, Local: s.pointer.pos, Time: t})
}

// Refresh re-evaluates hover at the current pointer position without a move,
// for example after regions were added or hidden under a stationary pointer.
func (s *Surface) Refresh(t time.Time) {
	if s.pointer.known {
		s.updateHover(t)
	}
}

// updateHover fires leave events innermost-first (reverse paint order), then
// enter events outermost-first (paint order).
func (s *Surface) updateHover(t time.Time) {
	p := s.pointer.pos
	s.changed = s.changed[:0]
	for _, r := range s.regions {
		if r.Contains(p.X, p.Y) != r.inside {
			s.changed = append(s.changed, r)
		}
	}
	if len(s.changed) == 0 {
		return
	}

	for i := len(s.changed) - 1; i >= 0; i-- {
		r := s.changed[i]
		if !r.inside || r.surface != s {
			continue
		}
		r.inside = false
		r.leave.emit(PointerEvent{
			Type: EventPointerLeave, Position: p, Local: Vec2{p.X - r.X, p.Y - r.Y},
			Region: r, Time: t,
		})
	}
	for _, r := range s.changed {
		if r.inside || r.surface != s || r.disposed {
			continue
		}
		r.inside = true
		r.enter.emit(PointerEvent{
			Type: EventPointerEnter, Position: p, Local: Vec2{p.X - r.X, p.Y - r.Y},
			Region: r, Time: t,
		})
	}
	clear(s.changed)
	s.changed = s.changed[:0]
}
