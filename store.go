package pointerfx

// Snapshot is a consistent view of the store: the live directive together
// with the latest pointer sample.
type Snapshot struct {
	Directive Directive
	Sample    PointerSample
}

// DirectiveEvent is handed to a DirectiveSink whenever the live directive is
// written.
type DirectiveEvent struct {
	Directive Directive
	Previous  Directive
	Position  Vec2
}

// DirectiveSink is the interface for optional bridges (for example an ECS
// world) that want to observe directive changes.
type DirectiveSink interface {
	EmitDirective(event DirectiveEvent)
}

// Store is the single source of truth for the engine: one live Directive and
// the latest PointerSample. Every mutation synchronously notifies subscribers;
// there is no batching.
//
// Store is not safe for concurrent use. Like the hosts that drive it, it
// expects every call to come from the UI thread.
type Store struct {
	directive Directive
	sample    PointerSample
	owner     *Zone // zone that wrote the live directive, nil otherwise
	zonesOff  bool

	listeners handlerList[Snapshot]
	nextID    uint32
	sink      DirectiveSink

	// onDirective is the engine's observation hook (metrics, logging).
	onDirective func(prev, next Directive)
}

// NewStore creates a store holding the default directive and a zero sample.
func NewStore() *Store {
	return &Store{directive: DefaultDirective()}
}

// Get returns the current directive and sample.
func (s *Store) Get() Snapshot {
	return Snapshot{Directive: s.directive, Sample: s.sample}
}

// Directive returns the live directive.
func (s *Store) Directive() Directive {
	return s.directive
}

// Sample returns the latest pointer sample.
func (s *Store) Sample() PointerSample {
	return s.sample
}

// SetDirective replaces the live directive entirely. Fields are never merged
// with the previous directive.
func (s *Store) SetDirective(d Directive) {
	s.writeDirective(d, nil)
}

// ResetDirective restores DefaultDirective().
func (s *Store) ResetDirective() {
	s.writeDirective(DefaultDirective(), nil)
}

// SetSample publishes a new pointer sample.
func (s *Store) SetSample(p PointerSample) {
	s.sample = p
	s.notify()
}

// SetSink sets the optional directive bridge. Pass nil to remove it.
func (s *Store) SetSink(sink DirectiveSink) {
	s.sink = sink
}

// Subscribe registers fn to be called after every mutation.
func (s *Store) Subscribe(fn func(Snapshot)) Subscription {
	s.nextID++
	id := s.nextID
	s.listeners.add(id, fn)
	return Subscription{id: id, store: s}
}

// Unsubscribe removes a subscription. Equivalent to sub.Remove().
func (s *Store) Unsubscribe(sub Subscription) {
	sub.Remove()
}

// SubscriberCount returns the number of live subscriptions.
func (s *Store) SubscriberCount() int {
	return s.listeners.len()
}

// SetZoneWrites switches zone-triggered writes on or off. While off, zone
// enter and leave leave the directive untouched; SetDirective and
// ResetDirective still apply. Zone writes are on for a new store.
func (s *Store) SetZoneWrites(on bool) {
	s.zonesOff = !on
}

// ZoneWrites reports whether zone-triggered writes are applied.
func (s *Store) ZoneWrites() bool {
	return !s.zonesOff
}

func (s *Store) zoneWrite(d Directive, z *Zone) {
	if s.zonesOff {
		return
	}
	s.writeDirective(d, z)
}

func (s *Store) zoneReset() {
	if s.zonesOff {
		return
	}
	s.writeDirective(DefaultDirective(), nil)
}

func (s *Store) writeDirective(d Directive, owner *Zone) {
	prev := s.directive
	s.directive = d
	s.owner = owner
	if s.onDirective != nil {
		s.onDirective(prev, d)
	}
	if s.sink != nil {
		s.sink.EmitDirective(DirectiveEvent{Directive: d, Previous: prev, Position: s.sample.Position})
	}
	s.notify()
}

func (s *Store) notify() {
	s.listeners.emit(Snapshot{Directive: s.directive, Sample: s.sample})
}

// Subscription is the handle returned by Store.Subscribe.
type Subscription struct {
	id    uint32
	store *Store
	list  *handlerList[Frame]
}

// Remove stops the subscription. Calling Remove more than once, or on the
// zero Subscription, is a no-op.
func (sub Subscription) Remove() {
	switch {
	case sub.store != nil:
		sub.store.listeners.remove(sub.id)
	case sub.list != nil:
		sub.list.remove(sub.id)
	}
}
