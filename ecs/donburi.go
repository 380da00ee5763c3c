package ecs

import (
	"github.com/phanxgames/pointerfx"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DirectiveEventType is the Donburi event type for directive writes.
var DirectiveEventType = events.NewEventType[pointerfx.DirectiveEvent]()

// DirectiveComponent holds the live directive on the sink's entity.
var DirectiveComponent = donburi.NewComponentType[pointerfx.Directive]()

// DonburiSink is a pointerfx.DirectiveSink backed by a Donburi world.
type DonburiSink struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiSink creates a sink publishing to DirectiveEventType on world.
// Events are queued; consume them with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) *DonburiSink {
	e := world.Create(DirectiveComponent)
	return &DonburiSink{world: world, entity: e}
}

// Entity returns the entity carrying DirectiveComponent.
func (s *DonburiSink) Entity() donburi.Entity {
	return s.entity
}

// Directive returns the directive last mirrored onto the entity.
func (s *DonburiSink) Directive() pointerfx.Directive {
	if !s.world.Valid(s.entity) {
		return pointerfx.DefaultDirective()
	}
	return *DirectiveComponent.Get(s.world.Entry(s.entity))
}

// EmitDirective implements pointerfx.DirectiveSink.
func (s *DonburiSink) EmitDirective(event pointerfx.DirectiveEvent) {
	if s.world.Valid(s.entity) {
		DirectiveComponent.SetValue(s.world.Entry(s.entity), event.Directive)
	}
	DirectiveEventType.Publish(s.world, event)
}
