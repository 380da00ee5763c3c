// Package ecs provides ECS adapters for pointerfx's directive changes.
//
// The primary adapter is [NewDonburiSink], which bridges every write of the
// live directive into a [Donburi] world as a typed event and mirrors the
// current directive onto a singleton entity. Subscribe to
// [DirectiveEventType] in your ECS systems to react to hover transitions, or
// read [DirectiveComponent] from the entity returned by [DonburiSink.Entity].
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine := pointerfx.New(source, scheduler, cfg, pointerfx.WithSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
