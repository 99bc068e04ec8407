// Package ecs provides ECS adapters for codewing's break events.
//
// The primary adapter is [NewDonburiSink], which bridges engine break events
// (shattered shapes, released field particles, spawned drips) into a
// [Donburi] world as typed events. Subscribe to [BreakEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
