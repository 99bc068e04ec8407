// Package ecs provides ECS adapters for codewing.
package ecs

import (
	"github.com/phanxgames/codewing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// BreakEventType is the Donburi event type for codewing break events.
// Subscribe to this in your ECS systems to react to shattered shapes,
// released field particles and spawned drips.
var BreakEventType = events.NewEventType[codewing.BreakEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Break events are published to BreakEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) codewing.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event codewing.BreakEvent) {
	BreakEventType.Publish(s.world, event)
}
