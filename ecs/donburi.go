package ecs

import (
	"github.com/phanxgames/screendown"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ViewEventType is the Donburi event type for screendown view events. Each
// event is either a tap (EventTap) or a stage settle (EventSettle); Index is
// the palette index of the node now on screen, Direction the traversal
// direction after any bounce, and Scale the bound a settle came to rest on.
var ViewEventType = events.NewEventType[screendown.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Attach it
// with View.SetEventSink; settles then arrive in traversal order, so a system
// subscribed to ViewEventType sees the palette walk forward and back. Events
// are queued until events.ProcessEvents or events.ProcessAllEvents runs.
func NewDonburiSink(world donburi.World) screendown.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event screendown.Event) {
	ViewEventType.Publish(s.world, event)
}
