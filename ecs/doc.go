// Package ecs provides ECS adapters for screendown's event stream.
//
// The primary adapter is [NewDonburiSink], which publishes view events (taps
// and stage settles) into a [Donburi] world as typed events. Subscribe to
// [ViewEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	view.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
