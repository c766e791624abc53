// Package screendown is a tap-driven animated widget for [Ebitengine].
//
// The widget walks a chain of colored nodes. Each tap plays one stage: a
// full-screen rectangle shrinks from the top, its bottom edge rises, and a
// ball sweeps open and climbs to the middle of the screen. When the stage
// settles, traversal moves to the next node. At either end of the chain
// traversal bounces, so the colors play forward and then back.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	screendown.Run(screendown.DefaultConfig(), screendown.RunConfig{
//		Title: "Screen down", Width: 480, Height: 800,
//	})
//
// For full control, implement [ebiten.Game] yourself and embed a [Game], or
// drive a [View] directly:
//
//	view := screendown.NewView(cfg, invalidator)
//	view.HandleTap()           // on pointer down
//	view.Render(surface)       // whenever a redraw was requested
//
// # Surfaces
//
// A [View] draws through the [Surface] interface. [ImageSurface] renders to
// an *ebiten.Image, [Recorder] captures operations for tests, and the
// screendown/term package rasterizes into a terminal with tcell.
//
// # Animation
//
// Each node owns a [State] that advances its scale by [Config.Gap] once per
// frame while running. The [Animator] requests the next frame through an
// [Invalidator] after [Config.Delay], at most one request at a time, and
// stops only when [Animator.Stop] or [View.Close] is called.
//
// # Events
//
// Attach an [EventSink] with [View.SetEventSink] to observe taps and
// settlements. The screendown/ecs module forwards them into a donburi world.
//
// [Ebitengine]: https://ebitengine.org
package screendown
