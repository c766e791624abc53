package screendown

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to image/color consumers.
type Color struct {
	R, G, B, A float64
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = channel16(c.A)
	r = channel16(c.R * c.A)
	g = channel16(c.G * c.A)
	b = channel16(c.B * c.A)
	return r, g, b, a
}

func channel16(v float64) uint32 {
	return uint32(math.Round(math.Max(0, math.Min(1, v)) * 0xffff))
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventType identifies a kind of widget event.
type EventType uint8

const (
	EventTap    EventType = iota // fires when a tap reaches the view
	EventSettle                  // fires when a stage settles and traversal moves
)

func (t EventType) String() string {
	switch t {
	case EventTap:
		return "tap"
	case EventSettle:
		return "settle"
	default:
		return "unknown"
	}
}

// Event carries widget activity to an optional EventSink.
type Event struct {
	Type EventType
	// Index is the color index of the current node after the event.
	Index int
	// Direction is the composite's traversal direction after the event.
	Direction int
	// Scale is the settled scale (EventSettle only).
	Scale float64
}

// EventSink is the interface for forwarding widget events elsewhere, such as
// an ECS world.
type EventSink interface {
	EmitEvent(event Event)
}
