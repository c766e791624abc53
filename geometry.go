package screendown

import "math"

// arcStepDegrees is the largest angle covered by one triangle of an arc fan.
const arcStepDegrees = 6.0

// Fan is a triangle fan: Points[0] is the hub and every consecutive pair of
// the remaining points forms a triangle with it. Rectangles and pie slices
// are both expressed as fans so any backend that can fill triangles can
// draw them.
type Fan []Vec2

// RectFan returns the four corners of the rectangle (x0, y0)-(x1, y1).
func RectFan(x0, y0, x1, y1 float64) Fan {
	return Fan{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

// ArcFan returns a pie slice hubbed at (cx, cy). A sweep of zero or less
// yields nil.
func ArcFan(cx, cy, r, startDeg, sweepDeg float64) Fan {
	if sweepDeg <= 0 || r <= 0 {
		return nil
	}
	sweepDeg = math.Min(sweepDeg, 360)
	steps := int(math.Ceil(sweepDeg / arcStepDegrees))
	f := make(Fan, 0, steps+2)
	f = append(f, Vec2{X: cx, Y: cy})
	for i := 0; i <= steps; i++ {
		a := (startDeg + sweepDeg*float64(i)/float64(steps)) * math.Pi / 180
		f = append(f, Vec2{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return f
}

// Triangles returns the number of triangles in the fan.
func (f Fan) Triangles() int {
	if len(f) < 3 {
		return 0
	}
	return len(f) - 2
}

// Translate returns a copy of f moved by (dx, dy).
func (f Fan) Translate(dx, dy float64) Fan {
	out := make(Fan, len(f))
	for i, p := range f {
		out[i] = Vec2{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the fan.
func (f Fan) Bounds() Rect {
	if len(f) == 0 {
		return Rect{}
	}
	minX, minY := f[0].X, f[0].Y
	maxX, maxY := minX, minY
	for _, p := range f[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Contains reports whether (x, y) lies inside any triangle of the fan. Points
// on an edge are considered inside.
func (f Fan) Contains(x, y float64) bool {
	for i := 1; i+1 < len(f); i++ {
		if triangleContains(f[0], f[i], f[i+1], x, y) {
			return true
		}
	}
	return false
}

// triangleContains uses a cross-product sign test: the point must lie on the
// same side of every edge.
func triangleContains(a, b, c Vec2, x, y float64) bool {
	pts := [3]Vec2{a, b, c}
	var positive, negative bool
	for i := 0; i < 3; i++ {
		p1 := pts[i]
		p2 := pts[(i+1)%3]
		cross := (p2.X-p1.X)*(y-p1.Y) - (p2.Y-p1.Y)*(x-p1.X)
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
