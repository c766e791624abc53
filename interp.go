package screendown

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Inverse returns 1/n.
func Inverse(n float64) float64 {
	return 1 / n
}

// MaxScale returns how far value has moved past the start of stage i of n,
// or 0 before the stage begins.
func MaxScale(value float64, i, n int) float64 {
	return math.Max(0, value-float64(i)/float64(n))
}

// DivideScale maps a global progress value in [0, 1] into the local progress
// of stage i out of n equal windows. The result is 0 before the window
// [i/n, (i+1)/n], rises linearly to 1 across it, and stays at 1 after.
func DivideScale(value float64, i, n int) float64 {
	return math.Min(Inverse(float64(n)), MaxScale(value, i, n)) * float64(n)
}

// Sinify remaps linear progress in [0, 1] onto a half sine wave, so the
// result rises from 0 to 1 at 0.5 and falls back to 0 at 1.
func Sinify(value float64) float64 {
	return math.Sin(value * math.Pi)
}

// lerp moves linearly from one anchor to another as t goes from 0 to 1.
// gween works in float32, so the result has float32 precision.
func lerp(from, to, t float64) float64 {
	return float64(ease.Linear(float32(t), float32(from), float32(to-from), 1))
}
