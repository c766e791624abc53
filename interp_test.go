package screendown

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestInverse(t *testing.T) {
	if got := Inverse(4); got != 0.25 {
		t.Errorf("Inverse(4) = %v, want 0.25", got)
	}
}

func TestMaxScale(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		i, n  int
		want  float64
	}{
		{"before stage", 0.1, 1, 4, 0},
		{"at stage start", 0.25, 1, 4, 0},
		{"inside stage", 0.3, 1, 4, 0.05},
		{"first stage", 0.6, 0, 4, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxScale(tt.value, tt.i, tt.n); math.Abs(got-tt.want) > epsilon {
				t.Errorf("MaxScale(%v, %d, %d) = %v, want %v", tt.value, tt.i, tt.n, got, tt.want)
			}
		})
	}
}

func TestDivideScale(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		i     int
		want  float64
	}{
		{"zero", 0, 0, 0},
		{"before window", 0.2, 1, 0},
		{"window start", 0.25, 1, 0},
		{"window middle", 0.375, 1, 0.5},
		{"window end", 0.5, 1, 1},
		{"after window", 0.9, 1, 1},
		{"last stage end", 1, 3, 1},
		{"last stage middle", 0.875, 3, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DivideScale(tt.value, tt.i, 4); math.Abs(got-tt.want) > epsilon {
				t.Errorf("DivideScale(%v, %d, 4) = %v, want %v", tt.value, tt.i, got, tt.want)
			}
		})
	}
}

func TestDivideScaleMonotoneAndBounded(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7} {
		for i := 0; i < n; i++ {
			prev := DivideScale(0, i, n)
			for k := 1; k <= 1000; k++ {
				v := float64(k) / 1000
				got := DivideScale(v, i, n)
				if got < prev {
					t.Fatalf("DivideScale(%v, %d, %d) = %v decreased from %v", v, i, n, got, prev)
				}
				if got < 0 || got > 1 {
					t.Fatalf("DivideScale(%v, %d, %d) = %v out of [0, 1]", v, i, n, got)
				}
				prev = got
			}
		}
	}
}

func TestSinify(t *testing.T) {
	tests := []struct {
		value, want float64
	}{
		{0, 0},
		{0.5, 1},
		{1, 0},
	}
	for _, tt := range tests {
		if got := Sinify(tt.value); math.Abs(got-tt.want) > epsilon {
			t.Errorf("Sinify(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestSinifyStagesAreNotEvenlySpaced(t *testing.T) {
	// Stage 0 of 4 completes once Sinify reaches 0.25, which happens well
	// before a quarter of the way through the half wave.
	scale := math.Asin(0.25) / math.Pi
	if scale >= 0.125 {
		t.Fatalf("stage 0 ends at scale %v, expected an early boundary", scale)
	}
	if got := DivideScale(Sinify(scale), 0, 4); math.Abs(got-1) > 1e-6 {
		t.Errorf("stage 0 progress at boundary = %v, want 1", got)
	}
}

func TestLerp(t *testing.T) {
	if got := lerp(10, 20, 0); math.Abs(got-10) > 1e-4 {
		t.Errorf("lerp at 0 = %v, want 10", got)
	}
	if got := lerp(10, 20, 1); math.Abs(got-20) > 1e-4 {
		t.Errorf("lerp at 1 = %v, want 20", got)
	}
	if got := lerp(100, 50, 0.5); math.Abs(got-75) > 1e-3 {
		t.Errorf("lerp at 0.5 = %v, want 75", got)
	}
}

func TestLerpPrecision(t *testing.T) {
	tests := []struct {
		from, to, t, want float64
	}{
		{0, 4000, 0.25, 1000},
		{3840, 1920, 0.5, 2880},
		{791.1, 400, 1, 400},
	}
	for _, tt := range tests {
		if got := lerp(tt.from, tt.to, tt.t); math.Abs(got-tt.want) > 0.01 {
			t.Errorf("lerp(%v, %v, %v) = %v, want %v within a hundredth of a pixel", tt.from, tt.to, tt.t, got, tt.want)
		}
	}
}
