package screendown

import "math"

// State is the per-node animation state machine. A State is idle while its
// direction is zero and advancing otherwise. The zero value is an idle state
// resting at scale 0.
type State struct {
	scale     float64
	dir       float64
	prevScale float64
}

// Scale returns the current progress of the node.
func (s *State) Scale() float64 { return s.scale }

// Direction returns -1, 0 or 1.
func (s *State) Direction() float64 { return s.dir }

// PrevScale returns the bound the state last settled at.
func (s *State) PrevScale() float64 { return s.prevScale }

// Idle reports whether the state is waiting for StartAdvancing.
func (s *State) Idle() bool { return s.dir == 0 }

// StartAdvancing begins moving away from the bound the state last settled
// at and calls started. It does nothing while the state is already
// advancing.
func (s *State) StartAdvancing(started func()) {
	if s.dir != 0 {
		return
	}
	s.dir = 1 - 2*s.prevScale
	if started != nil {
		started()
	}
}

// Advance moves the scale one gap in the current direction. When the scale
// has travelled a full unit from prevScale it is clamped onto the new bound,
// the state goes idle, and onSettled receives the new bound. An idle state
// does not move.
func (s *State) Advance(gap float64, onSettled func(float64)) {
	s.scale += gap * s.dir
	if math.Abs(s.scale-s.prevScale) > 1 {
		s.scale = s.prevScale + s.dir
		s.dir = 0
		s.prevScale = s.scale
		if onSettled != nil {
			onSettled(s.prevScale)
		}
	}
}
