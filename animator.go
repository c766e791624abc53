package screendown

import (
	"sync"
	"sync/atomic"
	"time"
)

// Invalidator requests that the host redraw the view soon. Implementations
// must be safe to call from a timer goroutine. An error means the request
// could not be queued; the animator skips that cycle.
type Invalidator interface {
	Invalidate() error
}

// InvalidatorFunc adapts a function to the Invalidator interface.
type InvalidatorFunc func() error

// Invalidate calls f.
func (f InvalidatorFunc) Invalidate() error { return f() }

// Animator drives the periodic tick. While running, each Tick runs its
// callback and arms a one-shot timer that requests the next redraw after the
// configured delay, so the host's render loop paces the animation without
// ever blocking on a sleep.
//
// Start, Stop and Tick belong to the render thread. Only the timer callback
// runs elsewhere, and it touches nothing but atomics and the Invalidator.
type Animator struct {
	delay      time.Duration
	invalidate Invalidator
	log        *logger

	running atomic.Bool
	pending atomic.Bool

	mu    sync.Mutex
	timer *time.Timer
}

// NewAnimator returns a stopped animator.
func NewAnimator(delay time.Duration, invalidate Invalidator) *Animator {
	return newAnimator(delay, invalidate, &logger{})
}

func newAnimator(delay time.Duration, invalidate Invalidator, log *logger) *Animator {
	return &Animator{delay: delay, invalidate: invalidate, log: log}
}

// Running reports whether the tick is active.
func (a *Animator) Running() bool {
	return a.running.Load()
}

// Start activates the tick and requests an immediate redraw. Starting a
// running animator does nothing.
func (a *Animator) Start() {
	if !a.running.CompareAndSwap(false, true) {
		return
	}
	a.log.debugf("animator: start")
	a.request()
}

// Stop deactivates the tick and cancels any pending redraw request.
func (a *Animator) Stop() {
	if !a.running.CompareAndSwap(true, false) {
		return
	}
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
	a.pending.Store(false)
	a.log.debugf("animator: stop")
}

// Tick runs cb if the animator is running and then schedules the next redraw
// request. At most one request is pending at a time.
func (a *Animator) Tick(cb func()) {
	if !a.running.Load() {
		return
	}
	cb()
	if !a.pending.CompareAndSwap(false, true) {
		return
	}
	a.mu.Lock()
	a.timer = time.AfterFunc(a.delay, a.fire)
	a.mu.Unlock()
}

func (a *Animator) fire() {
	a.pending.Store(false)
	if !a.running.Load() {
		return
	}
	a.request()
}

func (a *Animator) request() {
	if err := a.invalidate.Invalidate(); err != nil {
		a.log.debugf("animator: redraw request dropped: %v", err)
	}
}
