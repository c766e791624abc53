package screendown

// View composes the choreography with its animator. It is the
// platform-neutral half of the widget: a host forwards pointer-down events to
// HandleTap, calls Render whenever a redraw was requested, and implements
// Invalidator so the animator can ask for the next frame.
//
// A View is not safe for concurrent use; hosts call it from one thread.
type View struct {
	cfg      *Config
	shape    *ScreenDownToBallUp
	animator *Animator
	paint    Paint
	sink     EventSink
	log      logger

	injectedTaps int
}

// NewView builds a view around cfg. cfg must pass Validate.
func NewView(cfg *Config, invalidate Invalidator) *View {
	v := &View{
		cfg:   cfg,
		shape: NewScreenDownToBallUp(cfg),
	}
	v.animator = newAnimator(cfg.Delay, invalidate, &v.log)
	v.shape.OnSettle = v.settled
	return v
}

// Shape returns the composite being animated.
func (v *View) Shape() *ScreenDownToBallUp {
	return v.shape
}

// Animator returns the view's scheduler.
func (v *View) Animator() *Animator {
	return v.animator
}

// SetEventSink sets the optional event sink. Pass nil to detach it.
func (v *View) SetEventSink(sink EventSink) {
	v.sink = sink
}

// SetDebugMode enables or disables debug logging to stderr.
func (v *View) SetDebugMode(enabled bool) {
	v.log.debug.Store(enabled)
}

// Render draws one frame into s. While the animator runs, it also advances
// the current node by one tick.
func (v *View) Render(s Surface) {
	v.processInjectedTaps()

	s.Clear(v.cfg.BackColor)
	v.shape.Draw(s, &v.paint)
	v.animator.Tick(func() {
		v.shape.Update(func(float64) {
			v.animator.Start()
		})
	})
}

// HandleTap starts the current node if it is idle. Taps while a stage is
// still running are consumed without effect, except that a stage left
// mid-way by Close resumes from where it stopped.
func (v *View) HandleTap() {
	v.shape.StartUpdating(func() {
		v.animator.Start()
	})
	if !v.shape.Current().State().Idle() {
		v.animator.Start()
	}
	v.emit(Event{Type: EventTap, Index: v.shape.curr.Index, Direction: v.shape.dir})
}

// Close stops the animator and cancels its pending redraw request. The view
// can be started again by a later tap.
func (v *View) Close() {
	v.animator.Stop()
}

func (v *View) settled(e Event) {
	v.log.debugf("settle: node %d, direction %d, scale %.0f", e.Index, e.Direction, e.Scale)
	v.emit(e)
}

func (v *View) emit(e Event) {
	if v.sink != nil {
		v.sink.EmitEvent(e)
	}
}
