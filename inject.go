package screendown

// InjectTap queues a synthetic tap. Queued taps are delivered at the start of
// the next Render, in order, exactly as if the host had called HandleTap.
// Scripted runs use this so their input lines up with frames.
func (v *View) InjectTap() {
	v.injectedTaps++
}

// PendingTaps returns the number of injected taps not yet delivered.
func (v *View) PendingTaps() int {
	return v.injectedTaps
}

// processInjectedTaps delivers every queued tap.
func (v *View) processInjectedTaps() {
	for v.injectedTaps > 0 {
		v.injectedTaps--
		v.log.debugf("inject: tap")
		v.HandleTap()
	}
}
