package screendown

// Paint is the stateful color object handed to a Surface. DrawShape sets its
// color before every fill.
type Paint struct {
	Color Color
}

// Surface is the 2D drawing target a view renders into. Coordinates are in
// pixels with the origin at the top-left. Translate offsets every later fill
// until the matching Restore.
type Surface interface {
	// Size returns the drawable width and height.
	Size() (w, h float64)
	// Clear fills the whole surface with c, ignoring any translation.
	Clear(c Color)
	// FillRect fills the rectangle spanning (x0, y0) to (x1, y1).
	FillRect(x0, y0, x1, y1 float64, p *Paint)
	// FillArc fills a pie slice centered at (cx, cy) starting at startDeg
	// (0 is +X, angles grow clockwise on screen) and sweeping sweepDeg.
	FillArc(cx, cy, r, startDeg, sweepDeg float64, p *Paint)
	Save()
	Translate(dx, dy float64)
	Restore()
}

// OffsetStack implements Save, Translate and Restore for surfaces whose only
// transform is a translation. Embed it and add Offset to incoming points.
type OffsetStack struct {
	cur   Vec2
	saved []Vec2
}

// Save pushes the current offset.
func (o *OffsetStack) Save() {
	o.saved = append(o.saved, o.cur)
}

// Translate moves the current offset by (dx, dy).
func (o *OffsetStack) Translate(dx, dy float64) {
	o.cur.X += dx
	o.cur.Y += dy
}

// Restore pops the offset pushed by the matching Save. An unbalanced Restore
// is ignored.
func (o *OffsetStack) Restore() {
	n := len(o.saved)
	if n == 0 {
		return
	}
	o.cur = o.saved[n-1]
	o.saved = o.saved[:n-1]
}

// Offset returns the current translation.
func (o *OffsetStack) Offset() Vec2 {
	return o.cur
}

// Reset drops any saved offsets and returns to the origin.
func (o *OffsetStack) Reset() {
	o.cur = Vec2{}
	o.saved = o.saved[:0]
}

// OpKind identifies a recorded drawing operation.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpRect
	OpArc
)

// DrawOp is one operation captured by a Recorder, in surface coordinates
// (translation already applied).
type DrawOp struct {
	Kind  OpKind
	Color Color
	// Rect bounds for OpRect.
	X0, Y0, X1, Y1 float64
	// Arc parameters for OpArc.
	CX, CY, Radius, StartDeg, SweepDeg float64
}

// Recorder is a Surface that keeps a list of the operations drawn into it.
// It is useful for headless rendering checks and debugging.
type Recorder struct {
	OffsetStack
	W, H float64
	Ops  []DrawOp
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

// Size implements Surface.
func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

// Clear implements Surface.
func (r *Recorder) Clear(c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: OpClear, Color: c})
}

// FillRect implements Surface.
func (r *Recorder) FillRect(x0, y0, x1, y1 float64, p *Paint) {
	o := r.Offset()
	r.Ops = append(r.Ops, DrawOp{
		Kind: OpRect, Color: p.Color,
		X0: x0 + o.X, Y0: y0 + o.Y, X1: x1 + o.X, Y1: y1 + o.Y,
	})
}

// FillArc implements Surface.
func (r *Recorder) FillArc(cx, cy, radius, startDeg, sweepDeg float64, p *Paint) {
	o := r.Offset()
	r.Ops = append(r.Ops, DrawOp{
		Kind: OpArc, Color: p.Color,
		CX: cx + o.X, CY: cy + o.Y, Radius: radius,
		StartDeg: startDeg, SweepDeg: sweepDeg,
	})
}

// Reset clears the recorded operations and the translation state.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.OffsetStack.Reset()
}

// Find returns the recorded operations of the given kind.
func (r *Recorder) Find(kind OpKind) []DrawOp {
	var out []DrawOp
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
