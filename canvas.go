package aiks

import "log/slog"

// Canvas records drawing, clip and transform operations against an
// unbounded virtual surface and produces an immutable Picture.
//
// The canvas owns a stack of states. Save pushes a copy of the current
// transform and clip set, Restore pops it. Every draw and clip captures
// the state in effect when it is recorded, so later stack changes never
// alter recorded operations.
//
//	canvas := aiks.NewCanvas()
//	paint := aiks.NewPaint()
//	paint.Color = aiks.White
//	canvas.DrawPaint(paint)
//	canvas.Save()
//	canvas.ClipPath(circle)
//	canvas.DrawRect(aiks.MakeXYWH(0, 0, 100, 100), paint)
//	_ = canvas.Restore()
//	picture, err := canvas.EndRecordingAsPicture()
//
// A Canvas is single-use and not safe for concurrent use.
type Canvas struct {
	stack []State
	ops   []Operation

	finalized bool
	err       error
}

// NewCanvas returns an empty canvas at save count 1.
func NewCanvas(opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	base := State{Transform: o.transform}
	if o.hasCull {
		base.Clips = []Clip{{
			Path: NewPathBuilder().AddRect(o.cull).TakePath(),
			Op:   ClipIntersect,
		}}
	}
	c := &Canvas{
		stack: make([]State, 1, 8),
		ops:   make([]Operation, 0, 64),
	}
	c.stack[0] = base
	return c
}

// current returns the top of the state stack.
func (c *Canvas) current() *State {
	return &c.stack[len(c.stack)-1]
}

// SaveCount returns the depth of the state stack. A fresh canvas has a
// save count of 1.
func (c *Canvas) SaveCount() int {
	return len(c.stack)
}

// CurrentTransform returns the transform applied to subsequent
// operations.
func (c *Canvas) CurrentTransform() Matrix {
	return c.current().Transform
}

// CurrentClips returns the clip set applied to subsequent draws. The
// returned slice must not be modified.
func (c *Canvas) CurrentClips() []Clip {
	return c.current().Clips
}

// Err returns the first misuse recorded by a mutator that cannot report
// errors itself, such as drawing on a finalized canvas.
func (c *Canvas) Err() error {
	return c.err
}

// Save pushes a copy of the current transform and clip set.
func (c *Canvas) Save() {
	if c.rejected("Save") {
		return
	}
	c.stack = append(c.stack, *c.current())
	c.record(SaveOp{Depth: len(c.stack)})
}

// Restore pops the state pushed by the matching Save. At the base depth
// it returns ErrRestoreUnderflow and leaves the state untouched.
func (c *Canvas) Restore() error {
	if c.rejected("Restore") {
		return ErrCanvasFinalized
	}
	if len(c.stack) == 1 {
		Logger().Warn("aiks: unbalanced Restore", slog.Int("ops", len(c.ops)))
		return ErrRestoreUnderflow
	}
	c.stack = c.stack[:len(c.stack)-1]
	c.record(RestoreOp{Depth: len(c.stack)})
	return nil
}

// RestoreToCount pops states until the save count equals count. A count
// below 1 is an underflow; states are still popped down to the base.
func (c *Canvas) RestoreToCount(count int) error {
	if c.rejected("RestoreToCount") {
		return ErrCanvasFinalized
	}
	for len(c.stack) > max(count, 1) {
		if err := c.Restore(); err != nil {
			return err
		}
	}
	if count < 1 {
		Logger().Warn("aiks: RestoreToCount below base", slog.Int("count", count))
		return ErrRestoreUnderflow
	}
	return nil
}

// Translate moves the origin by offset.
func (c *Canvas) Translate(offset Point) {
	c.Transform(TranslateMatrix(offset.X, offset.Y))
}

// Scale scales subsequent operations by factor.
func (c *Canvas) Scale(factor Point) {
	c.Transform(ScaleMatrix(factor.X, factor.Y))
}

// Rotate rotates subsequent operations by angle radians.
func (c *Canvas) Rotate(angle float64) {
	c.Transform(RotateMatrix(angle))
}

// Skew skews subsequent operations.
func (c *Canvas) Skew(sx, sy float64) {
	c.Transform(SkewMatrix(sx, sy))
}

// Transform right-multiplies m into the current transform: m applies to
// geometry before the transforms already in effect.
func (c *Canvas) Transform(m Matrix) {
	if c.rejected("Transform") {
		return
	}
	st := c.current()
	st.Transform = st.Transform.Multiply(m)
	c.record(TransformOp{Delta: m, Result: st.Transform})
}

// ResetTransform replaces the current transform with the identity.
func (c *Canvas) ResetTransform() {
	if c.rejected("ResetTransform") {
		return
	}
	st := c.current()
	st.Transform = Identity()
	c.record(TransformOp{Delta: Identity(), Result: st.Transform})
}

// DrawPaint fills the whole surface with paint, restricted by the
// current clip set.
func (c *Canvas) DrawPaint(paint Paint) {
	if c.rejected("DrawPaint") {
		return
	}
	c.record(DrawPaintOp{Paint: paint.normalized(), State: c.snapshot()})
}

// DrawPath fills or strokes path, mapped by the current transform and
// restricted by the current clip set.
func (c *Canvas) DrawPath(path Path, paint Paint) {
	if c.rejected("DrawPath") {
		return
	}
	c.record(DrawPathOp{Path: path, Paint: paint.normalized(), State: c.snapshot()})
}

// DrawRect fills or strokes rect. It is equivalent to DrawPath with the
// rectangle built by PathBuilder.AddRect.
func (c *Canvas) DrawRect(rect Rect, paint Paint) {
	if c.rejected("DrawRect") {
		return
	}
	c.record(DrawRectOp{Rect: rect, Paint: paint.normalized(), State: c.snapshot()})
}

// DrawCircle fills or strokes a circle.
func (c *Canvas) DrawCircle(center Point, radius float64, paint Paint) {
	c.DrawPath(NewPathBuilder().AddCircle(center, radius).TakePath(), paint)
}

// DrawRoundedRect fills or strokes a rectangle with circular corners.
func (c *Canvas) DrawRoundedRect(rect Rect, radius float64, paint Paint) {
	c.DrawPath(NewPathBuilder().AddRoundedRect(rect, radius).TakePath(), paint)
}

// EndRecordingAsPicture finalizes the recording. The canvas cannot be
// used afterwards; a second call returns ErrCanvasFinalized. Read
// accessors keep reporting the base state.
func (c *Canvas) EndRecordingAsPicture() (*Picture, error) {
	if c.finalized {
		Logger().Warn("aiks: EndRecordingAsPicture called twice")
		return nil, ErrCanvasFinalized
	}
	c.finalized = true
	if len(c.stack) > 1 {
		Logger().Debug("aiks: recording ended with open saves", slog.Int("save_count", len(c.stack)))
	}
	p := newPicture(c.ops)
	c.ops = nil
	// Keep the base state so read accessors still answer.
	c.stack = c.stack[:1:1]
	Logger().Debug("aiks: recording finished", slog.Int("ops", p.Len()))
	return p, nil
}

// snapshot returns the current state with a clip slice whose capacity
// equals its length, so later clips always copy instead of writing into
// an array a recorded operation can see.
func (c *Canvas) snapshot() State {
	st := *c.current()
	st.Clips = st.Clips[:len(st.Clips):len(st.Clips)]
	return st
}

func (c *Canvas) record(op Operation) {
	c.ops = append(c.ops, op)
}

// rejected reports whether the canvas is finalized, latching the error
// for Err.
func (c *Canvas) rejected(method string) bool {
	if !c.finalized {
		return false
	}
	if c.err == nil {
		c.err = ErrCanvasFinalized
	}
	Logger().Warn("aiks: call on finalized canvas ignored", slog.String("method", method))
	return true
}
