package aiks

import (
	"math"
	"slices"
)

// Picture is the immutable result of a canvas recording: the operations
// in program order plus their aggregate device-space bounds. A Picture
// is safe for concurrent reads and may be submitted to any renderer.
type Picture struct {
	ops     []Operation
	bounds  Rect
	bounded bool
}

func newPicture(ops []Operation) *Picture {
	p := &Picture{ops: ops, bounded: true}
	for _, op := range ops {
		r, ok := drawBounds(op)
		if !ok {
			p.bounded = false
			continue
		}
		p.bounds = p.bounds.Union(r)
	}
	return p
}

// Len returns the number of recorded operations.
func (p *Picture) Len() int {
	return len(p.ops)
}

// Operations returns the recorded operations in program order.
func (p *Picture) Operations() []Operation {
	return slices.Clone(p.ops)
}

// Operation returns the i-th recorded operation.
func (p *Picture) Operation(i int) Operation {
	return p.ops[i]
}

// Count returns how many operations of the given kind were recorded.
func (p *Picture) Count(kind OpKind) int {
	n := 0
	for _, op := range p.ops {
		if op.Kind() == kind {
			n++
		}
	}
	return n
}

// Draws returns only the draw operations, in order.
func (p *Picture) Draws() []Operation {
	out := make([]Operation, 0, len(p.ops))
	for _, op := range p.ops {
		if op.Kind().IsDraw() {
			out = append(out, op)
		}
	}
	return out
}

// Bounds returns the union of the device-space areas the picture may
// paint. The boolean is false when some draw is limited by nothing but
// the surface, such as an unclipped DrawPaint; the rectangle then covers
// only the bounded draws.
func (p *Picture) Bounds() (Rect, bool) {
	return p.bounds, p.bounded
}

// drawBounds returns the device-space area op may touch. Non-draw
// operations report an empty, bounded area.
func drawBounds(op Operation) (Rect, bool) {
	var (
		geom  Rect
		paint Paint
		st    State
	)
	switch o := op.(type) {
	case DrawPaintOp:
		return o.ClipBounds()
	case DrawPathOp:
		geom, paint, st = o.Path.Bounds(), o.Paint, o.State
	case DrawRectOp:
		geom, paint, st = o.Rect, o.Paint, o.State
	default:
		return Rect{}, true
	}
	local := geom.Expand(paint.strokeOutset())
	dev := st.Transform.TransformRect(local)
	if paint.MaskBlur.Enabled() {
		dev = dev.Expand(3 * float64(paint.MaskBlur.Sigma) * st.Transform.MaxBasisLength())
	}
	// Hairlines still touch a pixel across.
	if dev.Width == 0 || dev.Height == 0 {
		dev = dev.Expand(0.5)
	}
	if clip, ok := st.ClipBounds(); ok {
		dev = dev.Intersect(clip)
	}
	if math.IsNaN(dev.Width) || math.IsNaN(dev.Height) {
		return Rect{}, true
	}
	return dev, true
}
