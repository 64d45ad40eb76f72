package aiks

import "math"

// PathBuilder constructs a Path from drawing commands. Every method
// returns the builder so calls can be chained:
//
//	path := aiks.NewPathBuilder().
//		MoveTo(aiks.Pt(20, 20)).
//		QuadraticCurveTo(aiks.Pt(60, 20), aiks.Pt(60, 60)).
//		Close().
//		TakePath()
//
// Commands never fail. A drawing command issued with no open subpath
// starts one implicitly: at the origin for a fresh builder, or at the
// start point of the subpath that was just closed.
//
// A builder is single-use. After TakePath further commands are ignored
// and TakePath returns an empty path.
type PathBuilder struct {
	elements []PathElement
	fill     FillType

	start   Point // start of the current subpath
	current Point
	open    bool // a MoveTo has been emitted for the current subpath
	taken   bool
}

// NewPathBuilder returns an empty builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{elements: make([]PathElement, 0, 16)}
}

// CurrentPoint returns the pen position.
func (b *PathBuilder) CurrentPoint() Point {
	return b.current
}

// SetFillType sets the winding rule of the resulting path.
func (b *PathBuilder) SetFillType(f FillType) *PathBuilder {
	if !b.usable() {
		return b
	}
	b.fill = f
	return b
}

// MoveTo begins a new subpath at p.
func (b *PathBuilder) MoveTo(p Point) *PathBuilder {
	if !b.usable() {
		return b
	}
	b.elements = append(b.elements, MoveTo{Point: p})
	b.start, b.current = p, p
	b.open = true
	return b
}

// LineTo draws a line from the current point to p.
func (b *PathBuilder) LineTo(p Point) *PathBuilder {
	if !b.usable() {
		return b
	}
	b.ensureSubpath()
	b.elements = append(b.elements, LineTo{Point: p})
	b.current = p
	return b
}

// HorizontalLineTo draws a horizontal line to the given x.
func (b *PathBuilder) HorizontalLineTo(x float64) *PathBuilder {
	return b.LineTo(Point{X: x, Y: b.current.Y})
}

// VerticalLineTo draws a vertical line to the given y.
func (b *PathBuilder) VerticalLineTo(y float64) *PathBuilder {
	return b.LineTo(Point{X: b.current.X, Y: y})
}

// QuadraticCurveTo draws a quadratic Bézier curve to p with control
// point ctrl.
func (b *PathBuilder) QuadraticCurveTo(ctrl, p Point) *PathBuilder {
	if !b.usable() {
		return b
	}
	b.ensureSubpath()
	b.elements = append(b.elements, QuadTo{Control: ctrl, Point: p})
	b.current = p
	return b
}

// CubicCurveTo draws a cubic Bézier curve to p with control points c1
// and c2.
func (b *PathBuilder) CubicCurveTo(c1, c2, p Point) *PathBuilder {
	if !b.usable() {
		return b
	}
	b.ensureSubpath()
	b.elements = append(b.elements, CubicTo{Control1: c1, Control2: c2, Point: p})
	b.current = p
	return b
}

// Close connects the current point to the start of the subpath. Closing
// with no open subpath does nothing.
func (b *PathBuilder) Close() *PathBuilder {
	if !b.usable() || !b.open {
		return b
	}
	b.elements = append(b.elements, Close{})
	b.current = b.start
	b.open = false
	return b
}

// AddLine adds an independent open subpath from p1 to p2.
func (b *PathBuilder) AddLine(p1, p2 Point) *PathBuilder {
	return b.MoveTo(p1).LineTo(p2)
}

// AddQuadraticCurve adds an independent open quadratic subpath.
func (b *PathBuilder) AddQuadraticCurve(p1, ctrl, p2 Point) *PathBuilder {
	return b.MoveTo(p1).QuadraticCurveTo(ctrl, p2)
}

// AddCubicCurve adds an independent open cubic subpath.
func (b *PathBuilder) AddCubicCurve(p1, c1, c2, p2 Point) *PathBuilder {
	return b.MoveTo(p1).CubicCurveTo(c1, c2, p2)
}

// AddRect adds a closed clockwise rectangle subpath.
func (b *PathBuilder) AddRect(r Rect) *PathBuilder {
	pts := r.Points()
	return b.MoveTo(pts[0]).LineTo(pts[1]).LineTo(pts[2]).LineTo(pts[3]).Close()
}

// AddCircle adds a closed circle subpath.
func (b *PathBuilder) AddCircle(center Point, radius float64) *PathBuilder {
	return b.AddOval(Rect{X: center.X - radius, Y: center.Y - radius, Width: 2 * radius, Height: 2 * radius})
}

// AddOval adds a closed ellipse inscribed in r.
func (b *PathBuilder) AddOval(r Rect) *PathBuilder {
	c := r.Center()
	rx, ry := r.Width/2, r.Height/2
	b.MoveTo(Point{X: c.X + rx, Y: c.Y})
	for _, seg := range arcSegments(c, rx, ry, 0, 2*math.Pi) {
		b.CubicCurveTo(seg.Control1, seg.Control2, seg.Point)
	}
	return b.Close()
}

// AddRoundedRect adds a closed rectangle with circular corners. The
// radius is clamped to half the shorter side.
func (b *PathBuilder) AddRoundedRect(r Rect, radius float64) *PathBuilder {
	radius = math.Max(0, math.Min(radius, math.Min(r.Width, r.Height)/2))
	if radius == 0 {
		return b.AddRect(r)
	}
	corners := [4]struct {
		c     Point
		angle float64
	}{
		{Point{X: r.Right() - radius, Y: r.Top() + radius}, -math.Pi / 2},
		{Point{X: r.Right() - radius, Y: r.Bottom() - radius}, 0},
		{Point{X: r.Left() + radius, Y: r.Bottom() - radius}, math.Pi / 2},
		{Point{X: r.Left() + radius, Y: r.Top() + radius}, math.Pi},
	}
	b.MoveTo(Point{X: r.Left() + radius, Y: r.Top()})
	for _, k := range corners {
		s, c := math.Sincos(k.angle)
		b.LineTo(Point{X: k.c.X + radius*c, Y: k.c.Y + radius*s})
		for _, seg := range arcSegments(k.c, radius, radius, k.angle, math.Pi/2) {
			b.CubicCurveTo(seg.Control1, seg.Control2, seg.Point)
		}
	}
	return b.Close()
}

// AddPath appends every subpath of p. The fill type of p is ignored.
func (b *PathBuilder) AddPath(p Path) *PathBuilder {
	p.Walk(func(elem PathElement) {
		switch e := elem.(type) {
		case MoveTo:
			b.MoveTo(e.Point)
		case LineTo:
			b.LineTo(e.Point)
		case QuadTo:
			b.QuadraticCurveTo(e.Control, e.Point)
		case CubicTo:
			b.CubicCurveTo(e.Control1, e.Control2, e.Point)
		case Close:
			b.Close()
		}
	})
	return b
}

// TakePath returns the built path and spends the builder.
func (b *PathBuilder) TakePath() Path {
	if b.taken {
		Logger().Debug("aiks: TakePath on spent PathBuilder")
		return Path{}
	}
	p := Path{elements: b.elements, fill: b.fill}
	b.elements = nil
	b.taken = true
	return p
}

func (b *PathBuilder) usable() bool {
	if b.taken {
		Logger().Debug("aiks: command on spent PathBuilder ignored")
		return false
	}
	return true
}

// ensureSubpath emits the implicit MoveTo for a drawing command issued
// without an open subpath.
func (b *PathBuilder) ensureSubpath() {
	if b.open {
		return
	}
	b.elements = append(b.elements, MoveTo{Point: b.current})
	b.start = b.current
	b.open = true
}
