package aiks

import (
	"math"
	"slices"
)

// PathElement is one command of a Path. The concrete types are MoveTo,
// LineTo, QuadTo, CubicTo and Close.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

// LineTo draws a straight segment to Point.
type LineTo struct {
	Point Point
}

// QuadTo draws a quadratic Bézier segment.
type QuadTo struct {
	Control Point
	Point   Point
}

// CubicTo draws a cubic Bézier segment.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

// Close connects the current point back to the start of the subpath.
type Close struct{}

func (MoveTo) isPathElement()  {}
func (LineTo) isPathElement()  {}
func (QuadTo) isPathElement()  {}
func (CubicTo) isPathElement() {}
func (Close) isPathElement()   {}

// FillType selects how the interior of a path is determined.
type FillType uint8

const (
	// FillNonZero uses the non-zero winding rule.
	FillNonZero FillType = iota
	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd
)

func (f FillType) String() string {
	switch f {
	case FillNonZero:
		return "NonZero"
	case FillEvenOdd:
		return "EvenOdd"
	}
	return "Unknown"
}

// Path is an immutable geometric description made of one or more
// subpaths. The zero value is an empty path. Paths are built with a
// PathBuilder and are safe to share once taken.
type Path struct {
	elements []PathElement
	fill     FillType
}

// Elements returns a copy of the path commands in order.
func (p Path) Elements() []PathElement {
	return slices.Clone(p.elements)
}

// Len returns the number of commands in the path.
func (p Path) Len() int {
	return len(p.elements)
}

// IsEmpty reports whether the path has no commands.
func (p Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// FillType returns the winding rule used to fill the path.
func (p Path) FillType() FillType {
	return p.fill
}

// Walk calls fn for each command in order. It avoids the copy made by
// Elements.
func (p Path) Walk(fn func(PathElement)) {
	for _, e := range p.elements {
		fn(e)
	}
}

// Transform returns the path mapped through m.
func (p Path) Transform(m Matrix) Path {
	if m.IsIdentity() {
		return p
	}
	out := make([]PathElement, len(p.elements))
	for i, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out[i] = MoveTo{Point: m.TransformPoint(e.Point)}
		case LineTo:
			out[i] = LineTo{Point: m.TransformPoint(e.Point)}
		case QuadTo:
			out[i] = QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			}
		case CubicTo:
			out[i] = CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			}
		case Close:
			out[i] = e
		}
	}
	return Path{elements: out, fill: p.fill}
}

// Bounds returns the bounding box of all points of the path, control
// points included. The result encloses the curve but may not be tight.
func (p Path) Bounds() Rect {
	pts := make([]Point, 0, len(p.elements)*2)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Control, e.Point)
		case CubicTo:
			pts = append(pts, e.Control1, e.Control2, e.Point)
		}
	}
	return boundsOf(pts)
}

// arcSegments approximates an elliptical arc centred at c with radii
// (rx, ry) from angle a0 sweeping by sweep radians with cubic segments.
func arcSegments(c Point, rx, ry, a0, sweep float64) []CubicTo {
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n == 0 {
		return nil
	}
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	out := make([]CubicTo, 0, n)
	a := a0
	for range n {
		s0, c0 := math.Sincos(a)
		s1, c1 := math.Sincos(a + step)
		out = append(out, CubicTo{
			Control1: Point{X: c.X + rx*(c0-k*s0), Y: c.Y + ry*(s0+k*c0)},
			Control2: Point{X: c.X + rx*(c1+k*s1), Y: c.Y + ry*(s1-k*c1)},
			Point:    Point{X: c.X + rx*c1, Y: c.Y + ry*s1},
		})
		a += step
	}
	return out
}
