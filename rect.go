package aiks

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle described by its origin and size.
// A rectangle with a non-positive width or height is empty.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// MakeXYWH returns the rectangle with origin (x, y) and size (w, h).
func MakeXYWH(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// MakeLTRB returns the rectangle spanning left/top to right/bottom.
func MakeLTRB(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// MakeSize returns the rectangle at the origin with the given size.
func MakeSize(w, h float64) Rect {
	return Rect{Width: w, Height: h}
}

// Left returns the minimum X coordinate.
func (r Rect) Left() float64 { return r.X }

// Top returns the minimum Y coordinate.
func (r Rect) Top() float64 { return r.Y }

// Right returns the maximum X coordinate.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the maximum Y coordinate.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// Contains reports whether p lies inside the rectangle. The right and
// bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Union returns the smallest rectangle containing both r and o.
// Empty rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return MakeLTRB(
		math.Min(r.Left(), o.Left()), math.Min(r.Top(), o.Top()),
		math.Max(r.Right(), o.Right()), math.Max(r.Bottom(), o.Bottom()),
	)
}

// Intersect returns the overlap of r and o, or the zero Rect when they
// do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := MakeLTRB(
		math.Max(r.Left(), o.Left()), math.Max(r.Top(), o.Top()),
		math.Min(r.Right(), o.Right()), math.Min(r.Bottom(), o.Bottom()),
	)
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Expand grows the rectangle by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// ImageRect returns the smallest integer rectangle covering r.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left())), int(math.Floor(r.Top())),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}

// Points returns the four corners in clockwise order starting top-left.
func (r Rect) Points() [4]Point {
	return [4]Point{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left(), Y: r.Bottom()},
	}
}

// boundsOf returns the bounding rectangle of the given points.
func boundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return MakeLTRB(minX, minY, maxX, maxY)
}
