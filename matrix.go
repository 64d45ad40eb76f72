package aiks

import "math"

// Matrix is a 2D affine transform stored as the top two rows of a 3x3
// matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// A point maps as x' = A*x + B*y + C, y' = D*x + E*y + F.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// TranslateMatrix returns a translation by (x, y).
func TranslateMatrix(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// ScaleMatrix returns a scale by (sx, sy) about the origin.
func ScaleMatrix(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// RotateMatrix returns a rotation by angle radians about the origin.
func RotateMatrix(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// SkewMatrix returns a skew with the given x and y factors.
func SkewMatrix(sx, sy float64) Matrix {
	return Matrix{A: 1, B: sx, D: sy, E: 1}
}

// Multiply returns m * o: o is applied first, then m.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		A: m.A*o.A + m.B*o.D,
		B: m.A*o.B + m.B*o.E,
		C: m.A*o.C + m.B*o.F + m.C,
		D: m.D*o.A + m.E*o.D,
		E: m.D*o.B + m.E*o.E,
		F: m.D*o.C + m.E*o.F + m.F,
	}
}

// TransformPoint maps p through m.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector maps v through the linear part of m.
func (m Matrix) TransformVector(v Point) Point {
	return Point{
		X: m.A*v.X + m.B*v.Y,
		Y: m.D*v.X + m.E*v.Y,
	}
}

// TransformRect returns the bounds of r mapped through m.
func (m Matrix) TransformRect(r Rect) Rect {
	corners := r.Points()
	pts := make([]Point, 0, len(corners))
	for _, c := range corners {
		pts = append(pts, m.TransformPoint(c))
	}
	return boundsOf(pts)
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transform and true, or the identity and
// false when m is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Identity(), false
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}, true
}

// MaxBasisLength returns the larger of the lengths of the transformed
// unit vectors. Stroke widths are scaled by it.
func (m Matrix) MaxBasisLength() float64 {
	return math.Max(math.Hypot(m.A, m.D), math.Hypot(m.B, m.E))
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}
