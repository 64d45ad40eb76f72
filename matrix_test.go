package aiks

import (
	"math"
	"testing"
)

const eps = 1e-9

func pointsEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate then scale: the scale applies to the geometry first.
	m := TranslateMatrix(10, 20).Multiply(ScaleMatrix(2, 3))
	got := m.TransformPoint(Pt(1, 1))
	if want := Pt(12, 23); !pointsEqual(got, want) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestMatrixTransforms(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", TranslateMatrix(5, -5), Pt(1, 1), Pt(6, -4)},
		{"scale", ScaleMatrix(3, 3), Pt(20, 20), Pt(60, 60)},
		{"rotate", RotateMatrix(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"skew", SkewMatrix(1, 0), Pt(0, 2), Pt(2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !pointsEqual(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	m := TranslateMatrix(7, 9).Multiply(RotateMatrix(0.3)).Multiply(ScaleMatrix(2, 4))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert() reported singular matrix")
	}
	p := Pt(13, -2)
	if got := inv.TransformPoint(m.TransformPoint(p)); !pointsEqual(got, p) {
		t.Errorf("inv(m(p)) = %v, want %v", got, p)
	}

	if _, ok := ScaleMatrix(0, 1).Invert(); ok {
		t.Error("Invert() of singular matrix should report false")
	}
}

func TestMatrixTransformRect(t *testing.T) {
	got := ScaleMatrix(2, 2).Multiply(TranslateMatrix(1, 1)).TransformRect(MakeXYWH(0, 0, 10, 5))
	want := MakeXYWH(2, 2, 20, 10)
	if got != want {
		t.Errorf("TransformRect = %+v, want %+v", got, want)
	}
}

func TestMatrixMaxBasisLength(t *testing.T) {
	if got := ScaleMatrix(3, 2).MaxBasisLength(); got != 3 {
		t.Errorf("MaxBasisLength = %v, want 3", got)
	}
	if got := RotateMatrix(1).MaxBasisLength(); math.Abs(got-1) > eps {
		t.Errorf("MaxBasisLength(rotation) = %v, want 1", got)
	}
}
