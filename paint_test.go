package aiks

import (
	"math"
	"testing"
)

func TestNewPaintDefaults(t *testing.T) {
	p := NewPaint()
	if p.Color != Black || p.Style != StyleFill {
		t.Errorf("NewPaint() = %+v, want black fill", p)
	}
	if p.StrokeWidth != 1 || p.StrokeCap != CapButt || p.StrokeJoin != JoinMiter || p.StrokeMiter != DefaultMiterLimit {
		t.Errorf("NewPaint() stroke = %+v", p)
	}
	if p.MaskBlur.Enabled() {
		t.Errorf("NewPaint() has a mask blur")
	}
}

func TestSigmaRadius(t *testing.T) {
	tests := []struct {
		sigma Sigma
		want  float64
	}{
		{0, 0},
		{0.5, 0},
		{10, 9.5 / kernelRadiusPerSigma},
	}
	for _, tt := range tests {
		if got := tt.sigma.Radius(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Sigma(%v).Radius() = %v, want %v", tt.sigma, got, tt.want)
		}
	}
	if got := SigmaFromRadius(Sigma(10).Radius()); math.Abs(float64(got)-10) > 1e-9 {
		t.Errorf("SigmaFromRadius round trip = %v, want 10", got)
	}
	if got := SigmaFromRadius(-1); got != 0 {
		t.Errorf("SigmaFromRadius(-1) = %v, want 0", got)
	}
}

func TestPaintNormalized(t *testing.T) {
	p := Paint{StrokeWidth: math.NaN(), StrokeMiter: -1, MaskBlur: MaskBlur{Sigma: Sigma(math.NaN())}}
	got := p.normalized()
	if got.StrokeWidth != 0 || got.StrokeMiter != 0 || got.MaskBlur.Sigma != 0 {
		t.Errorf("normalized() = %+v, want zeroed fields", got)
	}
}

func TestPaintStrokeOutset(t *testing.T) {
	tests := []struct {
		name string
		p    Paint
		want float64
	}{
		{"fill", Paint{Style: StyleFill, StrokeWidth: 10}, 0},
		{"bevel butt", Paint{Style: StyleStroke, StrokeWidth: 10, StrokeJoin: JoinBevel, StrokeCap: CapButt}, 5},
		{"round square", Paint{Style: StyleStroke, StrokeWidth: 10, StrokeJoin: JoinRound, StrokeCap: CapSquare}, 5 * math.Sqrt2},
		{"miter", Paint{Style: StyleStroke, StrokeWidth: 10, StrokeJoin: JoinMiter, StrokeMiter: 4}, 20},
		{"miter below one", Paint{Style: StyleStroke, StrokeWidth: 10, StrokeJoin: JoinMiter, StrokeMiter: 0.5}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.strokeOutset(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("strokeOutset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{StyleStroke.String(), "Stroke"},
		{JoinBevel.String(), "Bevel"},
		{CapSquare.String(), "Square"},
		{BlurOuter.String(), "Outer"},
		{Join(42).String(), "Unknown"},
		{OpDrawRect.String(), "DrawRect"},
		{OpKind(200).String(), "Unknown"},
		{ClipDifference.String(), "Difference"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
