package aiks

import "math"

// Style selects whether a draw fills or strokes its geometry.
type Style uint8

const (
	// StyleFill fills the interior of the geometry.
	StyleFill Style = iota
	// StyleStroke strokes the outline of the geometry.
	StyleStroke
)

func (s Style) String() string {
	switch s {
	case StyleFill:
		return "Fill"
	case StyleStroke:
		return "Stroke"
	}
	return "Unknown"
}

// Join is the shape drawn where two stroked segments meet.
type Join uint8

const (
	// JoinMiter extends the outer edges to a point, falling back to a
	// bevel past the miter limit.
	JoinMiter Join = iota
	// JoinRound joins segments with a circular arc.
	JoinRound
	// JoinBevel cuts the corner with a straight line.
	JoinBevel
)

func (j Join) String() string {
	switch j {
	case JoinMiter:
		return "Miter"
	case JoinRound:
		return "Round"
	case JoinBevel:
		return "Bevel"
	}
	return "Unknown"
}

// Cap is the shape drawn at the ends of open stroked subpaths.
type Cap uint8

const (
	// CapButt ends the stroke flush with the endpoint.
	CapButt Cap = iota
	// CapRound ends the stroke with a half disc.
	CapRound
	// CapSquare ends the stroke with a half square.
	CapSquare
)

func (c Cap) String() string {
	switch c {
	case CapButt:
		return "Butt"
	case CapRound:
		return "Round"
	case CapSquare:
		return "Square"
	}
	return "Unknown"
}

// BlurStyle selects how a blurred coverage mask combines with the
// original one.
type BlurStyle uint8

const (
	// BlurNormal blurs inside and outside the shape.
	BlurNormal BlurStyle = iota
	// BlurSolid keeps the shape opaque and blurs only outside.
	BlurSolid
	// BlurOuter draws only the blur outside the shape.
	BlurOuter
	// BlurInner draws only the blur inside the shape.
	BlurInner
)

func (s BlurStyle) String() string {
	switch s {
	case BlurNormal:
		return "Normal"
	case BlurSolid:
		return "Solid"
	case BlurOuter:
		return "Outer"
	case BlurInner:
		return "Inner"
	}
	return "Unknown"
}

// kernelRadiusPerSigma relates a Gaussian sigma to the radius of the
// kernel that approximates it.
const kernelRadiusPerSigma = 1.73205080757

// Sigma is the standard deviation of a Gaussian blur in canvas units.
type Sigma float64

// Radius returns the blur radius matching the sigma.
func (s Sigma) Radius() float64 {
	return math.Max(0, (float64(s)-0.5)/kernelRadiusPerSigma)
}

// SigmaFromRadius returns the sigma matching a blur radius.
func SigmaFromRadius(radius float64) Sigma {
	if radius <= 0 {
		return 0
	}
	return Sigma(kernelRadiusPerSigma*radius + 0.5)
}

// MaskBlur describes a blur applied to the coverage of a draw before it
// is clipped. The zero value disables blurring.
type MaskBlur struct {
	Style BlurStyle
	Sigma Sigma
}

// Enabled reports whether the blur has any effect.
func (m MaskBlur) Enabled() bool {
	return m.Sigma > 0
}

// Paint bundles the attributes of a draw. It is a plain value: the
// canvas copies it into every recorded operation, so changing a Paint
// variable after a draw does not affect that draw.
//
// Stroke attributes are ignored by fills.
type Paint struct {
	Color       RGBA
	Style       Style
	StrokeWidth float64
	StrokeCap   Cap
	StrokeJoin  Join
	StrokeMiter float64
	MaskBlur    MaskBlur
}

// DefaultMiterLimit is the miter limit of NewPaint.
const DefaultMiterLimit = 4.0

// NewPaint returns an opaque black fill paint with a 1 unit butt/miter
// stroke configuration.
func NewPaint() Paint {
	return Paint{
		Color:       Black,
		Style:       StyleFill,
		StrokeWidth: 1,
		StrokeCap:   CapButt,
		StrokeJoin:  JoinMiter,
		StrokeMiter: DefaultMiterLimit,
	}
}

// normalized returns the paint with invalid numeric fields clamped:
// negative or NaN widths, sigmas and miter limits become zero.
func (p Paint) normalized() Paint {
	if !(p.StrokeWidth >= 0) {
		p.StrokeWidth = 0
	}
	if !(p.StrokeMiter >= 0) {
		p.StrokeMiter = 0
	}
	if !(p.MaskBlur.Sigma >= 0) {
		p.MaskBlur.Sigma = 0
	}
	return p
}

// strokeOutset returns how far the painted area may extend beyond the
// geometry bounds in local units.
func (p Paint) strokeOutset() float64 {
	if p.Style != StyleStroke {
		return 0
	}
	half := p.StrokeWidth / 2
	out := half
	if p.StrokeCap == CapSquare {
		out = half * math.Sqrt2
	}
	if p.StrokeJoin == JoinMiter {
		out = math.Max(out, half*p.StrokeMiter)
	}
	return out
}
