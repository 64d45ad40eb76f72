// Package grid registers the "aiks" example: a stroked S-curve drawn with
// every combination of stroke join and cap, laid out in a 3x3 grid.
package grid

import (
	"errors"
	"fmt"

	"github.com/gogpu/aiks"
	"github.com/gogpu/aiks/example"
)

// Name is the registry name of the example.
const Name = "aiks"

func init() {
	example.Register(Name, func() example.Example { return &Example{} })
}

// Joins and Caps are the grid rows and columns, in drawing order.
var (
	Joins = [3]aiks.Join{aiks.JoinBevel, aiks.JoinRound, aiks.JoinMiter}
	Caps  = [3]aiks.Cap{aiks.CapButt, aiks.CapSquare, aiks.CapRound}
)

// Device-space end points of the diameter of the optional clip circle.
var (
	clipHandleA = aiks.Pt(60, 300)
	clipHandleB = aiks.Pt(600, 300)
)

// Example is the join/cap grid example.
type Example struct{}

// Info implements example.Example.
func (*Example) Info() example.Info {
	return example.Info{
		Name:        "Aiks Example",
		Description: "One of the Aiks unit tests, built and run out-of-tree.",
	}
}

// Setup implements example.Example.
func (*Example) Setup(ctx *example.Context) error {
	if ctx.Renderer == nil {
		return errors.New("grid: context has no renderer")
	}
	return nil
}

// Render implements example.Example.
func (*Example) Render(ctx *example.Context, frame *example.Frame) error {
	pic, err := Record(frame.Params)
	if err != nil {
		return err
	}
	if err := ctx.Renderer.Render(frame.Target, pic); err != nil {
		return fmt.Errorf("grid: %w", err)
	}
	return nil
}

// SCurve returns the two open quadratic strokes every grid cell draws.
func SCurve() aiks.Path {
	return aiks.NewPathBuilder().
		MoveTo(aiks.Pt(20, 20)).
		QuadraticCurveTo(aiks.Pt(60, 20), aiks.Pt(60, 60)).
		Close().
		MoveTo(aiks.Pt(60, 20)).
		QuadraticCurveTo(aiks.Pt(60, 60), aiks.Pt(20, 60)).
		TakePath()
}

// Record records one frame of the grid: a background fill followed by
// one stroke per (join, cap) pair in row-major order.
func Record(p example.Params) (*aiks.Picture, error) {
	c := aiks.NewCanvas()

	paint := aiks.NewPaint()
	paint.Color = p.Background
	c.DrawPaint(paint)

	paint.Color = p.Color
	paint.Style = aiks.StyleStroke
	paint.StrokeWidth = p.StrokeWidth

	path := SCurve()
	c.Scale(aiks.Pt(p.Scale, p.Scale))

	if p.CircleClip {
		if inv, ok := c.CurrentTransform().Invert(); ok {
			a := inv.TransformPoint(clipHandleA)
			b := inv.TransformPoint(clipHandleB)
			mid := a.Add(b).Div(2)
			c.ClipCircle(mid, a.Distance(mid))
		}
	}

	for _, join := range Joins {
		paint.StrokeJoin = join
		for _, cp := range Caps {
			paint.StrokeCap = cp
			c.DrawPath(path, paint)
			c.Translate(aiks.Pt(80, 0))
		}
		c.Translate(aiks.Pt(-240, 60))
	}

	pic, err := c.EndRecordingAsPicture()
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	return pic, nil
}
