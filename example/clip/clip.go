// Package clip registers the "clip" example: a yellow face carved out of a
// circle with difference clips, and a blurred stroke recorded after the
// inner clips are restored away.
package clip

import (
	"errors"
	"fmt"

	"github.com/gogpu/aiks"
	"github.com/gogpu/aiks/example"
)

// Name is the registry name of the example.
const Name = "clip"

func init() {
	example.Register(Name, func() example.Example { return &Example{} })
}

// Radius is the radius of the outer intersect clip.
const Radius = 200

// Example is the difference clip example.
type Example struct{}

// Info implements example.Example.
func (*Example) Info() example.Info {
	return example.Info{
		Name: "Clip Example",
		Description: "Difference clips cut eyes and a mouth out of a circular clip. " +
			"The blurred stroke drawn after Restore is limited by the circle only.",
	}
}

// Setup implements example.Example.
func (*Example) Setup(ctx *example.Context) error {
	if ctx.Renderer == nil {
		return errors.New("clip: context has no renderer")
	}
	return nil
}

// Render implements example.Example.
func (*Example) Render(ctx *example.Context, frame *example.Frame) error {
	w, h := frame.Size()
	pic, err := Record(frame.Params, aiks.Pt(float64(w)/2, float64(h)/2))
	if err != nil {
		return err
	}
	if err := ctx.Renderer.Render(frame.Target, pic); err != nil {
		return fmt.Errorf("clip: %w", err)
	}
	return nil
}

// Mouth returns the curve region cut out of the face, centered on the origin.
func Mouth() aiks.Path {
	return aiks.NewPathBuilder().
		AddQuadraticCurve(aiks.Pt(-100, 50), aiks.Pt(0, 150), aiks.Pt(100, 50)).
		TakePath()
}

// Record records the face centered at center.
func Record(p example.Params, center aiks.Point) (*aiks.Picture, error) {
	c := aiks.NewCanvas()

	bg := aiks.NewPaint()
	bg.Color = p.Background
	c.DrawPaint(bg)

	c.Translate(center)
	c.ClipCircle(aiks.Pt(0, 0), Radius)

	c.Save()
	c.ClipCircle(aiks.Pt(-100, -50), 30, aiks.ClipDifference)
	c.ClipCircle(aiks.Pt(100, -50), 30, aiks.ClipDifference)
	c.ClipPath(Mouth(), aiks.ClipDifference)

	face := aiks.NewPaint()
	face.Color = aiks.Yellow
	c.DrawRect(aiks.MakeXYWH(-1000, -1000, 2000, 2000), face)
	if err := c.Restore(); err != nil {
		return nil, fmt.Errorf("clip: %w", err)
	}

	stroke := aiks.NewPaint()
	stroke.Color = aiks.Maroon
	stroke.Style = aiks.StyleStroke
	stroke.StrokeWidth = 10
	stroke.MaskBlur = aiks.MaskBlur{Style: aiks.BlurNormal, Sigma: 10}
	brow := aiks.NewPathBuilder().
		MoveTo(aiks.Pt(200, -200)).
		HorizontalLineTo(-200).
		VerticalLineTo(-40).
		CubicCurveTo(aiks.Pt(0, -40), aiks.Pt(0, -80), aiks.Pt(200, -80)).
		TakePath()
	c.DrawPath(brow, stroke)

	pic, err := c.EndRecordingAsPicture()
	if err != nil {
		return nil, fmt.Errorf("clip: %w", err)
	}
	return pic, nil
}
