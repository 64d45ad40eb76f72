// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"log/slog"

	"golang.org/x/image/draw"

	"github.com/gogpu/aiks"
)

// SoftwareRenderer is a CPU renderer for recorded pictures.
//
// Every draw is turned into an 8-bit coverage mask: fills and strokes are
// rasterized with rasterx, which honors the paint's join, cap, width and
// miter limit. A mask blur is applied to the coverage, then the draw's
// clip set is evaluated in order and multiplied in, and the paint color
// is composited source-over.
//
// Known limitation: the scanline rasterizer fills with the non-zero rule
// only, so even-odd paths render as non-zero.
//
//	renderer := render.NewSoftwareRenderer(render.WithClearColor(aiks.White))
//	target := render.NewPixmapTarget(800, 600)
//	err := renderer.Render(target, picture)
type SoftwareRenderer struct {
	clear    aiks.RGBA
	hasClear bool
	noBlur   bool

	frames int
}

// SoftwareOption configures a SoftwareRenderer.
type SoftwareOption func(*SoftwareRenderer)

// WithClearColor clears the target to c before each Render.
func WithClearColor(c aiks.RGBA) SoftwareOption {
	return func(r *SoftwareRenderer) {
		r.clear = c
		r.hasClear = true
	}
}

// WithoutMaskBlur disables mask blurs, drawing blurred paints sharp.
func WithoutMaskBlur() SoftwareOption {
	return func(r *SoftwareRenderer) {
		r.noBlur = true
	}
}

// NewSoftwareRenderer creates a new CPU-based software renderer.
func NewSoftwareRenderer(opts ...SoftwareOption) *SoftwareRenderer {
	r := &SoftwareRenderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws the picture to the target.
//
// Returns ErrNilTarget or ErrNilPicture for nil arguments and ErrNoPixels
// if the target is GPU-only.
func (r *SoftwareRenderer) Render(target RenderTarget, picture *aiks.Picture) error {
	if target == nil {
		return ErrNilTarget
	}
	if picture == nil {
		return ErrNilPicture
	}
	dst, err := targetImage(target)
	if err != nil {
		return err
	}
	if r.hasClear {
		NewPixmapTargetFromImage(dst).Clear(r.clear)
	}

	draws := picture.Draws()
	for _, op := range draws {
		r.draw(dst, op)
	}
	r.frames++
	aiks.Logger().Debug("render: picture played back",
		slog.Int("draws", len(draws)),
		slog.Int("frame", r.frames))
	return nil
}

// Flush ensures all rendering is complete.
// For the software renderer, this is a no-op as operations are synchronous.
func (r *SoftwareRenderer) Flush() error {
	return nil
}

// Frames returns the number of pictures rendered so far.
func (r *SoftwareRenderer) Frames() int {
	return r.frames
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                false,
		SupportsAntialiasing: true,
		SupportsMaskBlur:     !r.noBlur,
		SupportsEvenOdd:      false,
		MaxTextureSize:       0, // No limit
	}
}

// draw composites one draw operation onto dst.
func (r *SoftwareRenderer) draw(dst *image.RGBA, op aiks.Operation) {
	bounds := dst.Bounds()
	var (
		mask  *image.Alpha
		paint aiks.Paint
		st    aiks.State
	)
	switch o := op.(type) {
	case aiks.DrawPaintOp:
		paint, st = o.Paint, o.State
		mask = fullMask(bounds)
	case aiks.DrawPathOp:
		paint, st = o.Paint, o.State
		mask = coverage(bounds, o.DevicePath(), paint, st.Transform)
	case aiks.DrawRectOp:
		paint, st = o.Paint, o.State
		mask = coverage(bounds, o.DevicePath(), paint, st.Transform)
	default:
		return
	}

	if paint.MaskBlur.Enabled() && !r.noBlur {
		sigma := float64(paint.MaskBlur.Sigma) * st.Transform.MaxBasisLength()
		mask = blurMask(mask, paint.MaskBlur.Style, sigma)
	}
	if len(st.Clips) > 0 {
		multiplyMask(mask, clipMask(bounds, st.Clips), false)
	}

	ext := maskExtent(mask)
	if ext.Empty() {
		return
	}
	src := image.NewUniform(paint.Color.NRGBA())
	draw.DrawMask(dst, ext, src, image.Point{}, mask, ext.Min, draw.Over)
}

// Ensure SoftwareRenderer implements CapableRenderer.
var _ CapableRenderer = (*SoftwareRenderer)(nil)
