// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/aiks"
)

// RenderTarget defines where rendering output goes.
//
// Targets may support CPU access (Pixels), GPU access (TextureView), or
// both. The Renderer implementation chooses the access method it needs.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// TextureView returns the GPU texture view for this target.
	// Returns nil for CPU-only targets.
	TextureView() TextureView

	// Pixels returns direct access to pixel data.
	// Returns nil for GPU-only targets.
	// For RGBA format, each pixel is 4 bytes: R, G, B, A.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// PixmapTarget is a CPU-backed render target using *image.RGBA.
//
//	target := render.NewPixmapTarget(800, 600)
//	err := renderer.Render(target, picture)
//	img := target.Image()
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a new CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a render target.
// The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// TextureView returns nil as this is a CPU-only target.
func (t *PixmapTarget) TextureView() TextureView {
	return nil
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with c.
func (t *PixmapTarget) Clear(c aiks.RGBA) {
	fillRGBA(t.img, color.RGBAModel.Convert(c.NRGBA()).(color.RGBA))
}

// At returns the color at the given coordinates.
func (t *PixmapTarget) At(x, y int) color.RGBA {
	return t.img.RGBAAt(x, y)
}

// Resize replaces the backing image. The contents are not preserved.
func (t *PixmapTarget) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Ensure PixmapTarget implements RenderTarget.
var _ RenderTarget = (*PixmapTarget)(nil)

// TextureTarget is a GPU-only render target backed by a texture view
// owned by the host. It has no CPU pixels; raw-pipeline examples encode
// render passes against it.
type TextureTarget struct {
	desc TextureDescriptor
	view TextureView
}

// NewTextureTarget creates a GPU-only target described by desc. The view
// may be nil when the host has not created one yet.
func NewTextureTarget(desc TextureDescriptor, view TextureView) *TextureTarget {
	return &TextureTarget{desc: desc, view: view}
}

// Width returns the target width in pixels.
func (t *TextureTarget) Width() int {
	return int(t.desc.Width)
}

// Height returns the target height in pixels.
func (t *TextureTarget) Height() int {
	return int(t.desc.Height)
}

// Format returns the pixel format.
func (t *TextureTarget) Format() gputypes.TextureFormat {
	return t.desc.Format
}

// SampleCount returns the number of samples per pixel.
func (t *TextureTarget) SampleCount() uint32 {
	return t.desc.SampleCount
}

// TextureView returns the GPU texture view.
func (t *TextureTarget) TextureView() TextureView {
	return t.view
}

// Pixels returns nil as this is a GPU-only target.
func (t *TextureTarget) Pixels() []byte {
	return nil
}

// Stride returns 0 as this is a GPU-only target.
func (t *TextureTarget) Stride() int {
	return 0
}

// Destroy releases the texture view.
func (t *TextureTarget) Destroy() {
	if t.view != nil {
		t.view.Destroy()
		t.view = nil
	}
}

// Ensure TextureTarget implements RenderTarget.
var _ RenderTarget = (*TextureTarget)(nil)

// targetImage returns an *image.RGBA sharing memory with a CPU target.
func targetImage(target RenderTarget) (*image.RGBA, error) {
	if pt, ok := target.(*PixmapTarget); ok {
		return pt.img, nil
	}
	pix := target.Pixels()
	if pix == nil {
		return nil, ErrNoPixels
	}
	w, h, stride := target.Width(), target.Height(), target.Stride()
	if stride < w*4 || len(pix) < stride*(h-1)+w*4 {
		return nil, ErrNoPixels
	}
	return &image.RGBA{Pix: pix, Stride: stride, Rect: image.Rect(0, 0, w, h)}, nil
}

func fillRGBA(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		}
	}
}
