// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/aiks"

// Renderer plays a recorded picture back onto a render target.
//
// Submission is one-shot and failable per frame: a failed Render is
// reported to the caller, never retried. Pictures are immutable, so the
// same picture can be rendered any number of times to different targets.
//
// Thread Safety: Renderers are NOT thread-safe. Each renderer should be
// used from a single goroutine, or external synchronization must be used.
//
//	renderer := render.NewSoftwareRenderer()
//	target := render.NewPixmapTarget(800, 600)
//	if err := renderer.Render(target, picture); err != nil {
//	    slog.Warn("frame skipped", "err", err)
//	}
type Renderer interface {
	// Render draws the picture to the target in recording order.
	Render(target RenderTarget, picture *aiks.Picture) error

	// Flush ensures all pending rendering operations are complete.
	//
	// For CPU renderers this is a no-op as operations are synchronous.
	Flush() error
}

// RendererCapabilities describes the features supported by a renderer.
type RendererCapabilities struct {
	// IsGPU indicates if this is a GPU-accelerated renderer.
	IsGPU bool

	// SupportsAntialiasing indicates if anti-aliased rendering is supported.
	SupportsAntialiasing bool

	// SupportsMaskBlur indicates if paint mask blurs are honored.
	SupportsMaskBlur bool

	// SupportsEvenOdd indicates if the even-odd fill rule is honored.
	SupportsEvenOdd bool

	// MaxTextureSize is the maximum texture dimension (0 = unlimited).
	MaxTextureSize int
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() RendererCapabilities
}
