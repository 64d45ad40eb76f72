// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render plays recorded aiks pictures back onto render targets and
// provides the host-side command buffer used by raw-pipeline examples.
//
// # Key Principle
//
// This package RECEIVES a GPU device from the host application, it does
// NOT create its own. DeviceHandle is the integration point; NullDeviceHandle
// stands in when only CPU rendering is available.
//
// # Core Interfaces
//
//   - Renderer: plays a *aiks.Picture onto a RenderTarget
//   - RenderTarget: where output goes (PixmapTarget, TextureTarget)
//   - BufferAllocator: per-frame vertex, index and uniform memory
//
// # Software rendering
//
//	target := render.NewPixmapTarget(800, 600)
//	renderer := render.NewSoftwareRenderer(render.WithClearColor(aiks.White))
//	if err := renderer.Render(target, picture); err != nil {
//	    return err
//	}
//	img := target.Image()
//
// # Command buffers
//
//	cb := render.NewCommandBuffer(device, "frame")
//	pass, _ := cb.CreateRenderPass(target)
//	_ = pass.AddCommand(render.DrawCommand{Pipeline: p, VertexBuffer: vb})
//	_ = pass.EncodeCommands()
//	err := cb.Submit()
//
// # Thread Safety
//
// Renderers and command buffers are NOT thread-safe. HostAllocator is safe
// for concurrent use.
package render
