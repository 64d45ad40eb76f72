// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "errors"

var (
	// ErrNilTarget is returned when rendering to a nil target.
	ErrNilTarget = errors.New("render: nil target")

	// ErrNilPicture is returned when rendering a nil picture.
	ErrNilPicture = errors.New("render: nil picture")

	// ErrNoPixels is returned when a CPU renderer is given a target
	// without CPU-accessible pixels.
	ErrNoPixels = errors.New("render: target does not support CPU rendering")

	// ErrPassEncoded is returned when a render pass is modified after
	// EncodeCommands.
	ErrPassEncoded = errors.New("render: render pass already encoded")

	// ErrPassNotEncoded is returned when submitting a command buffer that
	// holds a pass which was never encoded.
	ErrPassNotEncoded = errors.New("render: render pass not encoded")

	// ErrAlreadySubmitted is returned when a command buffer is used after
	// Submit.
	ErrAlreadySubmitted = errors.New("render: command buffer already submitted")

	// ErrInvalidCommand is returned when a draw command is incomplete.
	ErrInvalidCommand = errors.New("render: invalid draw command")

	// ErrOutOfMemory is returned when an allocator cannot satisfy a
	// request.
	ErrOutOfMemory = errors.New("render: out of buffer memory")
)
