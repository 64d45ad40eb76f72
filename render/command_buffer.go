// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/aiks"
)

// Pipeline is the compiled state a draw command is issued with.
type Pipeline interface {
	Label() string
	IsValid() bool
}

// VertexBuffer describes the geometry of a draw.
type VertexBuffer struct {
	Vertices    *Buffer
	Indices     *Buffer
	IndexFormat gputypes.IndexFormat
	IndexCount  uint32
}

// Binding attaches a resource to a shader slot. Exactly one of Buffer and
// Texture is set; Sampler accompanies Texture.
type Binding struct {
	Slot    uint32
	Buffer  *Buffer
	Texture Texture
	Sampler *SamplerDescriptor
}

// DrawCommand is one draw call in a render pass.
type DrawCommand struct {
	Label         string
	Pipeline      Pipeline
	VertexBuffer  VertexBuffer
	Bindings      []Binding
	InstanceCount uint32
}

func (c DrawCommand) validate() error {
	switch {
	case c.Pipeline == nil:
		return fmt.Errorf("render: command %q: no pipeline: %w", c.Label, ErrInvalidCommand)
	case !c.Pipeline.IsValid():
		return fmt.Errorf("render: command %q: pipeline %q invalid: %w", c.Label, c.Pipeline.Label(), ErrInvalidCommand)
	case c.VertexBuffer.Vertices == nil:
		return fmt.Errorf("render: command %q: no vertex buffer: %w", c.Label, ErrInvalidCommand)
	case c.VertexBuffer.Indices != nil && c.VertexBuffer.IndexCount == 0:
		return fmt.Errorf("render: command %q: empty index range: %w", c.Label, ErrInvalidCommand)
	}
	for _, b := range c.Bindings {
		if (b.Buffer == nil) == (b.Texture == nil) {
			return fmt.Errorf("render: command %q: binding %d needs one resource: %w", c.Label, b.Slot, ErrInvalidCommand)
		}
	}
	return nil
}

// RenderPass collects draw commands against one target. Commands are
// added until EncodeCommands; the pass is immutable afterwards.
type RenderPass struct {
	target   RenderTarget
	commands []DrawCommand
	encoded  bool
}

// Target returns the target the pass renders to.
func (p *RenderPass) Target() RenderTarget {
	return p.target
}

// AddCommand appends a draw command. A zero InstanceCount draws one
// instance.
func (p *RenderPass) AddCommand(cmd DrawCommand) error {
	if p.encoded {
		return ErrPassEncoded
	}
	if err := cmd.validate(); err != nil {
		return err
	}
	if cmd.InstanceCount == 0 {
		cmd.InstanceCount = 1
	}
	p.commands = append(p.commands, cmd)
	return nil
}

// EncodeCommands finalizes the pass.
func (p *RenderPass) EncodeCommands() error {
	if p.encoded {
		return ErrPassEncoded
	}
	p.encoded = true
	return nil
}

// Commands returns the commands recorded in the pass.
func (p *RenderPass) Commands() []DrawCommand {
	return p.commands
}

// CommandBuffer is a per-frame list of render passes submitted to the
// host device in one step.
type CommandBuffer struct {
	label     string
	device    DeviceHandle
	passes    []*RenderPass
	submitted bool
}

// NewCommandBuffer creates an empty command buffer for device.
func NewCommandBuffer(device DeviceHandle, label string) *CommandBuffer {
	if device == nil {
		device = NullDeviceHandle{}
	}
	return &CommandBuffer{label: label, device: device}
}

// Label returns the debug label.
func (b *CommandBuffer) Label() string {
	return b.label
}

// CreateRenderPass starts a pass rendering to target.
func (b *CommandBuffer) CreateRenderPass(target RenderTarget) (*RenderPass, error) {
	if b.submitted {
		return nil, ErrAlreadySubmitted
	}
	if target == nil {
		return nil, ErrNilTarget
	}
	p := &RenderPass{target: target}
	b.passes = append(b.passes, p)
	return p, nil
}

// Passes returns the passes created so far.
func (b *CommandBuffer) Passes() []*RenderPass {
	return b.passes
}

// DrawCount returns the number of draw commands across all passes.
func (b *CommandBuffer) DrawCount() int {
	n := 0
	for _, p := range b.passes {
		n += len(p.commands)
	}
	return n
}

// Submit hands the buffer to the device queue. A buffer can be submitted
// once and every pass must be encoded.
func (b *CommandBuffer) Submit() error {
	if b.submitted {
		return ErrAlreadySubmitted
	}
	for i, p := range b.passes {
		if !p.encoded {
			return fmt.Errorf("render: submit %q: pass %d: %w", b.label, i, ErrPassNotEncoded)
		}
	}
	b.submitted = true
	aiks.Logger().Debug("render: command buffer submitted",
		slog.String("label", b.label),
		slog.Int("passes", len(b.passes)),
		slog.Int("draws", b.DrawCount()),
		slog.Bool("null_device", IsNullDevice(b.device)))
	return nil
}

// Submitted reports whether Submit succeeded.
func (b *CommandBuffer) Submitted() bool {
	return b.submitted
}
