// Package impeller registers the "impeller" example: one draw call with a
// textured quad whose fragment shader ray-marches an SDF scene over a cube
// map backdrop.
package impeller

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/aiks/asset"
	"github.com/gogpu/aiks/example"
	"github.com/gogpu/aiks/render"
	"github.com/gogpu/aiks/shader"
)

// Name is the registry name of the example.
const Name = "impeller"

func init() {
	example.Register(Name, func() example.Example { return &Example{} })
}

//go:embed shaders/impeller.wgsl
var source string

// BlueNoiseFile is the noise texture, relative to the asset root.
const BlueNoiseFile = "blue_noise.png"

// CubeFaces are the cube map faces ordered +X, -X, +Y, -Y, +Z, -Z.
var CubeFaces = [6]string{
	"table_mountain_px.png",
	"table_mountain_nx.png",
	"table_mountain_py.png",
	"table_mountain_ny.png",
	"table_mountain_pz.png",
	"table_mountain_nz.png",
}

// CommandLabel labels the single draw command of each frame.
const CommandLabel = "Impeller SDF showcase"

// Binding slots, matching the shader's group 0.
const (
	SlotFrameInfo = 0
	SlotFragInfo  = 1
	SlotBlueNoise = 2
	SlotCubeMap   = 4
)

// Example is the SDF showcase.
type Example struct {
	pipeline     *shader.Pipeline
	blueNoise    *asset.Texture
	noiseSampler render.SamplerDescriptor
	cubeMap      *asset.Texture
	cubeSampler  render.SamplerDescriptor

	transients []*render.Buffer
}

// Info implements example.Example.
func (*Example) Info() example.Info {
	return example.Info{
		Name: "The Impeller",
		Description: "One draw call with a textured quad. The fragment shader renders a " +
			"fancy SDF scene with a cubemap backdrop.",
	}
}

// PipelineDescriptor returns the showcase pipeline for color format f.
func PipelineDescriptor(f gputypes.TextureFormat) shader.PipelineDescriptor {
	return shader.PipelineDescriptor{
		Label:    "impeller showcase",
		Vertex:   shader.Descriptor{Label: "impeller.vert", Source: source, Stage: shader.StageVertex},
		Fragment: shader.Descriptor{Label: "impeller.frag", Source: source, Stage: shader.StageFragment},
		VertexLayouts: []shader.VertexLayout{{
			Stride:   8,
			StepMode: gputypes.VertexStepModeVertex,
			Attributes: []shader.VertexAttribute{
				{Location: 0, Format: gputypes.VertexFormatFloat32x2, Offset: 0},
			},
		}},
		Topology:    gputypes.PrimitiveTopologyTriangleList,
		CullMode:    gputypes.CullModeNone,
		ColorFormat: f,
		SampleCount: 4,
	}
}

// Setup loads the noise and cube map textures and builds the pipeline.
func (e *Example) Setup(ctx *example.Context) error {
	noise, err := ctx.Assets.LoadTexture(BlueNoiseFile)
	if err != nil {
		return fmt.Errorf("impeller: load blue noise texture: %w", err)
	}
	cube, err := ctx.Assets.LoadTextureCube(CubeFaces)
	if err != nil {
		return fmt.Errorf("impeller: load cube map: %w", err)
	}
	pipeline, err := ctx.Shaders.GetPipeline(PipelineDescriptor(ctx.ColorFormat))
	if err != nil {
		return fmt.Errorf("impeller: initialize pipeline: %w", err)
	}

	e.blueNoise, e.cubeMap, e.pipeline = noise, cube, pipeline
	e.noiseSampler = render.RepeatSamplerDescriptor("blue noise")
	e.cubeSampler = render.DefaultSamplerDescriptor()
	e.cubeSampler.Label = "cube map"
	return nil
}

// Render records one draw covering the whole target.
func (e *Example) Render(ctx *example.Context, frame *example.Frame) error {
	if e.pipeline == nil {
		return errors.New("impeller: Render called before Setup")
	}
	if frame.Commands == nil {
		return errors.New("impeller: frame has no command buffer")
	}
	e.release(ctx.Allocator)

	pass, err := frame.Commands.CreateRenderPass(frame.Target)
	if err != nil {
		return fmt.Errorf("impeller: %w", err)
	}

	w, h := frame.Size()
	fw, fh := float32(w), float32(h)
	quad := example.Float32Bytes(
		0, 0,
		0, fh,
		fw, 0,
		fw, 0,
		0, fh,
		fw, fh,
	)
	vertices, err := e.allocate(ctx.Allocator, "impeller vertices", render.BufferUsageVertex, quad)
	if err != nil {
		return err
	}
	frameInfo, err := e.allocate(ctx.Allocator, "impeller frame info", render.BufferUsageUniform,
		example.Orthographic(fw, fh).Bytes())
	if err != nil {
		return err
	}
	// vec2 texture_size, f32 time, padded to 16 bytes.
	fragInfo, err := e.allocate(ctx.Allocator, "impeller frag info", render.BufferUsageUniform,
		example.Float32Bytes(fw, fh, frame.Seconds(), 0))
	if err != nil {
		return err
	}

	cmd := render.DrawCommand{
		Label:        CommandLabel,
		Pipeline:     e.pipeline,
		VertexBuffer: render.VertexBuffer{Vertices: vertices},
		Bindings: []render.Binding{
			{Slot: SlotFrameInfo, Buffer: frameInfo},
			{Slot: SlotFragInfo, Buffer: fragInfo},
			{Slot: SlotBlueNoise, Texture: e.blueNoise, Sampler: &e.noiseSampler},
			{Slot: SlotCubeMap, Texture: e.cubeMap, Sampler: &e.cubeSampler},
		},
	}
	if err := pass.AddCommand(cmd); err != nil {
		return fmt.Errorf("impeller: %w", err)
	}
	if err := pass.EncodeCommands(); err != nil {
		return fmt.Errorf("impeller: %w", err)
	}
	return nil
}

func (e *Example) allocate(a render.BufferAllocator, label string, usage render.BufferUsage, data []byte) (*render.Buffer, error) {
	buf, err := a.Allocate(label, usage, data)
	if err != nil {
		return nil, fmt.Errorf("impeller: %w", err)
	}
	e.transients = append(e.transients, buf)
	return buf, nil
}

// release frees the previous frame's buffers, which the host has
// submitted by the time the next frame renders.
func (e *Example) release(a render.BufferAllocator) {
	for _, b := range e.transients {
		a.Release(b)
	}
	e.transients = e.transients[:0]
}
