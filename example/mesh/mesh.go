// Package mesh registers the "mesh" example: an indexed, vertex colored
// mesh spinning under a perspective projection.
package mesh

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
const Name = "mesh"

func init() {
	example.Register(Name, func() example.Example { return &Example{} })
}

//go:embed shaders/mesh.wgsl
var source string

// CommandLabel labels the draw command of each frame.
const CommandLabel = "Mesh Example"

// Example draws a mesh loaded from a YAML description.
type Example struct {
	pipeline *shader.Pipeline
	mesh     *asset.Mesh
	vertices render.VertexBuffer

	uniform *render.Buffer
}

// Info implements example.Example.
func (*Example) Info() example.Info {
	return example.Info{
		Name: "Mesh Example",
		Description: "A mesh with vertex colors and normals described ahead of time in " +
			"YAML and loaded through the asset loader.",
	}
}

// PipelineDescriptor returns the mesh pipeline for color format f.
func PipelineDescriptor(f gputypes.TextureFormat) shader.PipelineDescriptor {
	return shader.PipelineDescriptor{
		Label:    "mesh",
		Vertex:   shader.Descriptor{Label: "mesh.vert", Source: source, Stage: shader.StageVertex},
		Fragment: shader.Descriptor{Label: "mesh.frag", Source: source, Stage: shader.StageFragment},
		VertexLayouts: []shader.VertexLayout{{
			Stride:   asset.VertexStride,
			StepMode: gputypes.VertexStepModeVertex,
			Attributes: []shader.VertexAttribute{
				{Location: 0, Format: gputypes.VertexFormatFloat32x3, Offset: 0},
				{Location: 1, Format: gputypes.VertexFormatFloat32x3, Offset: 12},
				{Location: 2, Format: gputypes.VertexFormatFloat32x4, Offset: 24},
			},
		}},
		Topology:    gputypes.PrimitiveTopologyTriangleList,
		FrontFace:   gputypes.FrontFaceCCW,
		CullMode:    gputypes.CullModeBack,
		ColorFormat: f,
		SampleCount: 4,
	}
}

// MVP returns the model-view-projection matrix for a width x height
// target at t seconds.
func MVP(width, height int, t float32) example.Mat4 {
	aspect := float32(width) / float32(height)
	return example.Perspective(example.Radians(60), aspect, 0, 1000).
		Mul(example.Translation4(0, 0, -50)).
		Mul(example.RotationX(0.19 * t)).
		Mul(example.RotationY(0.7 * t)).
		Mul(example.RotationZ(0.43 * t))
}

// Setup loads the mesh, uploads it and builds the pipeline.
func (e *Example) Setup(ctx *example.Context) error {
	m, err := ctx.Assets.LoadMesh(ctx.Params.Mesh)
	if err != nil {
		return fmt.Errorf("mesh: load: %w", err)
	}

	vertices, err := ctx.Allocator.Allocate("mesh vertices", render.BufferUsageVertex, m.VertexBytes())
	if err != nil {
		return fmt.Errorf("mesh: upload vertices: %w", err)
	}
	indices, err := ctx.Allocator.Allocate("mesh indices", render.BufferUsageIndex, m.IndexBytes())
	if err != nil {
		ctx.Allocator.Release(vertices)
		return fmt.Errorf("mesh: upload indices: %w", err)
	}

	pipeline, err := ctx.Shaders.GetPipeline(PipelineDescriptor(ctx.ColorFormat))
	if err != nil {
		ctx.Allocator.Release(vertices)
		ctx.Allocator.Release(indices)
		return fmt.Errorf("mesh: initialize pipeline: %w", err)
	}

	e.mesh, e.pipeline = m, pipeline
	e.vertices = render.VertexBuffer{
		Vertices:    vertices,
		Indices:     indices,
		IndexFormat: gputypes.IndexFormatUint16,
		IndexCount:  uint32(len(m.Indices)), //nolint:gosec // bounded by validation
	}
	return nil
}

// Render records the mesh draw with this frame's MVP.
func (e *Example) Render(ctx *example.Context, frame *example.Frame) error {
	if e.pipeline == nil {
		return errors.New("mesh: Render called before Setup")
	}
	if frame.Commands == nil {
		return errors.New("mesh: frame has no command buffer")
	}

	pass, err := frame.Commands.CreateRenderPass(frame.Target)
	if err != nil {
		return fmt.Errorf("mesh: %w", err)
	}

	ctx.Allocator.Release(e.uniform)
	w, h := frame.Size()
	uniform, err := ctx.Allocator.Allocate("mesh vert info", render.BufferUsageUniform,
		MVP(w, h, frame.Seconds()).Bytes())
	if err != nil {
		return fmt.Errorf("mesh: %w", err)
	}
	e.uniform = uniform

	cmd := render.DrawCommand{
		Label:        CommandLabel,
		Pipeline:     e.pipeline,
		VertexBuffer: e.vertices,
		Bindings:     []render.Binding{{Slot: 0, Buffer: uniform}},
	}
	if err := pass.AddCommand(cmd); err != nil {
		return fmt.Errorf("mesh: %w", err)
	}
	if err := pass.EncodeCommands(); err != nil {
		return fmt.Errorf("mesh: %w", err)
	}
	return nil
}
