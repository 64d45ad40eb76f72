package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/aiks/asset"
	"github.com/gogpu/aiks/example"
	"github.com/gogpu/aiks/internal/fixture"
	"github.com/gogpu/aiks/render"
	"github.com/gogpu/aiks/shader"
)

const quadYAML = `
label: quad
vertices:
  - {position: [-1, -1, 0], normal: [0, 0, 1], color: [1, 0, 0, 1]}
  - {position: [1, -1, 0], normal: [0, 0, 1], color: [0, 1, 0, 1]}
  - {position: [1, 1, 0], normal: [0, 0, 1], color: [0, 0, 1, 1]}
  - {position: [-1, 1, 0], normal: [0, 0, 1]}
indices: [0, 1, 2, 0, 2, 3]
`

func newContext(t *testing.T, yaml string) *example.Context {
	t.Helper()
	dir := t.TempDir()
	fixture.WriteFile(t, dir, "quad.yaml", []byte(yaml))
	p := example.DefaultParams()
	p.Assets = dir
	p.Mesh = "quad.yaml"
	ctx, err := example.NewContext(
		example.WithParams(&p),
		example.WithShaders(shader.NewLibrary(shader.WithCompiler(fixture.Compile))),
	)
	if err != nil {
		t.Fatal(err)
	}
	return ctx
}

func TestSetupAndRender(t *testing.T) {
	ctx := newContext(t, quadYAML)
	ex, err := example.New(Name)
	if err != nil {
		t.Fatal(err)
	}
	if err := ex.Setup(ctx); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	alloc := ctx.Allocator.(*render.HostAllocator)
	var used int
	for i := 0; i < 3; i++ {
		cb := render.NewCommandBuffer(ctx.Device, "frame")
		frame := &example.Frame{Index: i, Target: render.NewPixmapTarget(400, 300), Commands: cb}
		if err := ex.Render(ctx, frame); err != nil {
			t.Fatalf("frame %d: Render() error = %v", i, err)
		}
		if err := cb.Submit(); err != nil {
			t.Fatalf("frame %d: Submit() error = %v", i, err)
		}
		if i == 0 {
			used = alloc.Used()
		} else if alloc.Used() != used {
			t.Errorf("frame %d: Used() = %d, want %d", i, alloc.Used(), used)
		}

		cmd := cb.Passes()[0].Commands()[0]
		if cmd.Label != CommandLabel {
			t.Errorf("Label = %q, want %q", cmd.Label, CommandLabel)
		}
		vb := cmd.VertexBuffer
		if vb.IndexFormat != gputypes.IndexFormatUint16 || vb.IndexCount != 6 {
			t.Errorf("index format %v count %d, want Uint16 6", vb.IndexFormat, vb.IndexCount)
		}
		if vb.Vertices.Size() != 4*asset.VertexStride {
			t.Errorf("vertex bytes = %d, want %d", vb.Vertices.Size(), 4*asset.VertexStride)
		}
	}
	// Four vertices, six indices and one MVP.
	if want := 4*asset.VertexStride + 12 + 64; used != want {
		t.Errorf("Used() = %d, want %d", used, want)
	}
}

func TestPipelineState(t *testing.T) {
	desc := PipelineDescriptor(gputypes.TextureFormatBGRA8Unorm)
	if desc.SampleCount != 4 || desc.CullMode != gputypes.CullModeBack || desc.FrontFace != gputypes.FrontFaceCCW {
		t.Errorf("pipeline state = %+v, want 4x MSAA, CCW, back culling", desc)
	}
	if desc.VertexLayouts[0].Stride != asset.VertexStride {
		t.Errorf("Stride = %d, want %d", desc.VertexLayouts[0].Stride, asset.VertexStride)
	}
}

func TestMVP(t *testing.T) {
	at0 := MVP(400, 300, 0)
	got := at0.Transform(0, 0, 0)
	if math.Abs(float64(got[0])) > 1e-5 || math.Abs(float64(got[1])) > 1e-5 {
		t.Errorf("model origin = %v, want screen center", got)
	}
	if math.Abs(float64(got[3]-50)) > 1e-4 {
		t.Errorf("w = %v, want 50", got[3])
	}
	if MVP(400, 300, 1) == at0 {
		t.Error("MVP does not change over time")
	}
}

func TestSetupFailures(t *testing.T) {
	t.Run("invalid mesh", func(t *testing.T) {
		ctx := newContext(t, "vertices:\n  - {position: [0, 0, 0]}\nindices: [0, 1, 2]\n")
		err := (&Example{}).Setup(ctx)
		if !errors.Is(err, asset.ErrInvalidMesh) {
			t.Errorf("Setup() error = %v, want ErrInvalidMesh", err)
		}
	})
	t.Run("allocation failure", func(t *testing.T) {
		ctx := newContext(t, quadYAML)
		ctx.Allocator = render.NewHostAllocator(16)
		err := (&Example{}).Setup(ctx)
		if !errors.Is(err, render.ErrOutOfMemory) {
			t.Errorf("Setup() error = %v, want ErrOutOfMemory", err)
		}
	})
	t.Run("invalid pipeline releases buffers", func(t *testing.T) {
		ctx := newContext(t, quadYAML)
		ctx.ColorFormat = gputypes.TextureFormatUndefined
		alloc := ctx.Allocator.(*render.HostAllocator)
		err := (&Example{}).Setup(ctx)
		if !errors.Is(err, shader.ErrInvalidPipeline) {
			t.Errorf("Setup() error = %v, want ErrInvalidPipeline", err)
		}
		if alloc.Used() != 0 {
			t.Errorf("Used() = %d after failed Setup, want 0", alloc.Used())
		}
	})
}

func TestShippedCube(t *testing.T) {
	loader, err := asset.NewLoader(asset.WithRoot("../../assets"))
	if err != nil {
		t.Fatal(err)
	}
	m, err := loader.LoadMesh(example.DefaultParams().Mesh)
	if err != nil {
		t.Fatalf("LoadMesh() error = %v", err)
	}
	if len(m.Vertices) != 24 || len(m.Indices) != 36 {
		t.Errorf("cube has %d vertices %d indices, want 24 36", len(m.Vertices), len(m.Indices))
	}
}

func TestPipelineCompilesWithNaga(t *testing.T) {
	lib := shader.NewLibrary()
	p, err := lib.GetPipeline(PipelineDescriptor(gputypes.TextureFormatBGRA8Unorm))
	if err != nil {
		t.Fatalf("GetPipeline() error = %v", err)
	}
	if !p.IsValid() {
		t.Errorf("IsValid() = false for %q", p.Label())
	}
}
