package shader

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/gputypes"
)

func triangleDescriptor() PipelineDescriptor {
	return PipelineDescriptor{
		Label:       "triangle",
		Vertex:      Descriptor{Label: "triangle.vert", Source: triangleWGSL, Stage: StageVertex},
		Fragment:    Descriptor{Label: "triangle.frag", Source: triangleWGSL, Stage: StageFragment},
		Topology:    gputypes.PrimitiveTopologyTriangleList,
		CullMode:    gputypes.CullModeNone,
		ColorFormat: gputypes.TextureFormatBGRA8Unorm,
	}
}

func TestLibraryGetPipeline(t *testing.T) {
	lib := NewLibrary(WithCompiler(fakeSPIRV))
	p, err := lib.GetPipeline(triangleDescriptor())
	if err != nil {
		t.Fatalf("GetPipeline() error = %v", err)
	}
	if !p.IsValid() {
		t.Fatal("IsValid() = false, want true")
	}
	if p.Label() != "triangle" || p.Descriptor().SampleCount != 1 {
		t.Errorf("pipeline = %q samples %d", p.Label(), p.Descriptor().SampleCount)
	}
	if p.VertexModule() == nil || p.FragmentModule() == nil {
		t.Error("compiled modules missing")
	}

	again, err := lib.GetPipeline(triangleDescriptor())
	if err != nil || again != p {
		t.Errorf("second GetPipeline() = %p, %v, want cached %p", again, err, p)
	}
	if hits, misses := lib.Stats(); hits != 1 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses, want 1, 1", hits, misses)
	}
}

func TestLibraryInvalidPipelines(t *testing.T) {
	tests := []struct {
		name    string
		compile CompileFunc
		modify  func(*PipelineDescriptor)
	}{
		{"compile failure", failingCompiler, func(*PipelineDescriptor) {}},
		{"sample count", fakeSPIRV, func(d *PipelineDescriptor) { d.SampleCount = 3 }},
		{"no color format", fakeSPIRV, func(d *PipelineDescriptor) { d.ColorFormat = gputypes.TextureFormatUndefined }},
		{"stage mismatch", fakeSPIRV, func(d *PipelineDescriptor) { d.Vertex.Stage = StageFragment }},
		{"missing fragment entry", fakeSPIRV, func(d *PipelineDescriptor) { d.Fragment.EntryPoint = "frag" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := NewLibrary(WithCompiler(tt.compile))
			desc := triangleDescriptor()
			tt.modify(&desc)
			p, err := lib.GetPipeline(desc)
			if !errors.Is(err, ErrInvalidPipeline) {
				t.Fatalf("GetPipeline() error = %v, want ErrInvalidPipeline", err)
			}
			if p == nil || p.IsValid() {
				t.Fatalf("pipeline = %v, want invalid pipeline", p)
			}
			if !errors.Is(p.Err(), ErrInvalidPipeline) {
				t.Errorf("Err() = %v", p.Err())
			}
			if _, err := lib.GetPipeline(desc); !errors.Is(err, ErrInvalidPipeline) {
				t.Errorf("cached GetPipeline() error = %v", err)
			}
			if _, misses := lib.Stats(); misses != 1 {
				t.Errorf("misses = %d, want 1", misses)
			}
		})
	}
}

func TestLibraryMultisample(t *testing.T) {
	lib := NewLibrary(WithCompiler(fakeSPIRV))
	desc := triangleDescriptor()
	desc.SampleCount = 4
	p, err := lib.GetPipeline(desc)
	if err != nil || !p.IsValid() {
		t.Fatalf("GetPipeline(4x) = %v", err)
	}
	if lib.Len() != 1 {
		t.Errorf("Len() = %d, want 1", lib.Len())
	}
	if _, err := lib.GetPipeline(triangleDescriptor()); err != nil {
		t.Fatal(err)
	}
	if lib.Len() != 2 {
		t.Errorf("Len() = %d, want 2 distinct pipelines", lib.Len())
	}
	lib.Clear()
	if hits, misses := lib.Stats(); lib.Len() != 0 || hits != 0 || misses != 0 {
		t.Errorf("after Clear: Len %d, hits %d, misses %d", lib.Len(), hits, misses)
	}
}

func TestLibraryConcurrent(t *testing.T) {
	var calls int
	var mu sync.Mutex
	lib := NewLibrary(WithCompiler(func(src string) ([]byte, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return fakeSPIRV(src)
	}))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := lib.GetPipeline(triangleDescriptor()); err != nil {
				t.Errorf("GetPipeline() error = %v", err)
			}
		}()
	}
	wg.Wait()
	if calls != 2 {
		t.Errorf("compiler called %d times, want 2 (one per stage)", calls)
	}
}

func TestHashPipelineDescriptor(t *testing.T) {
	a := triangleDescriptor()
	b := triangleDescriptor()
	if hashPipelineDescriptor(&a) != hashPipelineDescriptor(&b) {
		t.Error("equal descriptors hash differently")
	}
	b.CullMode = gputypes.CullModeBack
	if hashPipelineDescriptor(&a) == hashPipelineDescriptor(&b) {
		t.Error("cull mode not part of the hash")
	}
	b = triangleDescriptor()
	b.VertexLayouts = []VertexLayout{{Stride: 16, Attributes: []VertexAttribute{{Format: gputypes.VertexFormatFloat32x2}}}}
	if hashPipelineDescriptor(&a) == hashPipelineDescriptor(&b) {
		t.Error("vertex layout not part of the hash")
	}
}
