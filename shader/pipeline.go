package shader

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/aiks"
)

// VertexAttribute describes one attribute of a vertex layout.
type VertexAttribute struct {
	Location uint32
	Format   gputypes.VertexFormat
	Offset   uint64
}

// VertexLayout describes how a vertex buffer is read.
type VertexLayout struct {
	Stride     uint64
	StepMode   gputypes.VertexStepMode
	Attributes []VertexAttribute
}

// PipelineDescriptor describes a render pipeline.
type PipelineDescriptor struct {
	// Label is an optional debug name.
	Label string

	// Vertex and Fragment are the shader stages.
	Vertex   Descriptor
	Fragment Descriptor

	// VertexLayouts describes the vertex buffers.
	VertexLayouts []VertexLayout

	// Topology is the primitive type.
	Topology gputypes.PrimitiveTopology

	// FrontFace defines which face is considered front-facing.
	FrontFace gputypes.FrontFace

	// CullMode defines which faces to cull.
	CullMode gputypes.CullMode

	// ColorFormat is the format of the color attachment.
	ColorFormat gputypes.TextureFormat

	// DepthFormat is the format of the depth attachment.
	// Use TextureFormatUndefined for no depth attachment.
	DepthFormat gputypes.TextureFormat

	// SampleCount is the number of samples per pixel. Zero means 1.
	SampleCount uint32
}

// Pipeline is a render pipeline built by a Library.
type Pipeline struct {
	desc     PipelineDescriptor
	vertex   *Module
	fragment *Module
	err      error
}

// Label returns the debug name.
func (p *Pipeline) Label() string {
	return p.desc.Label
}

// IsValid reports whether both stages compiled and the descriptor is
// usable.
func (p *Pipeline) IsValid() bool {
	return p != nil && p.err == nil
}

// Err returns why the pipeline is invalid, or nil.
func (p *Pipeline) Err() error {
	return p.err
}

// Descriptor returns the descriptor the pipeline was built from.
func (p *Pipeline) Descriptor() PipelineDescriptor {
	return p.desc
}

// VertexModule returns the compiled vertex stage, or nil if invalid.
func (p *Pipeline) VertexModule() *Module {
	return p.vertex
}

// FragmentModule returns the compiled fragment stage, or nil if invalid.
func (p *Pipeline) FragmentModule() *Module {
	return p.fragment
}

// LibraryOption configures a Library.
type LibraryOption func(*Library)

// WithCompiler replaces the WGSL compiler, naga.Compile by default.
func WithCompiler(fn CompileFunc) LibraryOption {
	return func(l *Library) {
		l.compile = fn
	}
}

// Library builds and caches render pipelines.
//
// Pipeline creation involves shader compilation and validation, so
// pipelines are stored by descriptor hash. Invalid pipelines are cached
// too: asking again returns the same error without recompiling.
type Library struct {
	compile CompileFunc

	mu        sync.RWMutex
	pipelines map[uint64]*Pipeline

	hits   uint64
	misses uint64
}

// NewLibrary creates an empty pipeline library.
func NewLibrary(opts ...LibraryOption) *Library {
	l := &Library{pipelines: make(map[uint64]*Pipeline)}
	for _, opt := range opts {
		opt(l)
	}
	if l.compile == nil {
		l.compile = naga.Compile
	}
	return l
}

// GetPipeline returns the pipeline for desc, building it on first use.
// If the pipeline is invalid it is returned together with an error
// wrapping ErrInvalidPipeline.
func (l *Library) GetPipeline(desc PipelineDescriptor) (*Pipeline, error) {
	key := hashPipelineDescriptor(&desc)

	l.mu.RLock()
	p, ok := l.pipelines[key]
	l.mu.RUnlock()
	if ok {
		atomic.AddUint64(&l.hits, 1)
		return p, p.err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if p, ok := l.pipelines[key]; ok {
		atomic.AddUint64(&l.hits, 1)
		return p, p.err
	}

	p = l.build(desc)
	l.pipelines[key] = p
	atomic.AddUint64(&l.misses, 1)
	if p.err != nil {
		aiks.Logger().Warn("shader: invalid pipeline",
			slog.String("label", desc.Label),
			slog.String("err", p.err.Error()))
	}
	return p, p.err
}

func (l *Library) build(desc PipelineDescriptor) *Pipeline {
	p := &Pipeline{desc: desc}
	if p.desc.SampleCount == 0 {
		p.desc.SampleCount = 1
	}
	invalid := func(format string, args ...any) *Pipeline {
		p.err = fmt.Errorf("shader: pipeline %q: %s: %w", desc.Label, fmt.Sprintf(format, args...), ErrInvalidPipeline)
		return p
	}

	switch p.desc.SampleCount {
	case 1, 4:
	default:
		return invalid("unsupported sample count %d", p.desc.SampleCount)
	}
	if p.desc.ColorFormat == gputypes.TextureFormatUndefined {
		return invalid("no color format")
	}
	if desc.Vertex.Stage != StageVertex || desc.Fragment.Stage != StageFragment {
		return invalid("stage mismatch")
	}

	vs, err := CompileWith(l.compile, desc.Vertex)
	if err != nil {
		return invalid("vertex stage: %v", err)
	}
	fs, err := CompileWith(l.compile, desc.Fragment)
	if err != nil {
		return invalid("fragment stage: %v", err)
	}
	p.vertex, p.fragment = vs, fs
	return p
}

// Stats returns cache hits and misses.
func (l *Library) Stats() (hits, misses uint64) {
	return atomic.LoadUint64(&l.hits), atomic.LoadUint64(&l.misses)
}

// Len returns the number of cached pipelines, valid or not.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.pipelines)
}

// Clear removes all cached pipelines and resets statistics.
func (l *Library) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pipelines = make(map[uint64]*Pipeline)
	atomic.StoreUint64(&l.hits, 0)
	atomic.StoreUint64(&l.misses, 0)
}

// hashPipelineDescriptor computes an FNV-1a hash over every field that
// affects the built pipeline.
func hashPipelineDescriptor(desc *PipelineDescriptor) uint64 {
	h := fnv.New64a()
	hashWriteString(h, desc.Label)
	for _, s := range []Descriptor{desc.Vertex, desc.Fragment} {
		hashWriteString(h, s.Source)
		hashWriteString(h, s.entryPoint())
		hashWriteUint32(h, uint32(s.Stage))
	}

	//nolint:gosec // G115: layout count is bounded by GPU limits (< 16)
	hashWriteUint32(h, uint32(len(desc.VertexLayouts)))
	for i := range desc.VertexLayouts {
		layout := &desc.VertexLayouts[i]
		hashWriteUint64(h, layout.Stride)
		hashWriteUint32(h, uint32(layout.StepMode))
		//nolint:gosec // G115: attribute count is bounded by GPU limits (< 32)
		hashWriteUint32(h, uint32(len(layout.Attributes)))
		for j := range layout.Attributes {
			attr := &layout.Attributes[j]
			hashWriteUint32(h, attr.Location)
			hashWriteUint32(h, uint32(attr.Format))
			hashWriteUint64(h, attr.Offset)
		}
	}

	hashWriteUint32(h, uint32(desc.Topology))
	hashWriteUint32(h, uint32(desc.FrontFace))
	hashWriteUint32(h, uint32(desc.CullMode))
	hashWriteUint32(h, uint32(desc.ColorFormat))
	hashWriteUint32(h, uint32(desc.DepthFormat))
	hashWriteUint32(h, desc.SampleCount)
	return h.Sum64()
}

func hashWriteUint32(h hash.Hash64, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, _ = h.Write(buf[:])
}

func hashWriteUint64(h hash.Hash64, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = h.Write(buf[:])
}

func hashWriteString(h hash.Hash64, s string) {
	hashWriteUint32(h, uint32(len(s))) //nolint:gosec // G115: shader sources are far below 4 GiB
	_, _ = h.Write([]byte(s))
}
