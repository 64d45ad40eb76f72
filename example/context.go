package example

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/aiks"
	"github.com/gogpu/aiks/asset"
	"github.com/gogpu/aiks/render"
	"github.com/gogpu/aiks/shader"
)

// Context holds the long-lived services the host supplies to an example.
type Context struct {
	// Device is the host's GPU device. It is a NullDeviceHandle when
	// rendering on the CPU.
	Device render.DeviceHandle

	// Renderer plays recorded pictures back onto frame targets.
	Renderer render.Renderer

	// Allocator creates vertex, index and uniform buffers.
	Allocator render.BufferAllocator

	// Assets loads textures and meshes.
	Assets *asset.Loader

	// Shaders builds and caches render pipelines.
	Shaders *shader.Library

	// ColorFormat is the format of the targets frames are rendered to.
	ColorFormat gputypes.TextureFormat

	// Params are the parameters the session was started with. Setup reads
	// them; Render reads Frame.Params, which the host may reload.
	Params *Params

	// Logger receives example diagnostics.
	Logger *slog.Logger
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithDevice sets the device handle.
func WithDevice(d render.DeviceHandle) ContextOption {
	return func(c *Context) { c.Device = d }
}

// WithRenderer sets the picture renderer.
func WithRenderer(r render.Renderer) ContextOption {
	return func(c *Context) { c.Renderer = r }
}

// WithAllocator sets the buffer allocator.
func WithAllocator(a render.BufferAllocator) ContextOption {
	return func(c *Context) { c.Allocator = a }
}

// WithAssets sets the asset loader.
func WithAssets(l *asset.Loader) ContextOption {
	return func(c *Context) { c.Assets = l }
}

// WithShaders sets the pipeline library.
func WithShaders(l *shader.Library) ContextOption {
	return func(c *Context) { c.Shaders = l }
}

// WithParams sets the session parameters.
func WithParams(p *Params) ContextOption {
	return func(c *Context) { c.Params = p }
}

// WithLogger sets the example logger.
func WithLogger(l *slog.Logger) ContextOption {
	return func(c *Context) { c.Logger = l }
}

// NewContext builds a Context, filling every service not supplied by an
// option with a CPU default: a null device, a SoftwareRenderer, an
// unlimited HostAllocator, a Loader rooted at Params.Assets and a naga
// backed Library.
func NewContext(opts ...ContextOption) (*Context, error) {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}

	if c.Params == nil {
		p := DefaultParams()
		c.Params = &p
	}
	if c.Device == nil {
		c.Device = render.NullDeviceHandle{}
	}
	if c.Renderer == nil {
		c.Renderer = render.NewSoftwareRenderer()
	}
	if c.Allocator == nil {
		c.Allocator = render.NewHostAllocator(0)
	}
	if c.Assets == nil {
		l, err := asset.NewLoader(asset.WithRoot(c.Params.Assets))
		if err != nil {
			return nil, fmt.Errorf("example: %w", err)
		}
		c.Assets = l
	}
	if c.Shaders == nil {
		c.Shaders = shader.NewLibrary()
	}
	if c.ColorFormat == gputypes.TextureFormatUndefined {
		c.ColorFormat = c.Device.SurfaceFormat()
	}
	if c.ColorFormat == gputypes.TextureFormatUndefined {
		c.ColorFormat = gputypes.TextureFormatRGBA8Unorm
	}
	if c.Logger == nil {
		c.Logger = aiks.Logger()
	}
	return c, nil
}

// Frame is the per-frame state handed to Example.Render.
type Frame struct {
	// Index counts frames from zero.
	Index int

	// Target is the surface to render into.
	Target render.RenderTarget

	// Commands collects raw draw commands for the frame. The host submits
	// it after Render returns.
	Commands *render.CommandBuffer

	// Params are the current demo parameters.
	Params Params

	// Time is the time since the first frame; Delta the time since the
	// previous one.
	Time  time.Duration
	Delta time.Duration
}

// Seconds returns Time in seconds, as shaders consume it.
func (f *Frame) Seconds() float32 {
	return float32(f.Time.Seconds())
}

// Size returns the target size in pixels.
func (f *Frame) Size() (width, height int) {
	return f.Target.Width(), f.Target.Height()
}
