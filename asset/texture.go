package asset

import (
	"image"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/aiks/render"
)

// Texture is decoded RGBA image data with one layer per face.
// A 2D texture has one face; a cube map has six.
type Texture struct {
	label string
	faces []*image.RGBA
	dead  atomic.Bool
}

// Ensure Texture implements render.Texture.
var _ render.Texture = (*Texture)(nil)

func newTexture(label string, faces []*image.RGBA) *Texture {
	return &Texture{label: label, faces: faces}
}

// NewTextureFromImage wraps img as a 2D texture.
func NewTextureFromImage(label string, img image.Image) *Texture {
	return newTexture(label, []*image.RGBA{toRGBA(img)})
}

// Label returns the texture's debug label.
func (t *Texture) Label() string { return t.label }

// Width returns the face width in pixels.
func (t *Texture) Width() uint32 { return uint32(t.faces[0].Bounds().Dx()) } //nolint:gosec // image sizes fit uint32

// Height returns the face height in pixels.
func (t *Texture) Height() uint32 { return uint32(t.faces[0].Bounds().Dy()) } //nolint:gosec // image sizes fit uint32

// Format returns the pixel format of every face.
func (t *Texture) Format() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }

// Faces returns the number of layers.
func (t *Texture) Faces() int { return len(t.faces) }

// IsCube reports whether the texture is a cube map.
func (t *Texture) IsCube() bool { return len(t.faces) == 6 }

// Image returns face i, or nil if i is out of range or the texture was destroyed.
func (t *Texture) Image(i int) *image.RGBA {
	if t.destroyed() || i < 0 || i >= len(t.faces) {
		return nil
	}
	return t.faces[i]
}

// Descriptor returns a TextureDescriptor matching the texture's layout.
func (t *Texture) Descriptor() render.TextureDescriptor {
	desc := render.DefaultTextureDescriptor(t.Width(), t.Height(), t.Format())
	desc.Label = t.label
	desc.Usage = render.TextureUsageTextureBinding | render.TextureUsageCopyDst
	if t.IsCube() {
		desc.Depth = 6
		desc.Dimension = gputypes.TextureViewDimensionCube
	}
	return desc
}

// CreateView creates a view over every face.
func (t *Texture) CreateView() render.TextureView {
	return &textureView{tex: t}
}

// Destroy marks the texture unusable. Image returns nil afterwards and the
// loader decodes the file again on its next lookup.
func (t *Texture) Destroy() {
	t.dead.Store(true)
}

func (t *Texture) destroyed() bool {
	return t.dead.Load()
}

type textureView struct {
	tex *Texture
}

func (v *textureView) Destroy() {}

// toRGBA converts img to a zero-origin *image.RGBA, copying when needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}
