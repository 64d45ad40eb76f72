package asset

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	// Registered decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/aiks"
	"github.com/h2non/filetype"
	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize is the number of decoded textures kept by a Loader.
const DefaultCacheSize = 32

// LoaderOption configures a Loader.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	root      string
	cacheSize int
}

// WithRoot resolves relative asset paths against dir.
func WithRoot(dir string) LoaderOption {
	return func(o *loaderOptions) {
		o.root = dir
	}
}

// WithCacheSize sets how many decoded textures are retained.
// Values <= 0 select DefaultCacheSize.
func WithCacheSize(n int) LoaderOption {
	return func(o *loaderOptions) {
		o.cacheSize = n
	}
}

// Loader reads textures and meshes from disk.
// It is safe for concurrent use.
type Loader struct {
	root  string
	cache *lru.Cache
}

// NewLoader creates a Loader with the given options.
func NewLoader(opts ...LoaderOption) (*Loader, error) {
	o := loaderOptions{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cacheSize <= 0 {
		o.cacheSize = DefaultCacheSize
	}

	cache, err := lru.New(o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("asset: create cache: %w", err)
	}
	return &Loader{root: o.root, cache: cache}, nil
}

// Root returns the directory relative paths are resolved against.
func (l *Loader) Root() string {
	return l.root
}

// Resolve returns the filesystem path for name.
func (l *Loader) Resolve(name string) string {
	if l.root == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.root, name)
}

// CacheLen returns the number of cached textures.
func (l *Loader) CacheLen() int {
	return l.cache.Len()
}

// Purge drops every cached texture.
func (l *Loader) Purge() {
	l.cache.Purge()
}

// LoadTexture loads a 2D texture from name.
func (l *Loader) LoadTexture(name string) (*Texture, error) {
	path := l.Resolve(name)
	key := "2d:" + path
	if v, ok := l.cache.Get(key); ok {
		if tex := v.(*Texture); !tex.destroyed() {
			return tex, nil
		}
	}

	img, err := l.decode(path)
	if err != nil {
		return nil, err
	}
	tex := NewTextureFromImage(filepath.Base(path), img)
	l.cache.Add(key, tex)

	aiks.Logger().Debug("asset: texture loaded",
		"path", path, "width", tex.Width(), "height", tex.Height())
	return tex, nil
}

// LoadTextureCube loads a cube map from six face images ordered
// +X, -X, +Y, -Y, +Z, -Z. Every face must be square and the same size.
func (l *Loader) LoadTextureCube(faces [6]string) (*Texture, error) {
	paths := make([]string, len(faces))
	for i, f := range faces {
		paths[i] = l.Resolve(f)
	}
	key := "cube:" + strings.Join(paths, "|")
	if v, ok := l.cache.Get(key); ok {
		if tex := v.(*Texture); !tex.destroyed() {
			return tex, nil
		}
	}

	imgs := make([]*image.RGBA, len(paths))
	for i, path := range paths {
		img, err := l.decode(path)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		if b.Dx() != b.Dy() {
			return nil, fmt.Errorf("asset: %s is %dx%d: %w", path, b.Dx(), b.Dy(), ErrCubeFaceSize)
		}
		if i > 0 && b.Size() != imgs[0].Bounds().Size() {
			return nil, fmt.Errorf("asset: %s is %dx%d, first face is %v: %w",
				path, b.Dx(), b.Dy(), imgs[0].Bounds().Size(), ErrCubeFaceSize)
		}
		imgs[i] = img
	}

	tex := newTexture(filepath.Base(paths[0]), imgs)
	l.cache.Add(key, tex)

	aiks.Logger().Debug("asset: cube texture loaded",
		"first", paths[0], "size", tex.Width())
	return tex, nil
}

func (l *Loader) decode(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("asset: read %s: %w", path, err)
	}
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("asset: %s has type %q: %w", path, kind.MIME.Value, ErrNotImage)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("asset: decode %s: %w", path, err)
	}
	return toRGBA(img), nil
}
