package asset

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/bmp"
)

// writePNG writes a w x h image filled with c to dir/name.
func writePNG(t *testing.T, dir, name string, w, h int, c color.RGBA) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestLoader(t *testing.T, dir string) *Loader {
	t.Helper()
	l, err := NewLoader(WithRoot(dir), WithCacheSize(4))
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}
	return l
}

func TestLoadTexture(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "noise.png", 8, 4, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	l := newTestLoader(t, dir)

	tex, err := l.LoadTexture("noise.png")
	if err != nil {
		t.Fatalf("LoadTexture() error = %v", err)
	}
	if tex.Width() != 8 || tex.Height() != 4 {
		t.Errorf("size = %dx%d, want 8x4", tex.Width(), tex.Height())
	}
	if tex.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", tex.Format())
	}
	if tex.IsCube() {
		t.Error("IsCube() = true, want false")
	}
	if got := tex.Image(0).RGBAAt(3, 2); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("pixel = %v, want {10 20 30 255}", got)
	}
	if tex.Label() != "noise.png" {
		t.Errorf("Label() = %q, want %q", tex.Label(), "noise.png")
	}
	desc := tex.Descriptor()
	if desc.Depth != 1 || desc.Dimension != gputypes.TextureViewDimension2D {
		t.Errorf("Descriptor() depth %d dim %v, want 1 2D", desc.Depth, desc.Dimension)
	}
}

func TestLoadTextureCache(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "a.png", 2, 2, color.RGBA{A: 255})
	l := newTestLoader(t, dir)

	first, err := l.LoadTexture("a.png")
	if err != nil {
		t.Fatal(err)
	}
	second, err := l.LoadTexture("a.png")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("second load did not hit the cache")
	}
	if l.CacheLen() != 1 {
		t.Errorf("CacheLen() = %d, want 1", l.CacheLen())
	}

	first.Destroy()
	if first.Image(0) != nil {
		t.Error("Image() after Destroy should be nil")
	}
	third, err := l.LoadTexture("a.png")
	if err != nil {
		t.Fatal(err)
	}
	if third == first {
		t.Error("destroyed texture returned from cache")
	}

	l.Purge()
	if l.CacheLen() != 0 {
		t.Errorf("CacheLen() after Purge = %d, want 0", l.CacheLen())
	}
}

func TestLoadTextureBMP(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.SetRGBA(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, "dot.bmp"))
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tex, err := newTestLoader(t, dir).LoadTexture("dot.bmp")
	if err != nil {
		t.Fatalf("LoadTexture(bmp) error = %v", err)
	}
	if got := tex.Image(0).RGBAAt(1, 1); got.R != 255 || got.G != 0 {
		t.Errorf("pixel = %v, want red", got)
	}
}

func TestLoadTextureErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("plain text, not pixels"), 0o600); err != nil {
		t.Fatal(err)
	}
	l := newTestLoader(t, dir)

	if _, err := l.LoadTexture("notes.txt"); !errors.Is(err, ErrNotImage) {
		t.Errorf("LoadTexture(txt) error = %v, want ErrNotImage", err)
	}
	if _, err := l.LoadTexture("missing.png"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadTexture(missing) error = %v, want os.ErrNotExist", err)
	}
}

func cubeFaces(t *testing.T, dir string, size func(i int) (int, int)) [6]string {
	t.Helper()
	var faces [6]string
	for i, name := range []string{"px", "nx", "py", "ny", "pz", "nz"} {
		w, h := size(i)
		writePNG(t, dir, name+".png", w, h, color.RGBA{G: uint8(i * 40), A: 255})
		faces[i] = name + ".png"
	}
	return faces
}

func TestLoadTextureCube(t *testing.T) {
	dir := t.TempDir()
	faces := cubeFaces(t, dir, func(int) (int, int) { return 4, 4 })
	l := newTestLoader(t, dir)

	tex, err := l.LoadTextureCube(faces)
	if err != nil {
		t.Fatalf("LoadTextureCube() error = %v", err)
	}
	if !tex.IsCube() || tex.Faces() != 6 {
		t.Fatalf("Faces() = %d, want 6", tex.Faces())
	}
	for i := 0; i < 6; i++ {
		if got := tex.Image(i).RGBAAt(0, 0).G; got != uint8(i*40) {
			t.Errorf("face %d G = %d, want %d", i, got, i*40)
		}
	}
	desc := tex.Descriptor()
	if desc.Depth != 6 || desc.Dimension != gputypes.TextureViewDimensionCube {
		t.Errorf("Descriptor() depth %d dim %v, want 6 Cube", desc.Depth, desc.Dimension)
	}
	again, err := l.LoadTextureCube(faces)
	if err != nil {
		t.Fatal(err)
	}
	if again != tex {
		t.Error("second cube load did not hit the cache")
	}
}

func TestLoadTextureCubeSizeMismatch(t *testing.T) {
	tests := []struct {
		name string
		size func(i int) (int, int)
	}{
		{"not square", func(int) (int, int) { return 4, 2 }},
		{"differing faces", func(i int) (int, int) {
			if i == 3 {
				return 8, 8
			}
			return 4, 4
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			faces := cubeFaces(t, dir, tt.size)
			_, err := newTestLoader(t, dir).LoadTextureCube(faces)
			if !errors.Is(err, ErrCubeFaceSize) {
				t.Errorf("LoadTextureCube() error = %v, want ErrCubeFaceSize", err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	l := newTestLoader(t, "fixtures")
	if got := l.Resolve("a.png"); got != filepath.Join("fixtures", "a.png") {
		t.Errorf("Resolve(rel) = %q", got)
	}
	abs := filepath.Join(string(filepath.Separator), "tmp", "a.png")
	if got := l.Resolve(abs); got != abs {
		t.Errorf("Resolve(abs) = %q, want %q", got, abs)
	}
}

func TestToRGBAOffsetOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 8))
	src.SetRGBA(5, 5, color.RGBA{B: 200, A: 255})
	got := toRGBA(src)
	if got.Bounds() != image.Rect(0, 0, 2, 3) {
		t.Errorf("Bounds() = %v, want (0,0)-(2,3)", got.Bounds())
	}
	if got.RGBAAt(0, 0).B != 200 {
		t.Errorf("origin pixel = %v, want B=200", got.RGBAAt(0, 0))
	}
}

func TestNewTextureFromImage(t *testing.T) {
	pal := image.NewPaletted(image.Rect(0, 0, 3, 2), color.Palette{
		color.RGBA{A: 255},
		color.RGBA{R: 255, A: 255},
	})
	pal.SetColorIndex(2, 1, 1)

	tex := NewTextureFromImage("palette", pal)
	if tex.Label() != "palette" {
		t.Errorf("Label() = %q, want %q", tex.Label(), "palette")
	}
	if tex.Width() != 3 || tex.Height() != 2 {
		t.Errorf("size = %dx%d, want 3x2", tex.Width(), tex.Height())
	}
	if tex.IsCube() || tex.Faces() != 1 {
		t.Errorf("Faces() = %d, IsCube() = %v, want 1 face", tex.Faces(), tex.IsCube())
	}
	if got := tex.Image(0).RGBAAt(2, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel (2,1) = %v, want red", got)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if got := NewTextureFromImage("rgba", rgba).Image(0); got != rgba {
		t.Error("NewTextureFromImage copied an RGBA image at the origin")
	}
}
