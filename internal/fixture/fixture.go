// Package fixture writes test assets and provides a stand-in shader
// compiler for tests that must not depend on a real WGSL toolchain.
package fixture

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// Compile returns a minimal SPIR-V header for any source. It matches
// shader.CompileFunc.
func Compile(source string) ([]byte, error) {
	buf := make([]byte, 0, 20)
	for _, w := range []uint32{spirvMagic, 0x00010300, 0, uint32(len(source)), 0} { //nolint:gosec // test sources are small
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return buf, nil
}

// WritePNG writes a w x h PNG to dir/name with pixels from fill and
// returns its path.
func WritePNG(tb testing.TB, dir, name string, w, h int, fill func(x, y int) color.RGBA) string {
	tb.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, fill(x, y))
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		tb.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		tb.Fatal(err)
	}
	return path
}

// Noise fills with a deterministic hash pattern.
func Noise(x, y int) color.RGBA {
	v := uint8((x*73 + y*151) * 2654435761 >> 24) //nolint:gosec // wraparound intended
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

// WriteCube writes six size x size faces to dir, one per name, each a
// solid color distinct from the others.
func WriteCube(tb testing.TB, dir string, names [6]string, size int) {
	tb.Helper()
	for i, name := range names {
		c := color.RGBA{R: uint8(i * 40), G: 128, B: uint8(255 - i*40), A: 255} //nolint:gosec // i < 6
		WritePNG(tb, dir, name, size, size, func(int, int) color.RGBA { return c })
	}
}

// WriteFile writes data to dir/name and returns its path.
func WriteFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		tb.Fatal(err)
	}
	return path
}
