package example

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/aiks"
)

// ErrInvalidParams is returned when parameters are out of range.
var ErrInvalidParams = errors.New("example: invalid params")

// MaxScale is the largest accepted Params.Scale.
const MaxScale = 6

// Params are the tweakable demo parameters. They are owned by the host.
type Params struct {
	// Color is the stroke color of the join/cap grid.
	Color aiks.RGBA `toml:"color"`

	// Scale is the canvas scale of the join/cap grid, in [0, MaxScale].
	Scale float64 `toml:"scale"`

	// CircleClip clips the join/cap grid to a circle.
	CircleClip bool `toml:"circle_clip"`

	// StrokeWidth is the stroke width of the join/cap grid.
	StrokeWidth float64 `toml:"stroke_width"`

	// Background is the color frames are cleared to.
	Background aiks.RGBA `toml:"background"`

	// Assets is the directory textures and meshes are loaded from.
	Assets string `toml:"assets"`

	// Mesh is the mesh file, relative to Assets.
	Mesh string `toml:"mesh"`
}

// DefaultParams returns the parameters examples start with.
func DefaultParams() Params {
	return Params{
		Color:       aiks.Black.WithAlpha(0.5),
		Scale:       3,
		CircleClip:  true,
		StrokeWidth: 10,
		Background:  aiks.White,
		Assets:      "assets",
		Mesh:        "cube.yaml",
	}
}

// Validate reports whether p is usable.
func (p Params) Validate() error {
	switch {
	case p.Scale < 0 || p.Scale > MaxScale:
		return fmt.Errorf("%w: scale %v outside [0, %d]", ErrInvalidParams, p.Scale, MaxScale)
	case p.StrokeWidth < 0:
		return fmt.Errorf("%w: negative stroke width %v", ErrInvalidParams, p.StrokeWidth)
	}
	return nil
}

// DecodeParams reads TOML from r over the defaults. Keys missing from the
// input keep their default values; unknown keys are an error.
func DecodeParams(r io.Reader) (Params, error) {
	p := DefaultParams()
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Params{}, fmt.Errorf("example: decode params: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Params{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidParams, strings.Join(keys, ", "))
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// LoadParams reads a TOML parameter file.
func LoadParams(path string) (Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return Params{}, fmt.Errorf("example: %w", err)
	}
	defer f.Close()
	return DecodeParams(f)
}

// Encode writes p as TOML.
func (p Params) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("example: encode params: %w", err)
	}
	return nil
}

// SaveParams writes p to a TOML file.
func SaveParams(path string, p Params) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("example: %w", err)
	}
	if err := p.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
