package shader

import (
	"encoding/binary"
	"errors"
	"testing"
)

const triangleWGSL = `
@vertex
fn vs_main(@builtin(vertex_index) i: u32) -> @builtin(position) vec4<f32> {
    let x = f32(i);
    return vec4<f32>(x, 0.0, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

// fakeSPIRV returns a minimal module header.
func fakeSPIRV(string) ([]byte, error) {
	b := make([]byte, 20)
	binary.LittleEndian.PutUint32(b, spirvMagic)
	binary.LittleEndian.PutUint32(b[4:], 0x00010000)
	return b, nil
}

var errSyntax = errors.New("syntax error")

func failingCompiler(string) ([]byte, error) {
	return nil, errSyntax
}

func TestCompileWithNaga(t *testing.T) {
	mod, err := Compile(Descriptor{Label: "triangle.vert", Source: triangleWGSL, Stage: StageVertex})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if len(mod.SPIRV) == 0 || mod.SPIRV[0] != spirvMagic {
		t.Errorf("SPIRV = %d words, want module starting with %#x", len(mod.SPIRV), spirvMagic)
	}
	if mod.EntryPoint != "vs_main" {
		t.Errorf("EntryPoint = %q, want vs_main", mod.EntryPoint)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name    string
		compile CompileFunc
		desc    Descriptor
		want    error
	}{
		{"empty source", fakeSPIRV, Descriptor{Source: "  \n"}, ErrEmptySource},
		{"missing entry", fakeSPIRV, Descriptor{Source: triangleWGSL, EntryPoint: "main"}, ErrMissingEntryPoint},
		{"compiler error", failingCompiler, Descriptor{Source: triangleWGSL}, errSyntax},
		{"short output", func(string) ([]byte, error) { return []byte{1, 2}, nil }, Descriptor{Source: triangleWGSL}, ErrInvalidSPIRV},
		{"bad magic", func(string) ([]byte, error) { return make([]byte, 8), nil }, Descriptor{Source: triangleWGSL}, ErrInvalidSPIRV},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CompileWith(tt.compile, tt.desc); !errors.Is(err, tt.want) {
				t.Errorf("CompileWith() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCompileEntryPoints(t *testing.T) {
	frag, err := CompileWith(fakeSPIRV, Descriptor{Source: triangleWGSL, Stage: StageFragment})
	if err != nil {
		t.Fatal(err)
	}
	if frag.EntryPoint != "fs_main" || frag.Stage != StageFragment {
		t.Errorf("module = %+v, want fs_main fragment", frag)
	}
	if frag.SPIRV[1] != 0x00010000 {
		t.Errorf("SPIRV[1] = %#x, want little-endian version word", frag.SPIRV[1])
	}
}

func TestDeclaresFunction(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"fn vs_main() {}", true},
		{"fn  vs_main (x: f32) {}", true},
		{"fn vs_main_alt() {}", false},
		{"// vs_main", false},
	}
	for _, tt := range tests {
		if got := declaresFunction(tt.src, "vs_main"); got != tt.want {
			t.Errorf("declaresFunction(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestStageString(t *testing.T) {
	if StageVertex.String() != "vertex" || StageFragment.String() != "fragment" || Stage(7).String() != "unknown" {
		t.Error("Stage.String() mismatch")
	}
}
