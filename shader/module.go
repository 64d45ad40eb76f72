package shader

import (
	"errors"
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"

	"github.com/gogpu/naga"
)

// SPIR-V module magic number, first word of every module.
const spirvMagic = 0x07230203

var (
	// ErrEmptySource is returned when compiling a descriptor without WGSL.
	ErrEmptySource = errors.New("shader: empty source")

	// ErrMissingEntryPoint is returned when the entry point function is
	// not declared in the source.
	ErrMissingEntryPoint = errors.New("shader: entry point not found")

	// ErrInvalidSPIRV is returned when the compiler output is not a SPIR-V
	// module.
	ErrInvalidSPIRV = errors.New("shader: compiler produced invalid SPIR-V")

	// ErrInvalidPipeline is returned for pipelines that cannot be used.
	ErrInvalidPipeline = errors.New("shader: invalid pipeline")
)

// Stage is the pipeline stage a module runs in.
type Stage uint8

const (
	// StageVertex is the vertex stage.
	StageVertex Stage = iota
	// StageFragment is the fragment stage.
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return "unknown"
}

// defaultEntryPoint returns the conventional entry point of a stage.
func (s Stage) defaultEntryPoint() string {
	if s == StageFragment {
		return "fs_main"
	}
	return "vs_main"
}

// Descriptor describes one shader stage to compile.
type Descriptor struct {
	// Label is an optional debug name.
	Label string

	// Source is the WGSL source code.
	Source string

	// Stage is the pipeline stage.
	Stage Stage

	// EntryPoint is the entry function. Defaults to "vs_main" or
	// "fs_main" depending on Stage.
	EntryPoint string
}

func (d Descriptor) entryPoint() string {
	if d.EntryPoint != "" {
		return d.EntryPoint
	}
	return d.Stage.defaultEntryPoint()
}

// Module is a compiled shader stage.
type Module struct {
	Label      string
	Stage      Stage
	EntryPoint string

	// SPIRV holds the compiled code as little-endian 32-bit words.
	SPIRV []uint32

	codeHash uint64
}

// CompileFunc translates WGSL source to SPIR-V bytes.
type CompileFunc func(source string) ([]byte, error)

// Compile validates and compiles desc with naga.
func Compile(desc Descriptor) (*Module, error) {
	return CompileWith(naga.Compile, desc)
}

// CompileWith validates desc and compiles it with compile.
func CompileWith(compile CompileFunc, desc Descriptor) (*Module, error) {
	if strings.TrimSpace(desc.Source) == "" {
		return nil, fmt.Errorf("shader: compile %q: %w", desc.Label, ErrEmptySource)
	}
	entry := desc.entryPoint()
	if !declaresFunction(desc.Source, entry) {
		return nil, fmt.Errorf("shader: compile %q: %s: %w", desc.Label, entry, ErrMissingEntryPoint)
	}

	spirvBytes, err := compile(desc.Source)
	if err != nil {
		return nil, fmt.Errorf("shader: compile %q: %w", desc.Label, err)
	}
	words, err := toWords(spirvBytes)
	if err != nil {
		return nil, fmt.Errorf("shader: compile %q: %w", desc.Label, err)
	}

	h := fnv.New64a()
	_, _ = h.Write(spirvBytes)
	return &Module{
		Label:      desc.Label,
		Stage:      desc.Stage,
		EntryPoint: entry,
		SPIRV:      words,
		codeHash:   h.Sum64(),
	}, nil
}

// toWords converts SPIR-V bytes to little-endian 32-bit words.
func toWords(b []byte) ([]uint32, error) {
	if len(b) < 4 || len(b)%4 != 0 {
		return nil, ErrInvalidSPIRV
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	if words[0] != spirvMagic {
		return nil, ErrInvalidSPIRV
	}
	return words, nil
}

// declaresFunction reports whether source declares a function named name.
func declaresFunction(source, name string) bool {
	re := regexp.MustCompile(`\bfn\s+` + regexp.QuoteMeta(name) + `\s*\(`)
	return re.MatchString(source)
}
