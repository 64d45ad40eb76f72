package asset

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// VertexStride is the size in bytes of one packed Vertex.
const VertexStride = (3 + 3 + 4) * 4

// Vertex is one mesh vertex.
type Vertex struct {
	Position [3]float32 `yaml:"position"`
	Normal   [3]float32 `yaml:"normal"`
	Color    [4]float32 `yaml:"color"`
}

// UnmarshalYAML decodes a vertex. A vertex without a color key is opaque
// white.
func (v *Vertex) UnmarshalYAML(node *yaml.Node) error {
	type plain Vertex
	p := plain{Color: [4]float32{1, 1, 1, 1}}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*v = Vertex(p)
	return nil
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Label    string   `yaml:"label"`
	Vertices []Vertex `yaml:"vertices"`
	Indices  []uint16 `yaml:"indices"`
}

// LoadMesh reads a YAML mesh description from name.
func (l *Loader) LoadMesh(name string) (*Mesh, error) {
	path := l.Resolve(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("asset: read %s: %w", path, err)
	}
	m, err := ParseMesh(data)
	if err != nil {
		return nil, fmt.Errorf("asset: %s: %w", path, err)
	}
	return m, nil
}

// ParseMesh decodes and validates a YAML mesh description.
func ParseMesh(data []byte) (*Mesh, error) {
	var m Mesh
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse mesh: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that the mesh is a well-formed indexed triangle list.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("%w: no vertices", ErrInvalidMesh)
	}
	if len(m.Vertices) > math.MaxUint16+1 {
		return fmt.Errorf("%w: %d vertices exceed uint16 indexing", ErrInvalidMesh, len(m.Vertices))
	}
	if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a positive multiple of 3", ErrInvalidMesh, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("%w: index %d at %d out of range [0,%d)", ErrInvalidMesh, idx, i, len(m.Vertices))
		}
	}
	return nil
}

// VertexBytes packs the vertices as little-endian float32s,
// VertexStride bytes per vertex.
func (m *Mesh) VertexBytes() []byte {
	buf := make([]byte, 0, len(m.Vertices)*VertexStride)
	for _, v := range m.Vertices {
		buf = appendFloats(buf, v.Position[:])
		buf = appendFloats(buf, v.Normal[:])
		buf = appendFloats(buf, v.Color[:])
	}
	return buf
}

// IndexBytes packs the indices as little-endian uint16s.
func (m *Mesh) IndexBytes() []byte {
	buf := make([]byte, 0, len(m.Indices)*2)
	for _, idx := range m.Indices {
		buf = binary.LittleEndian.AppendUint16(buf, idx)
	}
	return buf
}

func appendFloats(buf []byte, fs []float32) []byte {
	for _, f := range fs {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}
