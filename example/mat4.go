package example

import (
	"encoding/binary"

	"github.com/chewxy/math32"
)

// Mat4 is a column-major 4x4 float32 matrix, laid out as WGSL mat4x4<f32>.
// Element (row r, column c) is m[c*4+r].
type Mat4 [16]float32

// Identity4 returns the identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation4 returns a translation by (x, y, z).
func Translation4(x, y, z float32) Mat4 {
	m := Identity4()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale4 returns a scale by (x, y, z).
func Scale4(x, y, z float32) Mat4 {
	m := Identity4()
	m[0], m[5], m[10] = x, y, z
	return m
}

// RotationX returns a rotation of r radians about the X axis.
func RotationX(r float32) Mat4 {
	s, c := math32.Sincos(r)
	m := Identity4()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

// RotationY returns a rotation of r radians about the Y axis.
func RotationY(r float32) Mat4 {
	s, c := math32.Sincos(r)
	m := Identity4()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// RotationZ returns a rotation of r radians about the Z axis.
func RotationZ(r float32) Mat4 {
	s, c := math32.Sincos(r)
	m := Identity4()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// Orthographic maps pixel coordinates of a width x height target to clip
// space: the top-left corner to (-1, 1) and the bottom-right to (1, -1),
// with depth fixed at 0.5.
func Orthographic(width, height float32) Mat4 {
	return Translation4(-1, 1, 0.5).Mul(Scale4(2/width, -2/height, 0))
}

// Perspective returns a right-handed perspective projection with a
// vertical field of view of fovY radians.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	h := math32.Tan(fovY / 2)
	w := h * aspect
	return Mat4{
		1 / w, 0, 0, 0,
		0, 1 / h, 0, 0,
		0, 0, far / (near - far), -1,
		0, 0, far * near / (near - far), 0,
	}
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Mul returns m * o, applying o first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for c := 0; c < 4; c++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * o[c*4+k]
			}
			r[c*4+row] = sum
		}
	}
	return r
}

// Transform applies m to the point (x, y, z, 1) and returns the
// homogeneous result.
func (m Mat4) Transform(x, y, z float32) [4]float32 {
	var out [4]float32
	for row := 0; row < 4; row++ {
		out[row] = m[row]*x + m[4+row]*y + m[8+row]*z + m[12+row]
	}
	return out
}

// Bytes returns m as 64 little-endian bytes for a uniform buffer.
func (m Mat4) Bytes() []byte {
	return Float32Bytes(m[:]...)
}

// Float32Bytes packs fs as little-endian float32s for a vertex or uniform
// buffer.
func Float32Bytes(fs ...float32) []byte {
	buf := make([]byte, 0, len(fs)*4)
	for _, f := range fs {
		buf = binary.LittleEndian.AppendUint32(buf, math32.Float32bits(f))
	}
	return buf
}
