package asset

import "errors"

var (
	// ErrNotImage is returned when a file's content is not a known image format.
	ErrNotImage = errors.New("asset: not an image")

	// ErrCubeFaceSize is returned when cube map faces are not square or differ in size.
	ErrCubeFaceSize = errors.New("asset: cube faces must be square and equally sized")

	// ErrInvalidMesh is returned when a mesh description fails validation.
	ErrInvalidMesh = errors.New("asset: invalid mesh")

	// ErrDestroyed is returned when a destroyed texture is used.
	ErrDestroyed = errors.New("asset: texture destroyed")
)
