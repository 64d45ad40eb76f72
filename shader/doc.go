// Package shader compiles WGSL shader stages and caches render pipelines.
//
// Shaders are validated and translated to SPIR-V with naga:
//
//	mod, err := shader.Compile(shader.Descriptor{
//		Label:  "quad.vert",
//		Stage:  shader.StageVertex,
//		Source: quadWGSL,
//	})
//
// A Library builds pipelines from descriptors and keeps them by descriptor
// hash. A pipeline whose stages fail to compile is still returned so that
// callers can inspect it, but IsValid reports false and GetPipeline returns
// an error wrapping ErrInvalidPipeline.
//
// Library is safe for concurrent use.
package shader
