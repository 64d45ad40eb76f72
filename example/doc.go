// Package example hosts runnable rendering examples.
//
// An example receives everything it needs from the host: a Context built
// once per session and a Frame built once per displayed frame. Examples
// never create devices, allocators or loaders themselves, and they keep no
// package-level mutable state; tweakable parameters arrive in Frame.Params.
//
// Examples register themselves from init, following the database/sql
// driver pattern:
//
//	import _ "github.com/gogpu/aiks/example/clip"
//
//	ex, err := example.New("clip")
//	if err != nil {
//	    return err
//	}
//	if err := ex.Setup(ctx); err != nil {
//	    return err
//	}
//	err = ex.Render(ctx, frame)
package example
