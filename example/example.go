package example

// Info describes an example to the host.
type Info struct {
	Name        string
	Description string
}

// Example is a scene the host can set up once and render every frame.
//
// Setup acquires long-lived resources (textures, meshes, pipelines); a
// Setup error is fatal to the example. Render is called once per frame
// with fresh per-frame state and must be safe to call repeatedly; a Render
// error fails only that frame.
type Example interface {
	Info() Info
	Setup(ctx *Context) error
	Render(ctx *Context, frame *Frame) error
}
