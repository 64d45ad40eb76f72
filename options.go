package aiks

// CanvasOption configures a Canvas during creation.
//
//	canvas := aiks.NewCanvas(
//		aiks.WithCullRect(aiks.MakeSize(800, 600)),
//		aiks.WithInitialTransform(aiks.ScaleMatrix(2, 2)),
//	)
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	transform Matrix
	cull      Rect
	hasCull   bool
}

func defaultCanvasOptions() canvasOptions {
	return canvasOptions{transform: Identity()}
}

// WithInitialTransform sets the base transform, for example a content
// scale. Restore never goes below it.
func WithInitialTransform(m Matrix) CanvasOption {
	return func(o *canvasOptions) {
		o.transform = m
	}
}

// WithCullRect restricts every draw to r, given in device space. It
// behaves as an intersect clip that is part of the base state.
func WithCullRect(r Rect) CanvasOption {
	return func(o *canvasOptions) {
		o.cull = r
		o.hasCull = true
	}
}
