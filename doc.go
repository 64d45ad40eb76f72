// Package aiks records 2D drawing commands into immutable pictures.
//
// A [Canvas] accumulates draws, clips and transforms in program order and
// is finalized into a [Picture] with [Canvas.EndRecordingAsPicture]. The
// picture is then handed to a renderer (see the render package) that
// rasterizes it into a render target once per frame.
//
// # Paths
//
// Geometry is described by an immutable [Path] built with a [PathBuilder]:
//
//	path := aiks.NewPathBuilder().
//		MoveTo(aiks.Pt(20, 20)).
//		QuadraticCurveTo(aiks.Pt(60, 20), aiks.Pt(60, 60)).
//		Close().
//		MoveTo(aiks.Pt(60, 20)).
//		QuadraticCurveTo(aiks.Pt(60, 60), aiks.Pt(20, 60)).
//		TakePath()
//
// # Paint
//
// [Paint] is a value type. Each draw copies the paint it is given, so a
// single Paint variable can be mutated between draws:
//
//	paint := aiks.NewPaint()
//	paint.Style = aiks.StyleStroke
//	paint.StrokeWidth = 10
//	for _, join := range []aiks.Join{aiks.JoinBevel, aiks.JoinRound, aiks.JoinMiter} {
//		paint.StrokeJoin = join
//		canvas.DrawPath(path, paint)
//		canvas.Translate(aiks.Pt(80, 0))
//	}
//
// # State stack and clipping
//
// [Canvas.Save] pushes the current transform and clip set and
// [Canvas.Restore] pops them. Clips are intersect or difference
// operations evaluated in the order they were applied: a difference
// removes area from what earlier clips left, and nothing later adds it
// back. Every recorded draw carries its own copy of the transform and the
// clip set, so playback needs no stack at all.
//
// # Errors
//
// Recording misuse is reported, never silently absorbed: an unbalanced
// Restore returns [ErrRestoreUnderflow], and using a finalized canvas
// yields [ErrCanvasFinalized]. Malformed path command sequences are not
// errors; see [PathBuilder] for how they are resolved.
//
// # Thread safety
//
// A Canvas must be used from one goroutine. A Picture is immutable and can
// be shared freely.
package aiks
