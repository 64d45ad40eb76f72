package aiks

// OpKind identifies the variant of a recorded Operation.
type OpKind uint8

const (
	// State operations
	OpSave      OpKind = iota // Push of the transform/clip state
	OpRestore                 // Pop of the transform/clip state
	OpTransform               // Change of the current transform
	OpClipPath                // Addition to the current clip set

	// Draw operations
	OpDrawPaint // Fill of the whole surface
	OpDrawPath  // Fill or stroke of a path
	OpDrawRect  // Fill or stroke of an axis-aligned rectangle
)

var opKindNames = [...]string{
	OpSave:      "Save",
	OpRestore:   "Restore",
	OpTransform: "Transform",
	OpClipPath:  "ClipPath",
	OpDrawPaint: "DrawPaint",
	OpDrawPath:  "DrawPath",
	OpDrawRect:  "DrawRect",
}

func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "Unknown"
}

// IsDraw reports whether the kind produces pixels.
func (k OpKind) IsDraw() bool {
	return k >= OpDrawPaint && k <= OpDrawRect
}

// Operation is one recorded canvas command. The concrete types are
// SaveOp, RestoreOp, TransformOp, ClipPathOp, DrawPaintOp, DrawPathOp
// and DrawRectOp; consumers switch on them exhaustively.
//
// Operations are immutable once recorded. Slices reachable from an
// operation are shared with the Picture and must not be modified.
type Operation interface {
	Kind() OpKind
}

// ClipOperation selects how a clip path combines with the clip region
// accumulated before it.
type ClipOperation uint8

const (
	// ClipIntersect keeps only the area inside the path.
	ClipIntersect ClipOperation = iota
	// ClipDifference removes the area inside the path.
	ClipDifference
)

func (o ClipOperation) String() string {
	switch o {
	case ClipIntersect:
		return "Intersect"
	case ClipDifference:
		return "Difference"
	}
	return "Unknown"
}

// Clip is one entry of a clip set. Path is in device space: it was
// transformed by the transform in effect when the clip was applied.
type Clip struct {
	Path Path
	Op   ClipOperation
}

// State is the transform and clip set in effect for an operation.
// The clip set is evaluated in order, starting from the whole surface.
type State struct {
	Transform Matrix
	Clips     []Clip
}

// ClipBounds returns the device-space bounds the clip set restricts
// drawing to, and false when no intersect clip limits it.
func (s State) ClipBounds() (Rect, bool) {
	var (
		r       Rect
		bounded bool
	)
	for _, c := range s.Clips {
		if c.Op != ClipIntersect {
			continue
		}
		b := c.Path.Bounds()
		if bounded {
			b = r.Intersect(b)
		}
		r, bounded = b, true
	}
	return r, bounded
}

// SaveOp records a Save. Depth is the save count after the push.
type SaveOp struct {
	Depth int
}

// RestoreOp records a Restore. Depth is the save count after the pop.
type RestoreOp struct {
	Depth int
}

// TransformOp records a transform change. Delta is the matrix that was
// concatenated, or the replacement for ResetTransform; Result is the
// current transform afterwards.
type TransformOp struct {
	Delta  Matrix
	Result Matrix
}

// ClipPathOp records a clip. Path is in local coordinates; State holds
// the transform used to map it and the clip set after the addition.
type ClipPathOp struct {
	Path Path
	Op   ClipOperation
	State
}

// DrawPaintOp fills the whole surface, restricted by the clip set.
type DrawPaintOp struct {
	Paint Paint
	State
}

// DrawPathOp fills or strokes Path under State.
type DrawPathOp struct {
	Path  Path
	Paint Paint
	State
}

// DevicePath returns the path mapped to device space.
func (o DrawPathOp) DevicePath() Path {
	return o.Path.Transform(o.Transform)
}

// DrawRectOp fills or strokes Rect under State. It renders exactly as a
// DrawPathOp of the rectangle built with PathBuilder.AddRect.
type DrawRectOp struct {
	Rect  Rect
	Paint Paint
	State
}

// Path returns the rectangle as a path in local coordinates.
func (o DrawRectOp) Path() Path {
	return NewPathBuilder().AddRect(o.Rect).TakePath()
}

// DevicePath returns the rectangle path mapped to device space.
func (o DrawRectOp) DevicePath() Path {
	return o.Path().Transform(o.Transform)
}

// Kind implements Operation.
func (SaveOp) Kind() OpKind { return OpSave }

// Kind implements Operation.
func (RestoreOp) Kind() OpKind { return OpRestore }

// Kind implements Operation.
func (TransformOp) Kind() OpKind { return OpTransform }

// Kind implements Operation.
func (ClipPathOp) Kind() OpKind { return OpClipPath }

// Kind implements Operation.
func (DrawPaintOp) Kind() OpKind { return OpDrawPaint }

// Kind implements Operation.
func (DrawPathOp) Kind() OpKind { return OpDrawPath }

// Kind implements Operation.
func (DrawRectOp) Kind() OpKind { return OpDrawRect }
