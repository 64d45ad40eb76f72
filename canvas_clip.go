package aiks

// ClipPath restricts subsequent draws by path, mapped by the current
// transform. The default operation is ClipIntersect; pass ClipDifference
// to cut the path out instead. Clips accumulate in order until the
// Restore that pops the current state.
func (c *Canvas) ClipPath(path Path, op ...ClipOperation) {
	if c.rejected("ClipPath") {
		return
	}
	clipOp := ClipIntersect
	if len(op) > 0 {
		clipOp = op[0]
	}
	st := c.current()
	clips := st.Clips[:len(st.Clips):len(st.Clips)]
	st.Clips = append(clips, Clip{Path: path.Transform(st.Transform), Op: clipOp})
	c.record(ClipPathOp{Path: path, Op: clipOp, State: c.snapshot()})
}

// ClipRect is ClipPath with a rectangle.
func (c *Canvas) ClipRect(r Rect, op ...ClipOperation) {
	c.ClipPath(NewPathBuilder().AddRect(r).TakePath(), op...)
}

// ClipCircle is ClipPath with a circle.
func (c *Canvas) ClipCircle(center Point, radius float64, op ...ClipOperation) {
	c.ClipPath(NewPathBuilder().AddCircle(center, radius).TakePath(), op...)
}
