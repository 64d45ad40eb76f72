package aiks

import "errors"

var (
	// ErrRestoreUnderflow is returned by Restore and RestoreToCount when the
	// state stack is already at its base depth.
	ErrRestoreUnderflow = errors.New("aiks: restore without matching save")

	// ErrCanvasFinalized is returned when a canvas is used after
	// EndRecordingAsPicture.
	ErrCanvasFinalized = errors.New("aiks: canvas already finalized")
)
