package engine

import (
	"errors"

	"github.com/dshills/kbdwrap/internal/engine/buffer"
	"github.com/dshills/kbdwrap/internal/engine/history"
)

// Errors returned by engine operations.
var (
	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = buffer.ErrRangeInvalid

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo

	// ErrSelectionOutOfRange indicates a selection refers to a line past the
	// end of the document.
	ErrSelectionOutOfRange = errors.New("selection out of range")
)
