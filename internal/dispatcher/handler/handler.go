// Package handler provides the handler interface and result types for
// command dispatch.
package handler

import (
	"github.com/dshills/kbdwrap/internal/kbd"
)

// Handler runs one command against an editor.
type Handler interface {
	// Handle executes the command and returns a result.
	Handle(ed kbd.Editor) Result
}

// HandlerFunc is a function adapter for the Handler interface.
type HandlerFunc struct {
	fn func(ed kbd.Editor) Result
}

// NewHandlerFunc creates a HandlerFunc from a function.
func NewHandlerFunc(fn func(ed kbd.Editor) Result) *HandlerFunc {
	return &HandlerFunc{fn: fn}
}

// Handle implements Handler.Handle.
func (f *HandlerFunc) Handle(ed kbd.Editor) Result {
	if f.fn == nil {
		return Errorf("handler function is nil")
	}
	return f.fn(ed)
}

// KbdToggle is the handler for the wrap-selection command.
type KbdToggle struct{}

// Handle toggles <kbd> markup around every selection of ed. It reports
// StatusNoOp when no selection produced an edit.
func (KbdToggle) Handle(ed kbd.Editor) Result {
	if ed == nil {
		return Errorf("no active editor")
	}

	res := kbd.ToggleEditor(ed)
	if !res.Acted {
		return NoOp()
	}
	return Success().
		WithEdits(res.Edits).
		WithData("dropped", res.Dropped)
}
