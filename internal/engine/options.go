package engine

import (
	"github.com/dshills/kbdwrap/internal/engine/buffer"
	"github.com/dshills/kbdwrap/internal/engine/cursor"
)

// Default configuration values.
const (
	DefaultMaxUndoEntries = 1000
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithLineEnding sets the line ending used when exporting content.
func WithLineEnding(ending buffer.LineEnding) Option {
	return func(e *Engine) {
		e.bufOpts = append(e.bufOpts, buffer.WithLineEnding(ending))
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxUndoEntries = max
		}
	}
}

// WithSelections sets the initial selections.
func WithSelections(sels ...cursor.Selection) Option {
	return func(e *Engine) {
		e.initSelections = sels
	}
}
