package engine

import (
	"fmt"
	"io"
	"sync"

	"github.com/dshills/kbdwrap/internal/engine/buffer"
	"github.com/dshills/kbdwrap/internal/engine/cursor"
	"github.com/dshills/kbdwrap/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// ByteOffset is a byte position in the buffer.
	ByteOffset = buffer.ByteOffset

	// Point represents a line/column position.
	Point = buffer.Point

	// Selection represents an anchor/head selection.
	Selection = cursor.Selection
)

// Engine is an editable document with selections and undo history.
//
// The buffer carries its own lock; mu guards the selections and orders
// edits against history operations.
type Engine struct {
	mu sync.Mutex

	buf     *buffer.Buffer
	cursors *cursor.Set
	history *history.History

	initContent    string
	initSelections []cursor.Selection
	bufOpts        []buffer.Option
	maxUndoEntries int
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{maxUndoEntries: DefaultMaxUndoEntries}
	for _, opt := range opts {
		opt(e)
	}

	e.buf = buffer.NewBufferFromString(e.initContent, e.bufOpts...)
	e.cursors = cursor.NewSet(e.initSelections...)
	e.history = history.NewHistory(e.maxUndoEntries)
	return e
}

// NewFromReader creates an engine from a reader, keeping the reader's line
// ending for Export.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(data)
	opts = append([]Option{
		WithContent(text),
		WithLineEnding(buffer.DetectLineEnding(text)),
	}, opts...)
	return New(opts...), nil
}

// Document surface

// ListSelections returns a copy of the current selections.
func (e *Engine) ListSelections() []cursor.Selection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cursors.All()
}

// GetRange returns the text between two points.
func (e *Engine) GetRange(from, to Point) string {
	return e.buf.TextRange(e.buf.PointToOffset(from), e.buf.PointToOffset(to))
}

// ReplaceRange replaces [from, to) with text and records the edit.
// Selections are moved to follow the edit: endpoints at or after to shift by
// the change in length, and endpoints inside the range are clamped to the
// end of the new text.
func (e *Engine) ReplaceRange(text string, from, to Point) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start, end := e.buf.PointToOffset(from), e.buf.PointToOffset(to)
	if start > end {
		start, end = end, start
	}

	sels := e.cursors.All()
	offsets := make([][2]ByteOffset, len(sels))
	for i, sel := range sels {
		offsets[i] = [2]ByteOffset{e.buf.PointToOffset(sel.Anchor), e.buf.PointToOffset(sel.Head)}
	}

	// Offsets come from PointToOffset, so a failure here is a broken buffer.
	res, err := e.buf.ApplyEdit(buffer.NewEdit(buffer.NewRange(start, end), text))
	if err != nil {
		panic(fmt.Sprintf("engine: replace %d-%d: %v", start, end, err))
	}
	e.history.Push(res)

	newEnd := start + ByteOffset(len(text))
	for i := range sels {
		sels[i].Anchor = e.buf.OffsetToPoint(shiftOffset(offsets[i][0], start, end, newEnd))
		sels[i].Head = e.buf.OffsetToPoint(shiftOffset(offsets[i][1], start, end, newEnd))
	}
	e.cursors.SetAll(sels)
}

// shiftOffset maps an offset through the replacement of [start, end) by text
// ending at newEnd.
func shiftOffset(off, start, end, newEnd ByteOffset) ByteOffset {
	switch {
	case off >= end:
		return off + newEnd - end
	case off > start:
		return min(off, newEnd)
	default:
		return off
	}
}

// PosToOffset converts a point to a byte offset.
func (e *Engine) PosToOffset(p Point) ByteOffset {
	return e.buf.PointToOffset(p)
}

// OffsetToPos converts a byte offset to a point.
func (e *Engine) OffsetToPos(offset ByteOffset) Point {
	return e.buf.OffsetToPoint(offset)
}

// GetLine returns a line's text without its newline.
func (e *Engine) GetLine(line uint32) string {
	return e.buf.LineText(line)
}

// Selections

// SetSelections replaces the active selections.
func (e *Engine) SetSelections(sels ...cursor.Selection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.SetAll(sels)
}

// AddSelection appends a selection.
func (e *Engine) AddSelection(sel cursor.Selection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursors.Add(sel)
}

// ValidateSelections reports an error if any selection refers to a line
// past the end of the document.
func (e *Engine) ValidateSelections() error {
	lines := e.buf.LineCount()
	for _, sel := range e.ListSelections() {
		r := sel.Range()
		if r.End.Line >= lines {
			return fmt.Errorf("%w: %s (document has %d lines)", ErrSelectionOutOfRange, sel, lines)
		}
	}
	return nil
}

// Content

// Text returns the full document text.
func (e *Engine) Text() string {
	return e.buf.Text()
}

// Export returns the document text with its original line endings.
func (e *Engine) Export() string {
	return e.buf.Export()
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() uint32 {
	return e.buf.LineCount()
}

// RevisionID returns the buffer revision.
func (e *Engine) RevisionID() buffer.RevisionID {
	return e.buf.RevisionID()
}

// History

// BeginGroup starts an undo group.
func (e *Engine) BeginGroup(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history.BeginGroup(name)
}

// EndGroup closes the current undo group.
func (e *Engine) EndGroup() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.history.EndGroup()
}

// Undo reverts the last undo unit.
func (e *Engine) Undo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Undo(e.buf)
}

// Redo reapplies the last undone unit.
func (e *Engine) Redo() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Redo(e.buf)
}

// CanUndo reports whether undo is available.
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.CanUndo()
}
