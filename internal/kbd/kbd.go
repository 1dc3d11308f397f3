package kbd

import (
	"github.com/dshills/kbdwrap/internal/engine/buffer"
	"github.com/dshills/kbdwrap/internal/engine/cursor"
)

// Markers delimiting a wrapped span.
const (
	Open  = "<kbd>"
	Close = "</kbd>"
)

// Document is the read/replace surface a toggle needs from its host.
// PosToOffset and OffsetToPos must be exact inverses over valid coordinates.
type Document interface {
	// GetRange returns the text between two points; it may span lines.
	GetRange(from, to buffer.Point) string
	// ReplaceRange substitutes text for the range [from, to).
	ReplaceRange(text string, from, to buffer.Point)
	PosToOffset(p buffer.Point) buffer.ByteOffset
	OffsetToPos(offset buffer.ByteOffset) buffer.Point
	// GetLine returns the full text of one line without its newline.
	GetLine(line uint32) string
}

// Editor is a Document that also reports its current selections.
type Editor interface {
	Document
	// ListSelections returns at least one selection; a caret has Anchor == Head.
	ListSelections() []cursor.Selection
}

// Action is the outcome chosen for one selection.
type Action uint8

const (
	ActionNone Action = iota
	ActionWrap
	ActionUnwrapEnclosed
	ActionUnwrapAdjacent
	ActionUnwrapAtCursor
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionWrap:
		return "wrap"
	case ActionUnwrapEnclosed:
		return "unwrap-enclosed"
	case ActionUnwrapAdjacent:
		return "unwrap-adjacent"
	case ActionUnwrapAtCursor:
		return "unwrap-at-cursor"
	default:
		return "none"
	}
}

// EditOp is a single replacement produced for one selection.
type EditOp struct {
	Action      Action
	Range       buffer.PointRange
	Replacement string
}

// Result reports what a toggle did.
type Result struct {
	// Acted is true iff at least one edit was applied.
	Acted bool
	// Edits holds the applied edits in application order (back to front).
	Edits []EditOp
	// Dropped counts edits discarded because they overlapped an edit
	// closer to the end of the document.
	Dropped int
}

// Toggle resolves and applies the toggle for the given selections.
func Toggle(sels []cursor.Selection, doc Document) Result {
	ops, dropped := Plan(sels, doc)
	return Result{
		Acted:   Apply(doc, ops),
		Edits:   ops,
		Dropped: dropped,
	}
}

// ToggleEditor runs Toggle over the editor's current selections.
func ToggleEditor(ed Editor) Result {
	return Toggle(ed.ListSelections(), ed)
}

// Plan normalizes and resolves the selections without editing the document.
// The returned ops are ordered back to front and pairwise non-overlapping;
// an op that would overlap one already accepted is dropped and counted.
func Plan(sels []cursor.Selection, doc Document) ([]EditOp, int) {
	var ops []EditOp
	dropped := 0

	for _, r := range Normalize(sels) {
		op, ok := Resolve(doc, r)
		if !ok {
			continue
		}
		if n := len(ops); n > 0 && op.Range.End.After(ops[n-1].Range.Start) {
			dropped++
			continue
		}
		ops = append(ops, op)
	}

	return ops, dropped
}
