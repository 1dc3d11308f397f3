package cursor

import (
	"fmt"
	"sort"

	"github.com/dshills/kbdwrap/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// PointRange is an alias for buffer.PointRange for convenience.
type PointRange = buffer.PointRange

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the current cursor position.
// When Anchor == Head, this represents a cursor with no selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor Point // Where selection started
	Head   Point // Current cursor position
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Point) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursorSelection creates a selection representing just a cursor (no extent).
func NewCursorSelection(p Point) Selection {
	return Selection{Anchor: p, Head: p}
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Anchor.Compare(s.Head) == 0
}

// IsBackward returns true if the head precedes the anchor.
func (s Selection) IsBackward() bool {
	return s.Head.Before(s.Anchor)
}

// Range returns the selection as an ordered range (always Start <= End).
// Equal anchor and head yield an empty range.
func (s Selection) Range() PointRange {
	if s.Anchor.Compare(s.Head) <= 0 {
		return PointRange{Start: s.Anchor, End: s.Head}
	}
	return PointRange{Start: s.Head, End: s.Anchor}
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Point {
	return s.Range().Start
}

// End returns the upper bound of the selection.
func (s Selection) End() Point {
	return s.Range().End
}

// Normalize returns a forward selection (anchor <= head).
func (s Selection) Normalize() Selection {
	r := s.Range()
	return Selection{Anchor: r.Start, Head: r.End}
}

// Flip returns a selection with anchor and head swapped.
func (s Selection) Flip() Selection {
	return Selection{Anchor: s.Head, Head: s.Anchor}
}

// Collapse collapses the selection to a cursor at the head.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Head, Head: s.Head}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s", s.Head)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection%s%s%s", s.Anchor, dir, s.Head)
}

// SortDescending sorts ranges in place so the range whose start is closest
// to the end of the document comes first. Ranges with equal starts are
// ordered by descending end, so the result does not depend on input order.
func SortDescending(ranges []PointRange) {
	sort.SliceStable(ranges, func(i, j int) bool {
		if c := ranges[i].Start.Compare(ranges[j].Start); c != 0 {
			return c > 0
		}
		return ranges[i].End.After(ranges[j].End)
	})
}
