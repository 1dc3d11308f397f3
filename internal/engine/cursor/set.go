package cursor

// Set manages the active selections of an editor.
// Unlike a rendering cursor set it does not merge or reorder selections;
// the host reports them exactly as created.
type Set struct {
	selections []Selection
}

// NewSet creates a set containing the given selections.
// An empty set holds a single cursor at (0:0), mirroring an editor that
// always has a caret.
func NewSet(sels ...Selection) *Set {
	s := &Set{}
	s.SetAll(sels)
	return s
}

// Primary returns the primary (first) selection.
func (s *Set) Primary() Selection {
	return s.selections[0]
}

// All returns a copy of all selections.
func (s *Set) All() []Selection {
	result := make([]Selection, len(s.selections))
	copy(result, s.selections)
	return result
}

// Count returns the number of selections.
func (s *Set) Count() int {
	return len(s.selections)
}

// Add appends a selection.
func (s *Set) Add(sel Selection) {
	s.selections = append(s.selections, sel)
}

// SetAll replaces all selections.
func (s *Set) SetAll(sels []Selection) {
	if len(sels) == 0 {
		s.selections = []Selection{NewCursorSelection(Point{})}
		return
	}
	s.selections = make([]Selection, len(sels))
	copy(s.selections, sels)
}

// Clear removes all selections except primary.
func (s *Set) Clear() {
	if len(s.selections) > 1 {
		s.selections = s.selections[:1]
	}
}

// HasSelection returns true if any selection is non-empty (has extent).
func (s *Set) HasSelection() bool {
	for _, sel := range s.selections {
		if !sel.IsEmpty() {
			return true
		}
	}
	return false
}
