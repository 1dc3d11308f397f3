package history

import (
	"errors"
	"sync"
	"time"

	"github.com/dshills/kbdwrap/internal/engine/buffer"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Entry is one undo unit: the edits applied, in application order.
type Entry struct {
	Name      string
	Results   []buffer.EditResult
	Timestamp time.Time
}

// History manages undo/redo state for a buffer.
type History struct {
	mu sync.Mutex

	undoStack []*Entry
	redoStack []*Entry

	grouping  bool
	groupName string
	groupRes  []buffer.EditResult

	maxEntries int
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &History{maxEntries: maxEntries}
}

// Push records an applied edit. Clears the redo stack.
func (h *History) Push(res buffer.EditResult) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		h.groupRes = append(h.groupRes, res)
		return
	}
	h.pushLocked(&Entry{Name: "edit", Results: []buffer.EditResult{res}, Timestamp: time.Now()})
}

func (h *History) pushLocked(e *Entry) {
	h.undoStack = append(h.undoStack, e)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// BeginGroup starts a group. Nested calls are ignored.
func (h *History) BeginGroup(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.grouping {
		return
	}
	h.grouping = true
	h.groupName = name
	h.groupRes = nil
}

// EndGroup finishes a group. An empty group leaves no entry.
func (h *History) EndGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.grouping {
		return
	}
	h.grouping = false

	if len(h.groupRes) > 0 {
		h.pushLocked(&Entry{Name: h.groupName, Results: h.groupRes, Timestamp: time.Now()})
	}
	h.groupRes = nil
}

// IsGrouping returns true if currently in a group.
func (h *History) IsGrouping() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.grouping
}

// Undo reverts the last entry, newest edit first.
func (h *History) Undo(buf *buffer.Buffer) error {
	h.mu.Lock()
	if len(h.undoStack) == 0 {
		h.mu.Unlock()
		return ErrNothingToUndo
	}
	entry := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.mu.Unlock()

	for i := len(entry.Results) - 1; i >= 0; i-- {
		if _, err := buf.ApplyEdit(entry.Results[i].Invert()); err != nil {
			return err
		}
	}

	h.mu.Lock()
	h.redoStack = append(h.redoStack, entry)
	h.mu.Unlock()
	return nil
}

// Redo reapplies the last undone entry in its original order.
func (h *History) Redo(buf *buffer.Buffer) error {
	h.mu.Lock()
	if len(h.redoStack) == 0 {
		h.mu.Unlock()
		return ErrNothingToRedo
	}
	entry := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.mu.Unlock()

	for _, res := range entry.Results {
		edit := buffer.Edit{Range: res.OldRange, NewText: res.NewText}
		if _, err := buf.ApplyEdit(edit); err != nil {
			return err
		}
	}

	h.mu.Lock()
	h.undoStack = append(h.undoStack, entry)
	h.mu.Unlock()
	return nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo units available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}
