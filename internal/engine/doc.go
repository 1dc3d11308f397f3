// Package engine combines a text buffer, the active selections and undo
// history into the document view that editing commands run against.
//
// # Architecture
//
//   - buffer: text storage with offset/point conversion and edit operations
//   - cursor: selection model and multi-selection ordering
//   - history: grouped undo/redo of applied edits
//
// Engine satisfies kbd.Editor: it lists its selections, reads ranges and
// lines, converts between points and offsets, and replaces ranges. Every
// replacement is recorded in history; wrap a batch in BeginGroup/EndGroup
// to undo it as one step.
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("press Enter"))
//	e.SetSelections(cursor.NewSelection(
//	    buffer.Point{Line: 0, Column: 6},
//	    buffer.Point{Line: 0, Column: 11},
//	))
//	res := kbd.ToggleEditor(e) // "press <kbd>Enter</kbd>"
//	e.Undo()                   // "press Enter"
//
// # Thread Safety
//
// Buffer access is thread-safe. Selection state is guarded by the engine's
// mutex, but a toggle is expected to run on a single goroutine from start
// to finish.
package engine
