package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/kbdwrap/internal/dispatcher"
	"github.com/dshills/kbdwrap/internal/dispatcher/handler"
	"github.com/dshills/kbdwrap/internal/engine/buffer"
	"github.com/dshills/kbdwrap/internal/engine/cursor"
	"github.com/dshills/kbdwrap/internal/kbd"
)

// ModuleName is the global the kbd module is installed under.
const ModuleName = "kbd"

// Editor is the document surface scripts drive.
type Editor interface {
	kbd.Editor
	SetSelections(sels ...cursor.Selection)
	Text() string
	LineCount() uint32
	Undo() error
}

// Runner executes a registered command against an editor.
type Runner interface {
	Execute(id string, ed kbd.Editor) handler.Result
}

// Module implements the kbd Lua module.
type Module struct {
	ed     Editor
	runner Runner

	// sels holds the selections added since the last clear.
	sels []cursor.Selection
}

// NewModule creates the module for ed. A nil runner gets a dispatcher with
// the built-in commands.
func NewModule(ed Editor, runner Runner) *Module {
	if runner == nil {
		reg := dispatcher.NewRegistry()
		_ = dispatcher.RegisterBuiltins(reg)
		runner = dispatcher.New(reg)
	}
	return &Module{ed: ed, runner: runner}
}

// Funcs returns the module's functions keyed by Lua name.
func (m *Module) Funcs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"select":     m.selectRange,
		"add_cursor": m.addCursor,
		"clear":      m.clear,
		"toggle":     m.toggle,
		"text":       m.text,
		"line":       m.line,
		"line_count": m.lineCount,
		"undo":       m.undo,
	}
}

// Register installs the module into s.
func (m *Module) Register(s *State) {
	s.RegisterModule(ModuleName, m.Funcs())
}

// select(l1, c1, l2, c2)
// Adds a selection from anchor (l1, c1) to head (l2, c2).
func (m *Module) selectRange(L *lua.LState) int {
	anchor := checkPoint(L, 1)
	head := checkPoint(L, 3)
	m.add(L, cursor.NewSelection(anchor, head))
	return 0
}

// add_cursor(l, c)
// Adds a caret.
func (m *Module) addCursor(L *lua.LState) int {
	m.add(L, cursor.NewCursorSelection(checkPoint(L, 1)))
	return 0
}

func (m *Module) add(L *lua.LState, sel cursor.Selection) {
	m.requireEditor(L)
	if r := sel.Range(); r.End.Line >= m.ed.LineCount() {
		L.RaiseError("line %d out of range (document has %d lines)", r.End.Line+1, m.ed.LineCount())
	}
	m.sels = append(m.sels, sel)
	m.ed.SetSelections(m.sels...)
}

// clear()
// Drops the script's selections, leaving a caret at the start.
func (m *Module) clear(L *lua.LState) int {
	m.requireEditor(L)
	m.sels = nil
	m.ed.SetSelections()
	return 0
}

// toggle() -> bool
// Runs the toggle over the current selections; true if anything changed.
func (m *Module) toggle(L *lua.LState) int {
	m.requireEditor(L)
	res := m.runner.Execute(dispatcher.CommandWrapSelection, m.ed)
	if res.IsError() {
		L.RaiseError("toggle: %v", res.Error)
	}
	if len(m.sels) > 0 {
		// The editor moved the selections through the edits.
		m.sels = m.ed.ListSelections()
	}
	L.Push(lua.LBool(res.IsOK()))
	return 1
}

// text() -> string
func (m *Module) text(L *lua.LState) int {
	m.requireEditor(L)
	L.Push(lua.LString(m.ed.Text()))
	return 1
}

// line(n) -> string
// Returns the text of a line (1-indexed).
func (m *Module) line(L *lua.LState) int {
	m.requireEditor(L)
	n := L.CheckInt(1)
	if n < 1 || uint32(n) > m.ed.LineCount() {
		L.ArgError(1, "line out of range")
	}
	L.Push(lua.LString(m.ed.GetLine(uint32(n - 1))))
	return 1
}

// line_count() -> number
func (m *Module) lineCount(L *lua.LState) int {
	m.requireEditor(L)
	L.Push(lua.LNumber(m.ed.LineCount()))
	return 1
}

// undo() -> bool
// Reverts the last toggle; false if there was nothing to undo.
func (m *Module) undo(L *lua.LState) int {
	m.requireEditor(L)
	L.Push(lua.LBool(m.ed.Undo() == nil))
	return 1
}

func (m *Module) requireEditor(L *lua.LState) {
	if m.ed == nil {
		L.RaiseError("%v", ErrNoEditor)
	}
}

// checkPoint reads a 1-indexed (line, column) pair starting at argument n.
func checkPoint(L *lua.LState, n int) buffer.Point {
	line := L.CheckInt(n)
	col := L.CheckInt(n + 1)
	if line < 1 {
		L.ArgError(n, "line must be >= 1")
	}
	if col < 1 {
		L.ArgError(n+1, "column must be >= 1")
	}
	return buffer.Point{Line: uint32(line - 1), Column: uint32(col - 1)}
}
