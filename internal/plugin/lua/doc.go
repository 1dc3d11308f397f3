// Package lua runs user scripts that drive the kbd toggle.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. The kbd module is installed as a global:
//
//	kbd.select(1, 7, 1, 11)   -- add a selection, 1-indexed line and column
//	kbd.add_cursor(2, 3)      -- add a caret
//	if kbd.toggle() then      -- wrap or unwrap every selection
//	    print(kbd.line(1))
//	end
//	kbd.clear()               -- drop the script's selections
//	kbd.undo()                -- revert the last toggle
//
// Columns are byte columns. The first select or add_cursor after a clear
// (or at script start) replaces the editor's existing selections.
package lua
