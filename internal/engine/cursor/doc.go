// Package cursor provides selection management for text editing.
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text. The selection can extend forward (head > anchor) or
// backward (head < anchor), preserving the user's selection direction.
// Range always returns the ordered (start, end) pair.
//
// Multi-Cursor Support:
//
// Set holds every active selection in the order the host created them.
// Editing code that replaces text for several selections sorts a copy with
// SortDescending so that each replacement only shifts text after positions
// still to be visited.
//
// Thread Safety:
//
// Selection is an immutable value type and safe for concurrent use. Set is
// not thread-safe and should be protected by external synchronization if
// accessed concurrently.
package cursor
