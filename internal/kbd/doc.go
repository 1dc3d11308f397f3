// Package kbd toggles <kbd> markup around editor selections.
//
// A toggle runs in three steps inside one synchronous call:
//
//   - Normalize orders every selection into a (start, end) range and sorts
//     the ranges so the one closest to the end of the document comes first.
//   - Resolve decides, per range, whether to wrap it, unwrap it, or leave it
//     alone, reading text only through the Document interface.
//   - Apply performs the resolved replacements back to front, so an edit
//     never shifts a position that is still to be used.
//
// Decision rules for a non-empty range, first match wins:
//
//   - the text starts with <kbd> and ends with </kbd>: strip both tags
//   - <kbd> sits directly before the range and </kbd> directly after it:
//     replace the tags and the text with the text alone
//   - otherwise wrap the text in <kbd>...</kbd>
//
// For an empty range (a caret) the caret's line is scanned left to right for
// <kbd>...</kbd> spans; the first span whose boundaries include the caret
// column is unwrapped. A caret outside every span produces no edit.
//
// Nested tag pairs are not understood: the scan pairs each <kbd> with the
// nearest following </kbd>.
//
// The package holds no state and performs no I/O, logging, or translation.
// Hosts decide what to show when Result.Acted is false.
package kbd
