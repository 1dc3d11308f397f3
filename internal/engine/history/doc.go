// Package history records applied buffer edits so they can be undone and
// redone. Edits pushed between BeginGroup and EndGroup form one undo unit,
// which is how a multi-selection toggle becomes a single undo step.
package history
