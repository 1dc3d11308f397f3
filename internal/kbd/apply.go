package kbd

// Apply performs ops in the given order through the document's replace
// primitive. Positions are not re-read between edits, so ops must already be
// ordered back to front. Reports whether any op was applied.
func Apply(doc Document, ops []EditOp) bool {
	for _, op := range ops {
		doc.ReplaceRange(op.Replacement, op.Range.Start, op.Range.End)
	}
	return len(ops) > 0
}
