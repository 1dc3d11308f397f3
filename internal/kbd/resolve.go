package kbd

import (
	"regexp"
	"strings"

	"github.com/dshills/kbdwrap/internal/engine/buffer"
)

// spanPattern matches one tag pair on a line, pairing each <kbd> with the
// nearest following </kbd>.
var spanPattern = regexp.MustCompile(regexp.QuoteMeta(Open) + `(.*?)` + regexp.QuoteMeta(Close))

// Resolve decides the edit for one ordered range. It reports false when the
// range needs no edit.
func Resolve(doc Document, r buffer.PointRange) (EditOp, bool) {
	if r.IsEmpty() {
		return resolveCursor(doc, r.Start)
	}

	text := doc.GetRange(r.Start, r.End)

	if strings.HasPrefix(text, Open) && strings.HasSuffix(text, Close) {
		return EditOp{
			Action:      ActionUnwrapEnclosed,
			Range:       r,
			Replacement: text[len(Open) : len(text)-len(Close)],
		}, true
	}

	if outer, ok := adjacentTags(doc, r); ok {
		return EditOp{
			Action:      ActionUnwrapAdjacent,
			Range:       outer,
			Replacement: text,
		}, true
	}

	return EditOp{
		Action:      ActionWrap,
		Range:       r,
		Replacement: Open + text + Close,
	}, true
}

// adjacentTags reports whether OPEN ends exactly at r.Start and CLOSE starts
// exactly at r.End, returning the range covering both tags. Offsets are used
// so the tags may sit on neighbouring lines.
func adjacentTags(doc Document, r buffer.PointRange) (buffer.PointRange, bool) {
	fromOff := doc.PosToOffset(r.Start)
	if fromOff < int64(len(Open)) {
		return buffer.PointRange{}, false
	}
	toOff := doc.PosToOffset(r.End)

	before := doc.OffsetToPos(fromOff - int64(len(Open)))
	after := doc.OffsetToPos(toOff + int64(len(Close)))

	if doc.GetRange(before, r.Start) != Open || doc.GetRange(r.End, after) != Close {
		return buffer.PointRange{}, false
	}
	return buffer.PointRange{Start: before, End: after}, true
}

// resolveCursor unwraps the first tag span on the caret's line whose bounds,
// inclusive at both ends, contain the caret column.
func resolveCursor(doc Document, at buffer.Point) (EditOp, bool) {
	line := doc.GetLine(at.Line)
	col := int(at.Column)

	for _, m := range spanPattern.FindAllStringSubmatchIndex(line, -1) {
		start, end := m[0], m[1]
		if col < start || col > end {
			continue
		}
		return EditOp{
			Action: ActionUnwrapAtCursor,
			Range: buffer.PointRange{
				Start: buffer.Point{Line: at.Line, Column: uint32(start)},
				End:   buffer.Point{Line: at.Line, Column: uint32(end)},
			},
			Replacement: line[m[2]:m[3]],
		}, true
	}

	return EditOp{}, false
}
