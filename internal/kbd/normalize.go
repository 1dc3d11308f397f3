package kbd

import (
	"github.com/dshills/kbdwrap/internal/engine/buffer"
	"github.com/dshills/kbdwrap/internal/engine/cursor"
)

// Normalize converts selections to ordered ranges sorted by descending start.
// The input slice is not modified.
func Normalize(sels []cursor.Selection) []buffer.PointRange {
	ranges := make([]buffer.PointRange, len(sels))
	for i, sel := range sels {
		ranges[i] = sel.Range()
	}
	cursor.SortDescending(ranges)
	return ranges
}
