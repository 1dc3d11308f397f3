package cursor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSelection is returned when a selection spec cannot be parsed.
var ErrInvalidSelection = errors.New("invalid selection")

// ParsePoint parses "line:col" (both 0-indexed).
func ParsePoint(s string) (Point, error) {
	lineStr, colStr, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q: expected line:col", ErrInvalidSelection, s)
	}
	line, err := strconv.ParseUint(lineStr, 10, 32)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: bad line: %v", ErrInvalidSelection, s, err)
	}
	col, err := strconv.ParseUint(colStr, 10, 32)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q: bad column: %v", ErrInvalidSelection, s, err)
	}
	return Point{Line: uint32(line), Column: uint32(col)}, nil
}

// ParseSelection parses "anchor" or "anchor-head", where each side is
// "line:col". A single point yields a cursor.
func ParseSelection(s string) (Selection, error) {
	anchorStr, headStr, hasHead := strings.Cut(s, "-")

	anchor, err := ParsePoint(anchorStr)
	if err != nil {
		return Selection{}, err
	}
	if !hasHead {
		return NewCursorSelection(anchor), nil
	}

	head, err := ParsePoint(headStr)
	if err != nil {
		return Selection{}, err
	}
	return NewSelection(anchor, head), nil
}
