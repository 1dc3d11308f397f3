package cursor

import (
	"errors"
	"testing"
)

func pt(line, col uint32) Point {
	return Point{Line: line, Column: col}
}

func TestSelectionRange(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want PointRange
	}{
		{"forward", NewSelection(pt(0, 0), pt(0, 5)), PointRange{Start: pt(0, 0), End: pt(0, 5)}},
		{"backward same line", NewSelection(pt(0, 5), pt(0, 0)), PointRange{Start: pt(0, 0), End: pt(0, 5)}},
		{"backward across lines", NewSelection(pt(2, 1), pt(1, 9)), PointRange{Start: pt(1, 9), End: pt(2, 1)}},
		{"line wins over column", NewSelection(pt(1, 0), pt(0, 40)), PointRange{Start: pt(0, 40), End: pt(1, 0)}},
		{"cursor", NewCursorSelection(pt(3, 7)), PointRange{Start: pt(3, 7), End: pt(3, 7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sel.Range()
			if got != tt.want {
				t.Errorf("Range() = %s, want %s", got, tt.want)
			}
			if !got.IsValid() {
				t.Errorf("Range() %s is not ordered", got)
			}
			if flipped := tt.sel.Flip().Range(); flipped != got {
				t.Errorf("Flip().Range() = %s, want %s", flipped, got)
			}
		})
	}
}

func TestSelectionDirection(t *testing.T) {
	fwd := NewSelection(pt(0, 1), pt(0, 4))
	back := fwd.Flip()

	if fwd.IsBackward() {
		t.Error("forward selection reported backward")
	}
	if !back.IsBackward() {
		t.Error("flipped selection should be backward")
	}
	if back.Normalize() != fwd {
		t.Errorf("Normalize() = %s, want %s", back.Normalize(), fwd)
	}
	if !fwd.Collapse().IsEmpty() {
		t.Error("collapsed selection should be empty")
	}
}

func TestSortDescending(t *testing.T) {
	ranges := []PointRange{
		{Start: pt(0, 2), End: pt(0, 4)},
		{Start: pt(3, 0), End: pt(3, 1)},
		{Start: pt(0, 10), End: pt(1, 0)},
	}

	SortDescending(ranges)

	want := []Point{pt(3, 0), pt(0, 10), pt(0, 2)}
	for i, w := range want {
		if ranges[i].Start != w {
			t.Errorf("ranges[%d].Start = %s, want %s", i, ranges[i].Start, w)
		}
	}
}

func TestSortDescendingEqualStarts(t *testing.T) {
	orders := [][]PointRange{
		{{Start: pt(0, 7), End: pt(0, 7)}, {Start: pt(0, 7), End: pt(0, 9)}},
		{{Start: pt(0, 7), End: pt(0, 9)}, {Start: pt(0, 7), End: pt(0, 7)}},
	}

	for _, ranges := range orders {
		SortDescending(ranges)
		if ranges[0].End != pt(0, 9) || ranges[1].End != pt(0, 7) {
			t.Errorf("expected the longer range first, got %v", ranges)
		}
	}
}

func TestSet(t *testing.T) {
	s := NewSet()
	if s.Count() != 1 {
		t.Fatalf("empty set should hold one cursor, got %d", s.Count())
	}
	if s.HasSelection() {
		t.Error("default cursor should not be a selection")
	}

	s.Add(NewSelection(pt(1, 0), pt(1, 3)))
	if !s.HasSelection() {
		t.Error("expected HasSelection after adding a range")
	}

	all := s.All()
	all[0] = NewCursorSelection(pt(9, 9))
	if s.Primary() == all[0] {
		t.Error("All() should return a copy")
	}

	s.Clear()
	if s.Count() != 1 {
		t.Errorf("Clear() should keep primary only, got %d", s.Count())
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		in   string
		want Selection
	}{
		{"0:7", NewCursorSelection(pt(0, 7))},
		{"0:0-0:5", NewSelection(pt(0, 0), pt(0, 5))},
		{"2:3-1:0", NewSelection(pt(2, 3), pt(1, 0))},
		{" 4:1 ", NewCursorSelection(pt(4, 1))},
	}

	for _, tt := range tests {
		got, err := ParseSelection(tt.in)
		if err != nil {
			t.Errorf("ParseSelection(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSelection(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseSelectionErrors(t *testing.T) {
	for _, in := range []string{"", "7", "a:1", "1:b", "1:2-3", "-1:0"} {
		if _, err := ParseSelection(in); !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("ParseSelection(%q) error = %v, want ErrInvalidSelection", in, err)
		}
	}
}
