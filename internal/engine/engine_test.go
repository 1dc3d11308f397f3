package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/kbdwrap/internal/engine/buffer"
	"github.com/dshills/kbdwrap/internal/engine/cursor"
	"github.com/dshills/kbdwrap/internal/kbd"
)

func pt(line, col uint32) Point {
	return Point{Line: line, Column: col}
}

func TestNew(t *testing.T) {
	e := New()

	if e.Text() != "" {
		t.Errorf("expected empty text, got %q", e.Text())
	}
	if e.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", e.LineCount())
	}
	if sels := e.ListSelections(); len(sels) != 1 || !sels[0].IsEmpty() {
		t.Errorf("expected a single caret, got %v", sels)
	}
	if e.CanUndo() {
		t.Error("new engine should have nothing to undo")
	}
}

func TestNewFromReaderKeepsCRLF(t *testing.T) {
	e, err := NewFromReader(strings.NewReader("one\r\ntwo\r\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.GetLine(1) != "two" {
		t.Errorf("GetLine(1) = %q", e.GetLine(1))
	}
	if e.Export() != "one\r\ntwo\r\n" {
		t.Errorf("Export() = %q", e.Export())
	}
}

func TestDocumentSurface(t *testing.T) {
	e := New(WithContent("first\nsecond"))

	if got := e.GetRange(pt(0, 3), pt(1, 3)); got != "st\nsec" {
		t.Errorf("GetRange() = %q", got)
	}
	if got := e.PosToOffset(pt(1, 2)); got != 8 {
		t.Errorf("PosToOffset() = %d, want 8", got)
	}
	if got := e.OffsetToPos(8); got != pt(1, 2) {
		t.Errorf("OffsetToPos(8) = %s", got)
	}
	if got := e.GetLine(0); got != "first" {
		t.Errorf("GetLine(0) = %q", got)
	}
}

func TestReplaceRangeUndoRedo(t *testing.T) {
	e := New(WithContent("press C now"))

	e.ReplaceRange("<kbd>C</kbd>", pt(0, 6), pt(0, 7))
	if e.Text() != "press <kbd>C</kbd> now" {
		t.Fatalf("unexpected text %q", e.Text())
	}

	if err := e.Undo(); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if e.Text() != "press C now" {
		t.Errorf("after undo: %q", e.Text())
	}

	if err := e.Redo(); err != nil {
		t.Fatalf("Redo() error: %v", err)
	}
	if e.Text() != "press <kbd>C</kbd> now" {
		t.Errorf("after redo: %q", e.Text())
	}

	if err := e.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestReplaceRangeMovesSelections(t *testing.T) {
	e := New(WithContent("Press Esc now\nnext"), WithSelections(
		cursor.NewSelection(pt(0, 6), pt(0, 9)),
		cursor.NewCursorSelection(pt(0, 11)),
		cursor.NewCursorSelection(pt(1, 2)),
		cursor.NewCursorSelection(pt(0, 2)),
	))

	e.ReplaceRange("<kbd>Esc</kbd>", pt(0, 6), pt(0, 9))

	want := []cursor.Selection{
		cursor.NewSelection(pt(0, 6), pt(0, 20)),
		cursor.NewCursorSelection(pt(0, 22)),
		cursor.NewCursorSelection(pt(1, 2)),
		cursor.NewCursorSelection(pt(0, 2)),
	}
	got := e.ListSelections()
	for i, w := range want {
		if got[i] != w {
			t.Errorf("selection %d = %s, want %s", i, got[i], w)
		}
	}
}

func TestReplaceRangeClampsInsideSelections(t *testing.T) {
	e := New(WithContent("a <kbd>key</kbd> b"), WithSelections(cursor.NewCursorSelection(pt(0, 12))))

	e.ReplaceRange("key", pt(0, 2), pt(0, 16))

	if got := e.ListSelections()[0]; got != cursor.NewCursorSelection(pt(0, 5)) {
		t.Errorf("selection = %s, want caret at (0:5)", got)
	}
}

func TestToggleTwiceRestoresText(t *testing.T) {
	const text = "Press Esc now"
	e := New(WithContent(text), WithSelections(cursor.NewSelection(pt(0, 6), pt(0, 9))))

	if !kbd.ToggleEditor(e).Acted {
		t.Fatal("expected first toggle to act")
	}
	if e.Text() != "Press <kbd>Esc</kbd> now" {
		t.Fatalf("after wrap: %q", e.Text())
	}
	if !kbd.ToggleEditor(e).Acted {
		t.Fatal("expected second toggle to act")
	}
	if e.Text() != text {
		t.Errorf("after second toggle: %q, want %q", e.Text(), text)
	}
}

func TestUndoEmpty(t *testing.T) {
	e := New()
	if err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected ErrNothingToUndo, got %v", err)
	}
}

func TestSelections(t *testing.T) {
	e := New(WithContent("abc\ndef"), WithSelections(cursor.NewSelection(pt(0, 0), pt(0, 2))))

	e.AddSelection(cursor.NewCursorSelection(pt(1, 1)))
	if got := len(e.ListSelections()); got != 2 {
		t.Fatalf("expected 2 selections, got %d", got)
	}

	e.SetSelections(cursor.NewCursorSelection(pt(1, 0)))
	if got := len(e.ListSelections()); got != 1 {
		t.Errorf("expected 1 selection, got %d", got)
	}
	if err := e.ValidateSelections(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	e.SetSelections(cursor.NewCursorSelection(pt(5, 0)))
	if err := e.ValidateSelections(); !errors.Is(err, ErrSelectionOutOfRange) {
		t.Errorf("expected ErrSelectionOutOfRange, got %v", err)
	}
}

func TestWithLineEnding(t *testing.T) {
	e := New(WithContent("a\nb"), WithLineEnding(buffer.LineEndingCRLF))
	if e.Export() != "a\r\nb" {
		t.Errorf("Export() = %q", e.Export())
	}
}

func TestWithMaxUndoEntries(t *testing.T) {
	e := New(WithContent("abc"), WithMaxUndoEntries(1))

	e.ReplaceRange("x", pt(0, 0), pt(0, 1))
	e.ReplaceRange("y", pt(0, 1), pt(0, 2))

	if err := e.Undo(); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("expected only one undo entry, got %v", err)
	}
	if e.Text() != "xbc" {
		t.Errorf("unexpected text %q", e.Text())
	}
}

func TestToggleThroughEngine(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		sels  []cursor.Selection
		want  string
		acted bool
	}{
		{
			name:  "wrap selection",
			text:  "hello",
			sels:  []cursor.Selection{cursor.NewSelection(pt(0, 0), pt(0, 5))},
			want:  "<kbd>hello</kbd>",
			acted: true,
		},
		{
			name:  "unwrap enclosed",
			text:  "<kbd>hello</kbd>",
			sels:  []cursor.Selection{cursor.NewSelection(pt(0, 0), pt(0, 16))},
			want:  "hello",
			acted: true,
		},
		{
			name:  "unwrap at caret",
			text:  "Some <kbd>text</kbd> here",
			sels:  []cursor.Selection{cursor.NewCursorSelection(pt(0, 7))},
			want:  "Some text here",
			acted: true,
		},
		{
			name:  "caret outside tags",
			text:  "Plain text without kbd tags",
			sels:  []cursor.Selection{cursor.NewCursorSelection(pt(0, 0))},
			want:  "Plain text without kbd tags",
			acted: false,
		},
		{
			name: "multiple lines",
			text: "Ctrl\nAlt\n<kbd>Del</kbd>",
			sels: []cursor.Selection{
				cursor.NewSelection(pt(0, 0), pt(0, 4)),
				cursor.NewSelection(pt(1, 3), pt(1, 0)),
				cursor.NewCursorSelection(pt(2, 6)),
			},
			want:  "<kbd>Ctrl</kbd>\n<kbd>Alt</kbd>\nDel",
			acted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(WithContent(tt.text), WithSelections(tt.sels...))

			res := kbd.ToggleEditor(e)
			if res.Acted != tt.acted {
				t.Errorf("Acted = %v, want %v", res.Acted, tt.acted)
			}
			if e.Text() != tt.want {
				t.Errorf("text = %q, want %q", e.Text(), tt.want)
			}
		})
	}
}

func TestToggleGroupedUndo(t *testing.T) {
	const text = "a b c"
	e := New(WithContent(text), WithSelections(
		cursor.NewSelection(pt(0, 0), pt(0, 1)),
		cursor.NewSelection(pt(0, 2), pt(0, 3)),
		cursor.NewSelection(pt(0, 4), pt(0, 5)),
	))

	e.BeginGroup("toggle")
	res := kbd.ToggleEditor(e)
	e.EndGroup()

	if len(res.Edits) != 3 {
		t.Fatalf("expected 3 edits, got %d", len(res.Edits))
	}
	if err := e.Undo(); err != nil {
		t.Fatalf("Undo() error: %v", err)
	}
	if e.Text() != text {
		t.Errorf("one undo should revert the whole toggle, got %q", e.Text())
	}
	if e.CanUndo() {
		t.Error("expected a single undo unit")
	}
}

func TestToggleRevisionChangesOnlyWhenActed(t *testing.T) {
	e := New(WithContent("no tags"), WithSelections(cursor.NewCursorSelection(pt(0, 2))))
	rev := e.RevisionID()

	if kbd.ToggleEditor(e).Acted {
		t.Fatal("expected no action")
	}
	if e.RevisionID() != rev {
		t.Error("revision changed without an edit")
	}
}
