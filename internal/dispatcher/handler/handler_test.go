package handler_test

import (
	"errors"
	"testing"

	"github.com/dshills/kbdwrap/internal/dispatcher/handler"
	"github.com/dshills/kbdwrap/internal/engine"
	"github.com/dshills/kbdwrap/internal/engine/cursor"
	"github.com/dshills/kbdwrap/internal/kbd"
)

func TestHandlerFunc(t *testing.T) {
	called := false
	fn := handler.NewHandlerFunc(func(ed kbd.Editor) handler.Result {
		called = true
		return handler.Success()
	})

	result := fn.Handle(engine.New())

	if !called {
		t.Error("expected handler func to be called")
	}
	if result.Status != handler.StatusOK {
		t.Errorf("expected StatusOK, got %v", result.Status)
	}
}

func TestHandlerFuncNil(t *testing.T) {
	fn := &handler.HandlerFunc{}
	result := fn.Handle(engine.New())

	if result.Status != handler.StatusError {
		t.Errorf("expected StatusError for nil func, got %v", result.Status)
	}
}

func TestKbdToggleWraps(t *testing.T) {
	ed := engine.New(
		engine.WithContent("press Enter"),
		engine.WithSelections(cursor.NewSelection(engine.Point{Line: 0, Column: 6}, engine.Point{Line: 0, Column: 11})),
	)

	result := handler.KbdToggle{}.Handle(ed)

	if !result.IsOK() {
		t.Fatalf("expected StatusOK, got %v", result.Status)
	}
	if len(result.Edits) != 1 {
		t.Errorf("expected 1 edit, got %d", len(result.Edits))
	}
	if result.GetDataInt("dropped") != 0 {
		t.Errorf("expected 0 dropped, got %d", result.GetDataInt("dropped"))
	}
	if ed.Text() != "press <kbd>Enter</kbd>" {
		t.Errorf("unexpected text %q", ed.Text())
	}
}

func TestKbdToggleNoOp(t *testing.T) {
	ed := engine.New(engine.WithContent("plain"))

	result := handler.KbdToggle{}.Handle(ed)

	if result.Status != handler.StatusNoOp {
		t.Errorf("expected StatusNoOp, got %v", result.Status)
	}
	if ed.Text() != "plain" {
		t.Errorf("text changed to %q", ed.Text())
	}
}

func TestKbdToggleNilEditor(t *testing.T) {
	if result := (handler.KbdToggle{}).Handle(nil); !result.IsError() {
		t.Errorf("expected StatusError, got %v", result.Status)
	}
}

func TestResultStatus(t *testing.T) {
	tests := []struct {
		status   handler.ResultStatus
		expected string
	}{
		{handler.StatusOK, "ok"},
		{handler.StatusNoOp, "no-op"},
		{handler.StatusError, "error"},
		{handler.StatusCancelled, "cancelled"},
		{handler.ResultStatus(99), "unknown"},
	}

	for _, tc := range tests {
		if tc.status.String() != tc.expected {
			t.Errorf("ResultStatus(%d).String() = %q, want %q", tc.status, tc.status.String(), tc.expected)
		}
	}
}

func TestResultConstructors(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name   string
		result handler.Result
		status handler.ResultStatus
		msg    string
	}{
		{"success", handler.Success(), handler.StatusOK, ""},
		{"success with message", handler.SuccessWithMessage("done"), handler.StatusOK, "done"},
		{"noop", handler.NoOp(), handler.StatusNoOp, ""},
		{"noop with message", handler.NoOpWithMessage("nothing"), handler.StatusNoOp, "nothing"},
		{"error", handler.Error(errBoom), handler.StatusError, ""},
		{"cancelled", handler.Cancelled(), handler.StatusCancelled, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Status != tt.status {
				t.Errorf("Status = %v, want %v", tt.result.Status, tt.status)
			}
			if tt.result.Message != tt.msg {
				t.Errorf("Message = %q, want %q", tt.result.Message, tt.msg)
			}
		})
	}

	if r := handler.Errorf("bad %d", 7); r.Error == nil || r.Error.Error() != "bad 7" {
		t.Errorf("Errorf() error = %v", r.Error)
	}
}

func TestResultWithData(t *testing.T) {
	base := handler.Success().WithData("a", 1)
	derived := base.WithData("b", int64(2)).WithMessage("m")

	if _, ok := base.GetData("b"); ok {
		t.Error("WithData should not mutate the receiver's map")
	}
	if derived.GetDataInt("a") != 1 || derived.GetDataInt("b") != 2 {
		t.Errorf("unexpected data %v", derived.Data)
	}
	if derived.GetDataInt("missing") != 0 {
		t.Error("missing key should read as 0")
	}
	if derived.Message != "m" {
		t.Errorf("Message = %q", derived.Message)
	}
}
