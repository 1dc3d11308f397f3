package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestOperationString(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Operation(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestWatchRegistersFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")

	w, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() error: %v", err)
	}
	files := w.WatchedFiles()
	if len(files) != 1 || files[0] != path {
		t.Errorf("WatchedFiles() = %v", files)
	}

	if err := w.Unwatch(path); err != nil {
		t.Fatalf("Unwatch() error: %v", err)
	}
	if len(w.WatchedFiles()) != 0 {
		t.Error("expected no watched files after Unwatch")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	if err := w.Watch(filepath.Join(t.TempDir(), "missing", "settings.toml")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestWatchAfterClose(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	_ = w.Close()

	if err := w.Watch(filepath.Join(t.TempDir(), "x.toml")); err != ErrWatcherClosed {
		t.Errorf("expected ErrWatcherClosed, got %v", err)
	}
}

func TestRunDeliversDebouncedChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	other := filepath.Join(dir, "other.toml")

	w, err := New(WithDebounce(20 * time.Millisecond))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() error: %v", err)
	}

	var mu sync.Mutex
	var events []Event
	got := make(chan struct{}, 1)
	w.OnChange(func(e Event) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
		select {
		case got <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte(`kbdStyle = "github"`), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-got:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	// Give any stray events a chance to arrive.
	time.Sleep(100 * time.Millisecond)
	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run() error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(events) != 1 {
		t.Errorf("expected 1 coalesced event, got %d: %v", len(events), events)
	}
	if events[0].Path != path {
		t.Errorf("event path = %q, want %q", events[0].Path, path)
	}
}

func TestQueueEventCoalesces(t *testing.T) {
	w := &Watcher{pendingFiles: make(map[string]pendingEvent)}
	now := time.Now()

	w.queueEvent(Event{Path: "/a", Op: OpCreate, Time: now})
	w.queueEvent(Event{Path: "/a", Op: OpWrite, Time: now.Add(time.Millisecond)})
	if got := w.pendingFiles["/a"].Op; got != OpCreate {
		t.Errorf("create + write = %s, want create", got)
	}

	w.queueEvent(Event{Path: "/a", Op: OpRemove, Time: now.Add(2 * time.Millisecond)})
	if got := w.pendingFiles["/a"].Op; got != OpRemove {
		t.Errorf("any + remove = %s, want remove", got)
	}
}

func TestSafeCallHandlerRecovers(t *testing.T) {
	w := &Watcher{}
	w.handlers = []Handler{
		func(Event) { panic("boom") },
	}

	w.emitEvent(Event{Path: "/x"})
}
