package loader

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/tidwall/gjson"
)

// memFS is an in-memory FileSystem for tests.
type memFS struct {
	files map[string][]byte
}

func newMemFS(files map[string]string) *memFS {
	m := &memFS{files: make(map[string][]byte)}
	for k, v := range files {
		m.files[k] = []byte(v)
	}
	return m
}

func (m *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m *memFS) WriteFile(path string, data []byte) error {
	m.files[path] = append([]byte(nil), data...)
	return nil
}

func (m *memFS) Stat(path string) (fs.FileInfo, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return memFileInfo{name: path, size: int64(len(data))}, nil
}

type memFileInfo struct {
	name string
	size int64
}

func (fi memFileInfo) Name() string       { return fi.name }
func (fi memFileInfo) Size() int64        { return fi.size }
func (fi memFileInfo) Mode() fs.FileMode  { return 0o644 }
func (fi memFileInfo) ModTime() time.Time { return time.Time{} }
func (fi memFileInfo) IsDir() bool        { return false }
func (fi memFileInfo) Sys() any           { return nil }

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"settings.toml", FormatTOML},
		{"settings.YAML", FormatYAML},
		{"settings.yml", FormatYAML},
		{"data.json", FormatJSON},
		{"settings.ini", FormatUnknown},
		{"settings", FormatUnknown},
	}

	for _, tt := range tests {
		if got := FormatOf(tt.path); got != tt.want {
			t.Errorf("FormatOf(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestForPathUnsupported(t *testing.T) {
	if _, err := ForPath(newMemFS(nil), "settings.ini"); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		path    string
		content string
	}{
		{"/cfg/settings.toml", "kbdStyle = \"github\"\n"},
		{"/cfg/settings.yaml", "kbdStyle: github\n"},
		{"/cfg/data.json", `{"kbdStyle": "github"}`},
	}

	for _, tt := range tests {
		t.Run(FormatOf(tt.path).String(), func(t *testing.T) {
			codec, err := ForPath(newMemFS(map[string]string{tt.path: tt.content}), tt.path)
			if err != nil {
				t.Fatalf("ForPath() error: %v", err)
			}
			got, err := codec.Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if got["kbdStyle"] != "github" {
				t.Errorf("kbdStyle = %v, want github", got["kbdStyle"])
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	for _, path := range []string{"/x.toml", "/x.yaml", "/x.json"} {
		codec, err := ForPath(newMemFS(nil), path)
		if err != nil {
			t.Fatalf("ForPath(%q) error: %v", path, err)
		}
		got, err := codec.Load()
		if err != nil || got != nil {
			t.Errorf("Load(%q) = %v, %v; want nil, nil", path, got, err)
		}
	}
}

func TestLoadEmptyFile(t *testing.T) {
	for _, path := range []string{"/x.yaml", "/x.json"} {
		codec, _ := ForPath(newMemFS(map[string]string{path: "  \n"}), path)
		got, err := codec.Load()
		if err != nil || len(got) != 0 {
			t.Errorf("Load(%q) = %v, %v; want empty", path, got, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{"toml", "/s.toml", "kbdStyle = \n"},
		{"yaml", "/s.yaml", "kbdStyle: [github\n"},
		{"json", "/s.json", `{"kbdStyle": }`},
		{"json array root", "/s.json", `["github"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, _ := ForPath(newMemFS(map[string]string{tt.path: tt.content}), tt.path)
			_, err := codec.Load()
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if perr.Path != tt.path {
				t.Errorf("ParseError.Path = %q, want %q", perr.Path, tt.path)
			}
		})
	}
}

func TestTOMLParseErrorPosition(t *testing.T) {
	l := NewTOMLLoaderWithFS(newMemFS(map[string]string{"/s.toml": "a = 1\nkbdStyle = \n"}), "/s.toml")
	_, err := l.Load()

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Line != 2 {
		t.Errorf("Line = %d, want 2", perr.Line)
	}
	if !strings.Contains(perr.Error(), "line 2") {
		t.Errorf("Error() = %q", perr.Error())
	}
}

func TestJSONRootNotObject(t *testing.T) {
	l := NewJSONLoaderWithFS(newMemFS(nil), "/d.json")
	_, err := l.LoadFromReader(strings.NewReader(`"github"`))
	if !errors.Is(err, ErrNotObject) {
		t.Errorf("expected ErrNotObject, got %v", err)
	}
}

func TestJSONSavePreservesUnknownKeys(t *testing.T) {
	fsys := newMemFS(map[string]string{
		"/d.json": `{"other": {"nested": true}, "kbdStyle": "default"}`,
	})
	l := NewJSONLoaderWithFS(fsys, "/d.json")

	if err := l.Save(map[string]any{"kbdStyle": "github"}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data := fsys.files["/d.json"]
	if got := gjson.GetBytes(data, "kbdStyle").String(); got != "github" {
		t.Errorf("kbdStyle = %q, want github", got)
	}
	if !gjson.GetBytes(data, "other.nested").Bool() {
		t.Errorf("unknown key lost: %s", data)
	}
}

func TestJSONSaveFreshFile(t *testing.T) {
	fsys := newMemFS(nil)
	l := NewJSONLoaderWithFS(fsys, "/d.json")

	if err := l.Save(map[string]any{"kbdStyle": "github", "a.b": 1}); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data := fsys.files["/d.json"]
	if !strings.Contains(string(data), "\n") {
		t.Errorf("fresh file should be pretty printed: %s", data)
	}

	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got["kbdStyle"] != "github" {
		t.Errorf("kbdStyle = %v", got["kbdStyle"])
	}
	if got["a.b"] != float64(1) {
		t.Errorf("dotted key should be stored literally, got %v", got)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, path := range []string{"/s.toml", "/s.yaml"} {
		fsys := newMemFS(nil)
		codec, _ := ForPath(fsys, path)

		if err := codec.Save(map[string]any{"kbdStyle": "stackoverflow"}); err != nil {
			t.Fatalf("Save(%q) error: %v", path, err)
		}
		got, err := codec.Load()
		if err != nil {
			t.Fatalf("Load(%q) error: %v", path, err)
		}
		if got["kbdStyle"] != "stackoverflow" {
			t.Errorf("%s: kbdStyle = %v", path, got["kbdStyle"])
		}
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"kbdStyle": "default",
		"nested":   map[string]any{"a": 1, "b": 2},
	}
	src := map[string]any{
		"kbdStyle": "github",
		"nested":   map[string]any{"b": 3},
		"extra":    true,
	}

	got := DeepMerge(dst, src)

	if got["kbdStyle"] != "github" || got["extra"] != true {
		t.Errorf("top-level merge wrong: %v", got)
	}
	nested := got["nested"].(map[string]any)
	if nested["a"] != 1 || nested["b"] != 3 {
		t.Errorf("nested merge wrong: %v", nested)
	}
}

func TestClone(t *testing.T) {
	src := map[string]any{
		"nested": map[string]any{"a": 1},
		"list":   []any{"x", map[string]any{"y": 2}},
	}

	c := Clone(src)
	c["nested"].(map[string]any)["a"] = 9
	c["list"].([]any)[0] = "changed"

	if src["nested"].(map[string]any)["a"] != 1 {
		t.Error("Clone shares nested maps")
	}
	if src["list"].([]any)[0] != "x" {
		t.Error("Clone shares slices")
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}

func TestEnvLoader(t *testing.T) {
	t.Setenv("KBDWRAP_STYLE", "github")
	t.Setenv("KBDWRAP_TEST_FLAG", "yes")
	t.Setenv("KBDWRAP_TEST_NUM", "42")
	t.Setenv("KBDWRAP_TEST_EMPTY", "")

	l := NewEnvLoader()
	l.AddMapping("KBDWRAP_TEST_FLAG", "flag")
	l.AddMapping("KBDWRAP_TEST_NUM", "num")
	l.AddMapping("KBDWRAP_TEST_EMPTY", "empty")

	got, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got["kbdStyle"] != "github" {
		t.Errorf("kbdStyle = %v", got["kbdStyle"])
	}
	if got["flag"] != true {
		t.Errorf("flag = %v, want true", got["flag"])
	}
	if got["num"] != int64(42) {
		t.Errorf("num = %v (%T), want int64 42", got["num"], got["num"])
	}
	if _, ok := got["empty"]; ok {
		t.Error("empty variables should be skipped")
	}
}
