package loader

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ErrNotObject indicates a JSON settings document whose root is not an object.
var ErrNotObject = errors.New("json root is not an object")

// JSONLoader loads configuration from JSON files such as a plugin's
// data.json.
type JSONLoader struct {
	fs   FileSystem
	path string
}

// NewJSONLoader creates a new JSON loader for the given path.
func NewJSONLoader(path string) *JSONLoader {
	return NewJSONLoaderWithFS(DefaultFS(), path)
}

// NewJSONLoaderWithFS creates a JSON loader with a custom file system.
func NewJSONLoaderWithFS(fs FileSystem, path string) *JSONLoader {
	return &JSONLoader{fs: fs, path: path}
}

// Load reads configuration from the configured path.
func (l *JSONLoader) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads configuration from a specific path.
func (l *JSONLoader) LoadFrom(path string) (map[string]any, error) {
	data, err := readOptional(l.fs, path)
	if err != nil || data == nil {
		return nil, err
	}
	return l.parse(path, data)
}

// LoadFromReader reads configuration from an io.Reader.
func (l *JSONLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return l.parse("<reader>", data)
}

// Save patches values into the existing document at the configured path.
// Keys not present in values are left untouched.
func (l *JSONLoader) Save(values map[string]any) error {
	existing, err := readOptional(l.fs, l.path)
	if err != nil {
		return err
	}

	fresh := len(strings.TrimSpace(string(existing))) == 0
	data := existing
	if fresh {
		data = []byte("{}")
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		data, err = sjson.SetBytes(data, escapePath(k), values[k])
		if err != nil {
			return fmt.Errorf("encoding %s: %w", l.path, err)
		}
	}

	if fresh {
		data = pretty.Pretty(data)
	}
	return l.fs.WriteFile(l.path, data)
}

func (l *JSONLoader) parse(source string, data []byte) (map[string]any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: source, Message: "invalid json"}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, &ParseError{Path: source, Message: ErrNotObject.Error(), Err: ErrNotObject}
	}

	config, _ := root.Value().(map[string]any)
	return config, nil
}

// escapePath escapes gjson/sjson path metacharacters in a literal key.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
