package app

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/dshills/kbdwrap/internal/engine"
)

// Document is an open file with its editing engine.
type Document struct {
	// Path is the file path (empty for documents read from a stream).
	Path string

	// Name is the display name.
	Name string

	// Engine holds the text, selections and undo history.
	Engine *engine.Engine

	// saved is the exported content as last read or written.
	saved string
}

// NewDocument creates a document from content, keeping its line endings.
func NewDocument(path string, content []byte) (*Document, error) {
	eng, err := engine.NewFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	if path == "" {
		name = "Untitled"
	}

	return &Document{
		Path:   path,
		Name:   name,
		Engine: eng,
		saved:  eng.Export(),
	}, nil
}

// Content returns the document text with its original line endings.
func (d *Document) Content() string {
	return d.Engine.Export()
}

// IsModified reports whether the content differs from the last save.
func (d *Document) IsModified() bool {
	return d.Content() != d.saved
}

// Save writes the document back to its path.
func (d *Document) Save() error {
	if d.Path == "" {
		return NewOperationError("save", d.Name, ErrNoFilePath)
	}

	content := d.Content()
	if err := os.WriteFile(d.Path, []byte(content), 0o644); err != nil {
		return NewOperationError("save", d.Path, err)
	}
	d.saved = content
	return nil
}
