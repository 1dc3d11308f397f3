// Package buffer provides a thread-safe text buffer addressed either by
// byte offset or by line/column point.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Coordinate conversion between byte offsets and line/column positions
//   - Single range replacement and reverse-ordered batch edits
//   - Line ending detection and normalization
//   - Revision tracking for change management
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("press Ctrl+C")
//
//	start := buf.PointToOffset(buffer.Point{Line: 0, Column: 6})
//	buf.Replace(start, buf.Len(), "<kbd>Ctrl+C</kbd>")
//
// Position Types:
//
//   - ByteOffset: Raw byte position in the buffer
//   - Point: Line and column position (0-indexed, column in bytes)
//
// Content is stored with LF line endings. The line ending detected on load
// (or set with WithLineEnding) is restored by Export, so a file read with
// CRLF endings is written back with CRLF endings.
package buffer
