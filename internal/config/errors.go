package config

import (
	"errors"
	"fmt"

	"github.com/dshills/kbdwrap/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidStyle indicates a kbd style outside the supported set.
	ErrInvalidStyle = errors.New("invalid kbd style")

	// ErrTypeMismatch indicates the value type doesn't match the expected type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Key is the setting that failed validation.
	Key string
	// Value is the invalid value.
	Value any
	// Err is ErrInvalidStyle or ErrTypeMismatch.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v (value: %v)", e.Key, e.Err, e.Value)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
