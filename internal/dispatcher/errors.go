package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNoHandler indicates no command is registered under an id.
	ErrNoHandler = errors.New("dispatcher: no handler for command")

	// ErrDuplicateCommand indicates a command id is already registered.
	ErrDuplicateCommand = errors.New("dispatcher: command already registered")

	// ErrInvalidCommand indicates a command is missing its id or handler.
	ErrInvalidCommand = errors.New("dispatcher: invalid command")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")
)
