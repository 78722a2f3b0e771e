package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNoInput     = errors.New("no input available")
	ErrNotANumber  = errors.New("selection is not a number")
	ErrOutOfRange  = errors.New("selection is out of range")
	ErrReadFailure = errors.New("failed to read selection")
)

// SelectionError records which state rejected which line.
type SelectionError struct {
	State string
	Input string
	Err   error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("%s: %q: %v", e.State, e.Input, e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}

func NewSelectionError(state, input string, err error) *SelectionError {
	return &SelectionError{State: state, Input: input, Err: err}
}
