package errors

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable = errors.New("pass catalog unavailable")

	ErrMalformed = errors.New("pass catalog malformed")
)

// RowError locates a malformed data row. Data rows count from 1; the header
// line is skipped unparsed and never reported.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// Unwrap exposes both ErrMalformed and the parse cause to errors.Is/As.
func (e *RowError) Unwrap() []error {
	return []error{ErrMalformed, e.Err}
}

func NewRowError(row int, err error) *RowError {
	return &RowError{Row: row, Err: err}
}
