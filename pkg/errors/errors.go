package errors

import (
	"errors"
	"fmt"
)

const (
	CodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	CodeCatalogMalformed   = "CATALOG_MALFORMED"
	CodeInvalidSelection   = "INVALID_SELECTION"
	CodeInvalidConfig      = "INVALID_CONFIG"
	CodeInternal           = "INTERNAL_ERROR"
)

const (
	ExitOK           = 0
	ExitCatalog      = 1
	ExitInvalidInput = 2
	ExitInternal     = 3
)

const InvalidInputMessage = "invalid input"

type AppError struct {
	Code     string
	Message  string
	Details  map[string]any
	Err      error
	exitCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ExitCode() int {
	return e.exitCode
}

func CatalogUnavailable(path string, err error) *AppError {
	return &AppError{
		Code:     CodeCatalogUnavailable,
		Message:  "pass catalog could not be read",
		Details:  map[string]any{"path": path},
		Err:      err,
		exitCode: ExitCatalog,
	}
}

func CatalogMalformed(path string, row int, err error) *AppError {
	return &AppError{
		Code:    CodeCatalogMalformed,
		Message: "pass catalog contains an invalid row",
		Details: map[string]any{
			"path": path,
			"row":  row,
		},
		Err:      err,
		exitCode: ExitCatalog,
	}
}

// InvalidSelection always carries the same user-facing message; the cause
// (unparseable line, out of range index, end of input) is kept in Err.
func InvalidSelection(err error) *AppError {
	return &AppError{
		Code:     CodeInvalidSelection,
		Message:  InvalidInputMessage,
		Err:      err,
		exitCode: ExitInvalidInput,
	}
}

func InvalidConfig(message string) *AppError {
	return &AppError{
		Code:     CodeInvalidConfig,
		Message:  message,
		exitCode: ExitInternal,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:     CodeInternal,
		Message:  message,
		Err:      err,
		exitCode: ExitInternal,
	}
}

func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}

func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// ExitCode maps any error to a process exit status. nil maps to ExitOK.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return AsAppError(err).ExitCode()
}
