package cli

import (
	"errors"
	"fmt"

	"ftm/internal/fastfetch"
)

// Exit codes
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitToolMissing = 127
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode maps an error to the process exit status
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, fastfetch.ErrToolMissing) {
		return ExitToolMissing
	}
	return ExitFailure
}
