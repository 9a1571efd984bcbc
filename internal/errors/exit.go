package errors

import "errors"

// Exit codes reported by one-shot commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates a display name sanitized to nothing.
	ExitValidationError = 2

	// ExitMissingDescriptor indicates the command ran outside a generated project.
	ExitMissingDescriptor = 3

	// ExitFileSystemError indicates a directory or file write failed.
	ExitFileSystemError = 4

	// ExitMissingAnchor indicates the layout file lacks an expected marker.
	ExitMissingAnchor = 5
)

// ExitError carries an exit code through cobra's error return.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed indicates the command layer already printed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// CodeFor maps a sentinel error to its exit code.
func CodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrMissingDescriptor):
		return ExitMissingDescriptor
	case errors.Is(err, ErrFileSystem):
		return ExitFileSystemError
	case errors.Is(err, ErrMissingAnchor):
		return ExitMissingAnchor
	default:
		return ExitGeneralError
	}
}
