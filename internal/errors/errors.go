// Package errors provides sentinel errors for the forge CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a display name sanitized to an empty identifier.
	ErrValidation = errors.New("validation error")

	// ErrMissingDescriptor indicates a feature addition was attempted outside
	// a generated project root (no descriptor file found).
	ErrMissingDescriptor = errors.New("missing project descriptor")

	// ErrFileSystem indicates a directory or file creation/write failure,
	// scoped to a single file.
	ErrFileSystem = errors.New("file system error")

	// ErrMissingAnchor indicates a patch target lacks the expected marker line.
	ErrMissingAnchor = errors.New("missing anchor")
)

// DetailError captures structured error information for user-facing reports.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewMissingDescriptorError creates a missing descriptor error for a directory.
func NewMissingDescriptorError(dir string) error {
	return &DetailError{
		Type:     "missing project descriptor",
		Message:  "no go.mod found; this directory is not a generated project root",
		Location: dir,
		Hint:     "Run the command from the root of a project created with 'forge new'.",
		Cause:    ErrMissingDescriptor,
	}
}

// NewFileSystemError creates a file system error scoped to a single path.
func NewFileSystemError(message, location string, cause error) error {
	return &DetailError{
		Type:     "file system error",
		Message:  message,
		Location: location,
		Cause:    fmt.Errorf("%w: %w", ErrFileSystem, cause),
	}
}

// NewMissingAnchorError creates a missing anchor error for a patch target.
func NewMissingAnchorError(anchor, location string) error {
	return &DetailError{
		Type:     "missing anchor",
		Message:  fmt.Sprintf("marker line %q not found", anchor),
		Location: location,
		Hint:     "The layout file may have been edited; restore the marker comment to re-enable patching.",
		Cause:    ErrMissingAnchor,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
