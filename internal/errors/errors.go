// Package errors provides error types with actionable suggestions for todo.
// Errors carry a kind sentinel so callers can branch with errors.Is.
package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrStore indicates the data file could not be read or written.
	ErrStore = errors.New("store error")
	// ErrDeadline indicates a deadline that could not be understood.
	ErrDeadline = errors.New("deadline error")
	// ErrNames indicates a failure to produce a task identifier.
	ErrNames = errors.New("name error")
	// ErrNotFound indicates a task or file was not found.
	ErrNotFound = errors.New("not found")
)

// TodoError is a user-facing failure: a kind for errors.Is, a message,
// optional details and a suggestion on how to fix it.
type TodoError struct {
	Kind       error
	Message    string
	Suggestion string
	Cause      error
	Details    map[string]string
}

// Error implements the error interface.
func (e *TodoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *TodoError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches the target.
func (e *TodoError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format renders the error for the terminal: the message, then sorted
// details, then the suggestion.
func (e *TodoError) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Error: %s\n", e.Error())

	if len(e.Details) > 0 {
		sb.WriteString("\nDetails:\n")
		for _, k := range slices.Sorted(maps.Keys(e.Details)) {
			fmt.Fprintf(&sb, "  %s: %s\n", k, e.Details[k])
		}
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&sb, "\nSuggestion: %s\n", e.Suggestion)
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *TodoError) WithDetails(key, value string) *TodoError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *TodoError) WithCause(cause error) *TodoError {
	e.Cause = cause
	return e
}

// New creates a new TodoError with the given kind and message.
func New(kind error, message string) *TodoError {
	return &TodoError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *TodoError {
	return &TodoError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *TodoError {
	return &TodoError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// As finds the first TodoError in err's chain.
func As(err error) (*TodoError, bool) {
	var te *TodoError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
