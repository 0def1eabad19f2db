package errors

import (
	"fmt"
	"strings"
)

// Configuration-related error constructors.

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *TodoError {
	return &TodoError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes

Or regenerate it with defaults:
  todo init --force`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *TodoError {
	suggestion := fmt.Sprintf("Fix the %q field in config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &TodoError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}

// HomeDirNotFound creates an error when the default data directory cannot be derived.
func HomeDirNotFound(cause error) *TodoError {
	return &TodoError{
		Kind:    ErrConfig,
		Message: "couldn't find your home folder",
		Cause:   cause,
		Suggestion: `Point todo at a data directory explicitly:
  todo --data-dir /path/to/todo.d list
  export TODO_DATA_DIR=/path/to/todo.d`,
	}
}
