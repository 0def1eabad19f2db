package errors

import (
	"fmt"
)

// Store, deadline and naming error constructors.

// StoreCorrupted creates an error for a data file that exists but cannot be decoded.
func StoreCorrupted(path string, cause error) *TodoError {
	return &TodoError{
		Kind:    ErrStore,
		Message: "corrupted data",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Fix the JSON by hand or move the file aside to start with an empty list.",
	}
}

// StoreUnreadable creates an error for a data file that exists but cannot be read.
func StoreUnreadable(path string, cause error) *TodoError {
	return &TodoError{
		Kind:    ErrStore,
		Message: "failed to read task store",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
	}
}

// StoreWriteFailed creates an error for a data file that could not be written.
func StoreWriteFailed(path string, cause error) *TodoError {
	return &TodoError{
		Kind:    ErrStore,
		Message: "failed to write task store",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check that the data directory exists and is writable.",
	}
}

// TaskNotFound creates an error when a specific task is not found.
func TaskNotFound(id string) *TodoError {
	return &TodoError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("task not found: %s", id),
		Details: map[string]string{
			"task_id": id,
		},
		Suggestion: "List tasks with: todo list",
	}
}

// InvalidDeadline creates an error for a deadline that is neither a keyword nor a valid day.
func InvalidDeadline(input string, cause error) *TodoError {
	return &TodoError{
		Kind:    ErrDeadline,
		Message: fmt.Sprintf("I don't understand the date you asked for: %q", input),
		Cause:   cause,
		Suggestion: `Deadlines can be one of:
  tomorrow, today, tonight, evening, week, next week
  or a day of this month as a single number (e.g. 14)`,
	}
}

// WordListMissing creates an error for an unreadable word list.
func WordListMissing(path string, cause error) *TodoError {
	return &TodoError{
		Kind:    ErrNames,
		Message: "failed to load word list",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Create the default word list with:
  todo init`,
	}
}

// WordListEmpty creates an error for a word list with no usable words.
func WordListEmpty(path string) *TodoError {
	return &TodoError{
		Kind:    ErrNames,
		Message: "word list is empty",
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Add one word per line to the word list.",
	}
}

// NamesExhausted creates an error when no unused identifier was drawn in time.
func NamesExhausted(attempts, inUse int) *TodoError {
	return &TodoError{
		Kind:    ErrNames,
		Message: fmt.Sprintf("no unused task name found after %d attempts", attempts),
		Details: map[string]string{
			"names_in_use": fmt.Sprint(inUse),
		},
		Suggestion: `Add more words to the word list, remove finished tasks,
or raise name_attempts in config.yaml.`,
	}
}
