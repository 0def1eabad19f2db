// Package task provides the todo entry model, its JSON store and the
// operations the CLI performs on it.
package task

import (
	"fmt"
	"time"
)

// Status represents how far along an entry is.
type Status string

const (
	// StatusNotStarted indicates the entry has not been started.
	StatusNotStarted Status = "NotStarted"
	// StatusStarted indicates the entry is being worked on.
	StatusStarted Status = "Started"
	// StatusResolved indicates the entry is done.
	StatusResolved Status = "Resolved"
)

// IsValid returns true if the status is a known valid status.
func (s Status) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusStarted, StatusResolved:
		return true
	default:
		return false
	}
}

// IsResolved returns true if the entry is finished.
func (s Status) IsResolved() bool {
	return s == StatusResolved
}

// Label returns the status as shown in listings.
func (s Status) Label() string {
	switch s {
	case StatusNotStarted:
		return "Not Started"
	case StatusStarted:
		return "Started"
	case StatusResolved:
		return "Resolved"
	default:
		return string(s)
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Entry represents a single todo item.
type Entry struct {
	// ID is the word that names the entry (e.g., "lantern").
	ID string `json:"id"`
	// Task is the text the user typed.
	Task string `json:"task"`
	// Deadline is when the entry is due, nil if it has none.
	Deadline *time.Time `json:"deadline"`
	// Status is the current state of the entry.
	Status Status `json:"status"`
	// Priority is a small number; zero means no priority was given.
	Priority uint8 `json:"priority"`
}

// NewEntry creates a not-started entry.
func NewEntry(id, text string, priority uint8, deadline *time.Time) *Entry {
	e := &Entry{
		ID:       id,
		Task:     text,
		Status:   StatusNotStarted,
		Priority: priority,
	}
	if deadline != nil {
		d := *deadline
		e.Deadline = &d
	}
	return e
}

// HasDeadline reports whether the entry has a deadline.
func (e *Entry) HasDeadline() bool {
	return e.Deadline != nil
}

// Validate checks an entry before it is added: it needs an ID, task text
// and a known status.
func (e *Entry) Validate() error {
	if err := e.validateStored(); err != nil {
		return err
	}
	if e.Task == "" {
		return fmt.Errorf("entry %q has no task text", e.ID)
	}
	return nil
}

// validateStored checks an entry read from disk. Empty task text is
// accepted there, since older data files contain such entries.
func (e *Entry) validateStored() error {
	if e.ID == "" {
		return fmt.Errorf("entry ID is required")
	}
	if !e.Status.IsValid() {
		return fmt.Errorf("entry %q has invalid status: %s", e.ID, e.Status)
	}
	return nil
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	clone := *e
	if e.Deadline != nil {
		d := *e.Deadline
		clone.Deadline = &d
	}
	return &clone
}
