package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	todoerrors "github.com/dbmrq/todo/internal/errors"
)

// NameGenerator picks an identifier that is not already taken.
type NameGenerator interface {
	Pick(taken func(string) bool) (string, error)
}

// Manager provides the operations behind the CLI verbs.
// It wraps a Store and a NameGenerator.
type Manager struct {
	store *Store
	names NameGenerator
}

// NewManager creates a new Manager wrapping the given Store.
// names may be nil when the caller never adds entries.
func NewManager(store *Store, names NameGenerator) *Manager {
	return &Manager{
		store: store,
		names: names,
	}
}

// Store returns the underlying store.
func (m *Manager) Store() *Store {
	return m.store
}

// Load loads entries from the store file.
func (m *Manager) Load() error {
	return m.store.Load()
}

// Save persists entries to the store file.
func (m *Manager) Save() error {
	return m.store.Save()
}

// All returns all entries in insertion order.
func (m *Manager) All() []*Entry {
	return m.store.Entries()
}

// Add creates a not-started entry under a freshly picked name.
func (m *Manager) Add(text string, deadline *time.Time, priority uint8) (*Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("task text is required")
	}
	if m.names == nil {
		return nil, todoerrors.New(todoerrors.ErrNames, "no word list loaded")
	}

	id, err := m.names.Pick(m.store.Exists)
	if err != nil {
		return nil, err
	}

	entry := NewEntry(id, text, priority, deadline)
	if err := m.store.Add(entry); err != nil {
		return nil, err
	}
	return entry.Clone(), nil
}

// Start marks an entry as started.
func (m *Manager) Start(id string) error {
	return m.store.SetStatus(id, StatusStarted)
}

// Resolve marks an entry as resolved.
func (m *Manager) Resolve(id string) error {
	return m.store.SetStatus(id, StatusResolved)
}

// SetStatus sets the status of an entry.
func (m *Manager) SetStatus(id string, status Status) error {
	return m.store.SetStatus(id, status)
}

// Remove deletes every entry with the given ID.
// Returns an ErrNotFound error if nothing was removed.
func (m *Manager) Remove(id string) error {
	if m.store.Remove(id) == 0 {
		return todoerrors.TaskNotFound(id)
	}
	return nil
}

// Suggest returns up to limit existing IDs that look like id, best match first.
// Both abbreviations ("lant" for "lantern") and overlong forms ("lanterns")
// are matched.
func (m *Manager) Suggest(id string, limit int) []string {
	id = strings.TrimSpace(id)
	if id == "" || limit <= 0 {
		return nil
	}

	ids := m.store.IDs()
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if !seen[s] && len(out) < limit {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, match := range fuzzy.Find(id, ids) {
		add(match.Str)
	}
	for _, candidate := range ids {
		if len(fuzzy.Find(candidate, []string{id})) > 0 {
			add(candidate)
		}
	}
	return out
}
