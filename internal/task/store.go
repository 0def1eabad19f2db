package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	todoerrors "github.com/dbmrq/todo/internal/errors"
)

// DefaultStoreFilename is the default filename for entry storage.
const DefaultStoreFilename = "data.json"

// Document is the JSON layout of the data file.
type Document struct {
	Entries     []*Entry  `json:"entries"`
	LastUpdated time.Time `json:"last_updated"`
}

// Store reads and writes entries to a JSON file.
// Every Load replaces the in-memory list; every Save overwrites the file.
type Store struct {
	path string
	now  func() time.Time
	doc  *Document
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock sets the clock used to stamp last_updated.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a new Store instance for the given path.
// It does not load or create the file; call Load() or Save() for that.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path: path,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.doc = s.emptyDocument()
	return s
}

// NewStoreInDir creates a Store for the default data.json in the given directory.
func NewStoreInDir(dir string, opts ...StoreOption) *Store {
	return NewStore(filepath.Join(dir, DefaultStoreFilename), opts...)
}

func (s *Store) emptyDocument() *Document {
	return &Document{
		Entries:     []*Entry{},
		LastUpdated: s.now(),
	}
}

// Path returns the file path of the store.
func (s *Store) Path() string {
	return s.path
}

// Load reads entries from the JSON file.
// A missing file yields an empty store; an unreadable or malformed one is an error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.doc = s.emptyDocument()
			return nil
		}
		return todoerrors.StoreUnreadable(s.path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return todoerrors.StoreCorrupted(s.path, err)
	}
	if doc.Entries == nil {
		doc.Entries = []*Entry{}
	}
	for i, e := range doc.Entries {
		if e == nil {
			return todoerrors.StoreCorrupted(s.path, fmt.Errorf("entry %d is null", i))
		}
		if err := e.validateStored(); err != nil {
			return todoerrors.StoreCorrupted(s.path, err)
		}
	}

	s.doc = &doc
	return nil
}

// Save writes entries to the JSON file.
// Creates parent directories if they don't exist.
func (s *Store) Save() error {
	s.doc.LastUpdated = s.now()

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return todoerrors.StoreWriteFailed(s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return todoerrors.StoreWriteFailed(s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return todoerrors.StoreWriteFailed(s.path, err)
	}

	return nil
}

// Entries returns a copy of all entries in insertion order.
func (s *Store) Entries() []*Entry {
	entries := make([]*Entry, len(s.doc.Entries))
	for i, e := range s.doc.Entries {
		entries[i] = e.Clone()
	}
	return entries
}

// IDs returns the identifiers of all entries in insertion order.
func (s *Store) IDs() []string {
	ids := make([]string, len(s.doc.Entries))
	for i, e := range s.doc.Entries {
		ids[i] = e.ID
	}
	return ids
}

// Count returns the total number of entries.
func (s *Store) Count() int {
	return len(s.doc.Entries)
}

// Find returns the first entry with the given ID.
func (s *Store) Find(id string) (*Entry, bool) {
	for _, e := range s.doc.Entries {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return nil, false
}

// Exists checks if an entry with the given ID exists.
func (s *Store) Exists(id string) bool {
	_, ok := s.Find(id)
	return ok
}

// Add appends an entry to the store.
// Returns an error if the entry is invalid or its ID is already used.
func (s *Store) Add(entry *Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if s.Exists(entry.ID) {
		return fmt.Errorf("entry with ID %q already exists", entry.ID)
	}
	s.doc.Entries = append(s.doc.Entries, entry.Clone())
	return nil
}

// Remove deletes every entry with the given ID and returns how many were removed.
func (s *Store) Remove(id string) int {
	kept := s.doc.Entries[:0]
	removed := 0
	for _, e := range s.doc.Entries {
		if e.ID == id {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.doc.Entries = kept
	return removed
}

// SetStatus changes the status of the first entry with the given ID.
// Returns an ErrNotFound error if there is no such entry.
func (s *Store) SetStatus(id string, status Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	for _, e := range s.doc.Entries {
		if e.ID == id {
			e.Status = status
			return nil
		}
	}
	return todoerrors.TaskNotFound(id)
}

// LastUpdated returns when the store was last saved.
func (s *Store) LastUpdated() time.Time {
	return s.doc.LastUpdated
}
