package catalog

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNotFound      = errors.New("entry not found")
	ErrAlreadyLoaded = errors.New("entry content already attached")
)

// Store holds the ordered entries of one catalog. Entries are fixed at
// construction; the only mutation is the one-time attachment of content.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[string]int
}

// NewStore builds a store from configuration, preserving order. Static
// entries without inline content are marked loaded with no payload so they
// never count as pending.
func NewStore(configs []Config) (*Store, error) {
	s := &Store{
		entries: make([]Entry, 0, len(configs)),
		index:   make(map[string]int, len(configs)),
	}
	for _, c := range configs {
		if c.ID == "" {
			return nil, fmt.Errorf("catalog entry %q has no id", c.Title)
		}
		if _, dup := s.index[c.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", c.ID)
		}
		if c.Category == AllCategories {
			return nil, fmt.Errorf("entry %q uses reserved category %q", c.ID, AllCategories)
		}

		e := Entry{
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Category:    c.Category,
			Format:      c.Format,
			Filename:    c.Filename,
			Dir:         c.Dir,
		}
		switch {
		case c.Content != nil:
			e.Content = *c.Content
		case c.Format == FormatNone:
			e.Content = Content{Status: StatusLoaded}
		}

		s.index[c.ID] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	return s, nil
}

// Get returns the entry with the given id.
func (s *Store) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Has reports whether id names an entry of the store.
func (s *Store) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[id]
	return ok
}

// Entries returns a snapshot of all entries in configuration order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Attach sets the content of a pending entry. It may be called once per
// entry, from any goroutine, in any order.
func (s *Store) Attach(id string, c Content) error {
	if c.Status == StatusPending {
		return fmt.Errorf("attaching %q: content is still pending", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("attaching %q: %w", id, ErrNotFound)
	}
	if s.entries[i].Content.Status != StatusPending {
		return fmt.Errorf("attaching %q: %w", id, ErrAlreadyLoaded)
	}
	if c.Status == StatusUnavailable {
		c.Size = 0
		c.Raw = nil
		c.Workflow = nil
	}
	s.entries[i].Content = c
	return nil
}

// Pending returns the number of entries still waiting for content.
func (s *Store) Pending() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, e := range s.entries {
		if e.Content.Status == StatusPending {
			n++
		}
	}
	return n
}

// Unavailable returns the entries whose content failed to load.
func (s *Store) Unavailable() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Entry
	for _, e := range s.entries {
		if e.Content.Status == StatusUnavailable {
			out = append(out, e)
		}
	}
	return out
}
