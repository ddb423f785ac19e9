// Package catalog holds the read-only event catalog.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"event-portal/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed seed/events.yaml
var defaultSeed []byte

type seedFile struct {
	Events []domain.Event `yaml:"events"`
}

// Store is an immutable, id-ordered set of events. It is built once at
// startup and safe for concurrent reads.
type Store struct {
	events []domain.Event
	byID   map[int]int
}

// Default returns the catalog compiled into the binary.
func Default() (*Store, error) {
	return Parse(defaultSeed)
}

// LoadFile reads a catalog from a YAML file. An empty path yields Default.
func LoadFile(path string) (*Store, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	return Parse(data)
}

// Parse builds a Store from YAML with a top-level "events" list.
func Parse(data []byte) (*Store, error) {
	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return New(seed.Events)
}

// New validates ids and copies events into a Store sorted by id.
func New(events []domain.Event) (*Store, error) {
	s := &Store{
		events: make([]domain.Event, len(events)),
		byID:   make(map[int]int, len(events)),
	}
	copy(s.events, events)
	sort.SliceStable(s.events, func(i, j int) bool { return s.events[i].ID < s.events[j].ID })

	for i, e := range s.events {
		if e.ID <= 0 {
			return nil, fmt.Errorf("%w: %d", domain.ErrInvalidID, e.ID)
		}
		if _, ok := s.byID[e.ID]; ok {
			return nil, fmt.Errorf("%w: %d", domain.ErrDuplicateID, e.ID)
		}
		if e.Fee < 0 {
			return nil, fmt.Errorf("event %d: fee must be non-negative", e.ID)
		}
		s.byID[e.ID] = i
	}

	return s, nil
}

// List returns a copy of all events ordered by id.
func (s *Store) List() []domain.Event {
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Get looks up an event by id.
func (s *Store) Get(id int) (domain.Event, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return s.events[i], nil
}

// Title returns the event title for id, or "" when the id is unknown.
func (s *Store) Title(id int) string {
	e, err := s.Get(id)
	if err != nil {
		return ""
	}
	return e.Title
}

// Len reports the number of events.
func (s *Store) Len() int {
	return len(s.events)
}
