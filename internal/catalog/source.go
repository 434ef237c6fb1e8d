package catalog

import (
	"context"
	"fmt"
	"sort"
)

// NotFoundError reports a name absent from the source for a concept.
type NotFoundError struct {
	Concept Concept
	Name    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s entry named %q in configuration", e.Concept, e.Name)
}

// Source exposes an immutable, queryable tree of entries. Implementations
// must be safe for concurrent reads and must never mutate after load.
type Source interface {
	// Entry returns the entry for (concept, name), or a *NotFoundError.
	Entry(concept Concept, name string) (*Entry, error)

	// Names returns the sorted names present for a concept.
	Names(concept Concept) []string

	// Concepts returns the sorted concepts that have at least one entry.
	Concepts() []Concept
}

// Loader is the interface for a format-specific configuration loader. It
// reads configuration from the given paths, translates it into the
// format-agnostic model, and returns an immutable Source. Malformed input
// surfaces as an error here, before any factory runs.
type Loader interface {
	Load(ctx context.Context, paths ...string) (Source, error)
}

// Map is an in-memory Source keyed by concept then name. It is the
// programmatic assembly path and the backbone of the file loaders.
type Map map[Concept]map[string]*Entry

// Add stores an entry, enforcing name uniqueness within a concept.
func (m Map) Add(e *Entry) error {
	byName, ok := m[e.Concept]
	if !ok {
		byName = make(map[string]*Entry)
		m[e.Concept] = byName
	}
	if _, exists := byName[e.Name]; exists {
		return fmt.Errorf("duplicate %s entry named %q", e.Concept, e.Name)
	}
	byName[e.Name] = e
	return nil
}

// Entry implements Source.
func (m Map) Entry(concept Concept, name string) (*Entry, error) {
	if e, ok := m[concept][name]; ok {
		return e, nil
	}
	return nil, &NotFoundError{Concept: concept, Name: name}
}

// Names implements Source.
func (m Map) Names(concept Concept) []string {
	names := make([]string, 0, len(m[concept]))
	for name := range m[concept] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Concepts implements Source.
func (m Map) Concepts() []Concept {
	concepts := make([]Concept, 0, len(m))
	for c := range m {
		concepts = append(concepts, c)
	}
	sort.Slice(concepts, func(i, j int) bool { return concepts[i] < concepts[j] })
	return concepts
}
