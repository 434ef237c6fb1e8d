package foundry

import (
	"errors"

	"github.com/google/uuid"
	"github.com/vk/foundry/internal/catalog"
)

// Assembler composes a Foundry from a configuration source and factory
// tables. Calls are order-independent; the last table supplied for a
// concept wins, and it replaces the concept's whole table rather than
// merging per-builder. Assembly performs no resolution.
type Assembler struct {
	source catalog.Source
	tables map[catalog.Concept]FactoryTable
}

// NewAssembler starts an assembler with no factory tables. Callers that
// want the built-in resource types start from builtin.NewAssembler
// instead.
func NewAssembler(source catalog.Source) *Assembler {
	return &Assembler{
		source: source,
		tables: make(map[catalog.Concept]FactoryTable),
	}
}

// WithFactories sets the factory table for a concept, replacing any table
// previously supplied for it. It returns the assembler for chaining.
func (a *Assembler) WithFactories(concept catalog.Concept, table FactoryTable) *Assembler {
	copied := make(FactoryTable, len(table))
	for builder, factory := range table {
		copied[builder] = factory
	}
	a.tables[concept] = copied
	return a
}

// Build produces an immutable Foundry. Dictionaries exist for every
// concept with a factory table; concepts present only in the source are
// unreachable and reported as UnknownType at resolution time.
func (a *Assembler) Build() (*Foundry, error) {
	if a.source == nil {
		return nil, errors.New("assembler requires a configuration source")
	}
	f := &Foundry{
		id:       uuid.NewString(),
		source:   a.source,
		registry: make(registry, len(a.tables)),
		dicts:    make(map[catalog.Concept]*dictionary, len(a.tables)),
		waits:    newWaitGraph(),
	}
	for concept, table := range a.tables {
		f.registry[concept] = table
		f.dicts[concept] = newDictionary()
	}
	return f, nil
}
