// Package builtin wires the default factory tables for every built-in
// concept into an assembler. It is the definitive list of resource types
// compiled into the binary.
package builtin

import (
	"github.com/vk/foundry/internal/catalog"
	"github.com/vk/foundry/internal/dimension"
	"github.com/vk/foundry/internal/foundry"
	"github.com/vk/foundry/internal/kvstore"
	"github.com/vk/foundry/internal/metric"
	"github.com/vk/foundry/internal/search"
	"github.com/vk/foundry/internal/table"
)

// Tables returns the default factory table per concept. The result is
// freshly built on each call, so callers may modify it safely.
func Tables() map[catalog.Concept]foundry.FactoryTable {
	return map[catalog.Concept]foundry.FactoryTable{
		catalog.ConceptDimension:      dimension.Factories(),
		catalog.ConceptMetric:         metric.Factories(),
		catalog.ConceptKeyValueStore:  kvstore.Factories(),
		catalog.ConceptSearchProvider: search.Factories(),
		catalog.ConceptTable:          table.Factories(),
	}
}

// NewAssembler returns an assembler pre-loaded with the default tables.
// Overrides supplied afterwards via WithFactories replace a concept's
// whole table, leaving the other concepts on their defaults.
func NewAssembler(source catalog.Source) *foundry.Assembler {
	a := foundry.NewAssembler(source)
	for concept, factories := range Tables() {
		a.WithFactories(concept, factories)
	}
	return a
}
