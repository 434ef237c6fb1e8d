package foundry

import (
	"context"
	"fmt"

	"github.com/vk/foundry/internal/catalog"
)

// DefaultBuilder is the discriminator used for entries that carry no
// explicit builder attribute. Factory tables register their primary
// factory under this key to make it the concept's implicit default.
const DefaultBuilder = "default"

// Resolver is the capability handed to a factory to request other named
// resources from the same Foundry. Recursive requests through the resolver
// are how dependency edges in configuration become build-order edges.
type Resolver interface {
	Get(ctx context.Context, concept catalog.Concept, name string) (any, error)
}

// Factory builds one resource from its configuration entry. Factories must
// obtain every dependency through the resolver rather than constructing
// dependencies themselves, so the engine's build-once guarantee holds for
// the whole graph.
type Factory func(ctx context.Context, name string, entry *catalog.Entry, res Resolver) (any, error)

// FactoryTable maps builder discriminators to factories for one concept.
type FactoryTable map[string]Factory

// registry maps concepts to their factory tables. It is immutable once the
// owning Foundry is assembled.
type registry map[catalog.Concept]FactoryTable

// resolve returns the factory for (concept, builder). An empty builder
// selects the concept's default.
func (r registry) resolve(concept catalog.Concept, builder string) (Factory, error) {
	table, ok := r[concept]
	if !ok {
		return nil, &UnknownTypeError{Concept: concept}
	}
	if builder == "" {
		builder = DefaultBuilder
	}
	f, ok := table[builder]
	if !ok {
		return nil, &UnknownTypeError{Concept: concept, Builder: builder}
	}
	return f, nil
}

// GetAs resolves (concept, name) through res and asserts the result to T.
func GetAs[T any](ctx context.Context, res Resolver, concept catalog.Concept, name string) (T, error) {
	var zero T
	v, err := res.Get(ctx, concept, name)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("resource %s/%s has type %T, want %T", concept, name, v, zero)
	}
	return typed, nil
}
