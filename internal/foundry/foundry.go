package foundry

import (
	"context"
	"slices"
	"sync"

	"github.com/vk/foundry/internal/catalog"
	"github.com/vk/foundry/internal/ctxlog"
)

// Foundry is the central resolver for one assembled configuration. It owns
// the source, the factory registry, and one memoized dictionary per
// concept. The registry and source never change after assembly; only the
// dictionaries mutate, by gaining built instances.
type Foundry struct {
	id       string
	source   catalog.Source
	registry registry
	dicts    map[catalog.Concept]*dictionary
	waits    *waitGraph

	loadOnce sync.Once
	loadErr  error
}

// Get resolves the named resource, building it on first request. The
// result is identity-stable: every call for the same (concept, name)
// returns the same instance, and the underlying factory runs at most once
// even under concurrent callers. Failures are memoized the same way and
// carry the full chain of frames that led to them.
func (f *Foundry) Get(ctx context.Context, concept catalog.Concept, name string) (any, error) {
	return handle{f: f}.Get(ctx, concept, name)
}

// Built reports how many instances (or memoized failures) exist for a
// concept. Used by the eager-load summary.
func (f *Foundry) Built(concept catalog.Concept) int {
	if d, ok := f.dicts[concept]; ok {
		return d.len()
	}
	return 0
}

// Source returns the configuration source the Foundry was assembled with.
func (f *Foundry) Source() catalog.Source { return f.source }

// ID returns the unique identifier assigned at assembly, used to
// distinguish coexisting Foundries in logs.
func (f *Foundry) ID() string { return f.id }

// handle is the resolver passed to factories. It carries the chain of
// frames currently under construction on this resolution path. Handles
// are values: each recursive Get extends a copy of the chain.
type handle struct {
	f     *Foundry
	chain []Ref
}

// Get implements Resolver. Requests made from inside a factory register
// in the foundry's wait graph before touching the dictionary, so a
// request that would close a dependency loop fails with a CycleError
// instead of recursing or blocking, even when the loop spans builds
// running on other goroutines.
func (h handle) Get(ctx context.Context, concept catalog.Concept, name string) (any, error) {
	ref := Ref{Concept: concept, Name: name}
	if n := len(h.chain); n > 0 {
		owner := h.chain[n-1]
		if err := h.f.waits.await(owner, ref, h.chain); err != nil {
			return nil, err
		}
		defer h.f.waits.release(owner)
	}

	dict, ok := h.f.dicts[concept]
	if !ok {
		return nil, &UnknownTypeError{Concept: concept}
	}

	// Absence surfaces before any build attempt; absent names never
	// occupy a dictionary slot.
	entry, err := h.f.source.Entry(concept, name)
	if err != nil {
		return nil, err
	}

	return dict.getOrBuild(name, func() (any, error) {
		return h.build(ctx, ref, entry)
	})
}

// build runs the factory for one entry, wrapping any failure with the
// frame it occurred in.
func (h handle) build(ctx context.Context, ref Ref, entry *catalog.Entry) (any, error) {
	logger := ctxlog.FromContext(ctx).With("foundry", h.f.id, "concept", ref.Concept, "name", ref.Name)

	factory, err := h.f.registry.resolve(ref.Concept, entry.Builder)
	if err != nil {
		return nil, &BuildError{Ref: ref, Err: err}
	}

	logger.Debug("Building resource.", "builder", entry.Builder, "depth", len(h.chain))
	child := handle{f: h.f, chain: append(slices.Clone(h.chain), ref)}
	instance, err := factory(ctx, ref.Name, entry, child)
	if err != nil {
		logger.Debug("Resource build failed.", "error", err)
		return nil, &BuildError{Ref: ref, Err: err}
	}
	logger.Debug("Resource built.")
	return instance, nil
}
